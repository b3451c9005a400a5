// Package settings loads process settings from the environment.
package settings

import (
	"errors"
	"io/fs"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

// Prefix is the environment variable prefix read by Load.
const Prefix = "TALLY_"

// Settings holds the environment defaults that command line flags may override.
type Settings struct {
	CatalogPath   string `koanf:"catalog"`
	GeographyPath string `koanf:"geography"`
	VersionsPath  string `koanf:"versions"`
	Mode          string `koanf:"mode" validate:"omitempty,oneof=weighted summed"`
	Parallelism   int    `koanf:"parallelism" validate:"gte=1"`
	Output        string `koanf:"output" validate:"oneof=text json yaml"`
	Trace         string `koanf:"trace" validate:"oneof=none otel progrock"`
	LogJSON       bool   `koanf:"log_json"`
	Verbose       bool   `koanf:"verbose"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Mode:        domain.RollupWeighted.String(),
		Parallelism: runtime.NumCPU(),
		Output:      "text",
		Trace:       "none",
	}
}

// Loader reads settings from dotenv files and the process environment.
type Loader struct {
	// Files are dotenv files loaded before the environment is read.
	// When empty, a .env file in the working directory is used if present.
	Files []string

	validate *validator.Validate
}

// NewLoader creates a Loader reading the given dotenv files.
func NewLoader(files ...string) *Loader {
	return &Loader{Files: files, validate: validator.New()}
}

// Load returns the defaults overlaid with every TALLY_* variable.
func (l *Loader) Load() (*Settings, error) {
	if err := l.loadDotenv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(Prefix, ".", keyFromEnv), nil); err != nil {
		return nil, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
	}

	s := Default()
	if err := k.Unmarshal("", &s); err != nil {
		return nil, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
	}

	if err := l.validate.Struct(s); err != nil {
		return nil, describeValidation(err)
	}
	return &s, nil
}

func (l *Loader) loadDotenv() error {
	if len(l.Files) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
		}
		return nil
	}

	if err := godotenv.Load(l.Files...); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error()), "files", strings.Join(l.Files, ","))
	}
	return nil
}

// keyFromEnv maps TALLY_LOG_JSON to log_json.
func keyFromEnv(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, Prefix))
}

func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
	}

	fe := fieldErrs[0]
	wrapped := zerr.Wrap(domain.ErrSettingsLoadFailed, "invalid setting "+fe.Field())
	wrapped = zerr.With(wrapped, "rule", fe.Tag())
	return zerr.With(wrapped, "value", fe.Value())
}
