// Package report renders calculation results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format is a report output format.
type Format string

const (
	// FormatText is an aligned table followed by the digest.
	FormatText Format = "text"
	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat resolves an output flag value. The empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnsupportedOutput, "unrecognised format"), "output", s)
	}
}

// Document is the serialised form of a report.
type Document struct {
	Version  string   `json:"version" yaml:"version"`
	Packages []string `json:"packages" yaml:"packages"`
	Mode     string   `json:"mode" yaml:"mode"`
	Lines    []Line   `json:"lines" yaml:"lines"`
	Digest   string   `json:"digest" yaml:"digest"`
}

// Line is one serialised summary line.
type Line struct {
	Scope    string `json:"scope" yaml:"scope"`
	Existing int64  `json:"existing" yaml:"existing"`
	Selected int64  `json:"selected" yaml:"selected"`
}

// NewDocument builds the document of a calculation.
func NewDocument(version domain.VersionID, packages []domain.PackageID, mode domain.RollupMode, lines []domain.SummaryLine) Document {
	doc := Document{
		Version:  version.String(),
		Packages: make([]string, len(packages)),
		Mode:     mode.String(),
		Lines:    make([]Line, len(lines)),
		Digest:   Digest(lines),
	}
	for i, id := range packages {
		doc.Packages[i] = id.String()
	}
	for i, l := range lines {
		doc.Lines[i] = Line{Scope: l.Scope.String(), Existing: l.ExistingCost, Selected: l.SelectedCost}
	}
	return doc
}

// Digest returns a stable 64-bit hash of the lines in hex.
// Identical reports always have identical digests.
func Digest(lines []domain.SummaryLine) string {
	h := xxhash.New()
	for _, l := range lines {
		_, _ = h.WriteString(l.Scope.String())
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(strconv.FormatInt(l.ExistingCost, 10))
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(strconv.FormatInt(l.SelectedCost, 10))
		_, _ = h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Write renders doc to w in the given format.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedOutput, "unrecognised format"), "output", string(format))
	}
}

func writeText(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SCOPE\tEXISTING\tSELECTED")
	for _, l := range doc.Lines {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\n", displayScope(l.Scope), l.Existing, l.Selected)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nversion %s, packages %s, mode %s\ndigest %s\n",
		doc.Version, strings.Join(doc.Packages, ","), doc.Mode, doc.Digest)
	return err
}

// displayScope turns "region:Europe" into "Europe" and indents cities.
func displayScope(scope string) string {
	kind, name, ok := strings.Cut(scope, ":")
	if !ok {
		return "Group"
	}
	if kind == "city" {
		return "  " + name
	}
	return name
}
