package calculator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/reference"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/tally/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// loadReference returns the built-in reference data set.
func loadReference(t *testing.T) *ports.Reference {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	ref, err := reference.NewLoader(log).Load(ports.ReferenceSources{})
	require.NoError(t, err)
	return ref
}

func versionV1(t *testing.T, ref *ports.Reference) *domain.Version {
	t.Helper()
	v, err := ref.Versions.Version(domain.NewVersionID("v1"))
	require.NoError(t, err)
	return v
}

// quietTracer accepts any span.
func quietTracer(ctrl *gomock.Controller) *mocks.MockTracer {
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()
	return tracer
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func packageIDs(ids ...string) []domain.PackageID {
	return domain.NewPackageIDs(ids)
}

func findComparison(t *testing.T, pkgs []domain.Package, id string) *domain.Comparison {
	t.Helper()
	for i := range pkgs {
		for j := range pkgs[i].Comparisons {
			if pkgs[i].Comparisons[j].ID.String() == id {
				return &pkgs[i].Comparisons[j]
			}
		}
	}
	t.Fatalf("comparison %s not found", id)
	return nil
}

func findOption(t *testing.T, pkgs []domain.Package, comparison, option string) *domain.Option {
	t.Helper()
	opt, ok := findComparison(t, pkgs, comparison).Option(domain.NewOptionID(option))
	require.True(t, ok, "option %s not found", option)
	return opt
}
