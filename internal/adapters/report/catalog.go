package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.trai.ch/tally/internal/core/domain"
)

// WritePackages lists packages with their comparisons and options.
func WritePackages(w io.Writer, packages []domain.Package) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PACKAGE\tCOMPARISON\tOPTIONS\tREPLACING")
	for _, p := range packages {
		for _, c := range p.Comparisons {
			_, _ = fmt.Fprintf(tw, "%s (%s)\t%s (%s)\t%s\t%s\n",
				p.ID, p.Title, c.ID, c.Title, optionList(c.Options), idList(c.Replacing))
		}
	}
	return tw.Flush()
}

// WriteResolution prints the in-force comparisons, the replaced comparisons
// and every baseline and selected option pair.
func WriteResolution(w io.Writer, inForce, replaced []string, pairs []domain.OptionPair) error {
	if _, err := fmt.Fprintf(w, "in force: %s\nreplaced: %s\n\n",
		dashIfEmpty(strings.Join(inForce, ", ")),
		dashIfEmpty(strings.Join(replaced, ", ")),
	); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PACKAGE\tCOMPARISON\tBASELINE\tSELECTED")
	for _, p := range pairs {
		baseline := "-"
		if p.Baseline != nil {
			baseline = p.Baseline.ID.String()
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.PackageID, p.ComparisonID, baseline, p.Selected.ID)
	}
	return tw.Flush()
}

func optionList(opts []domain.Option) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = o.ID.String()
		if o.Existing {
			parts[i] += "*"
		}
	}
	return strings.Join(parts, ",")
}

func idList(ids []domain.ComparisonID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return dashIfEmpty(strings.Join(parts, ","))
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
