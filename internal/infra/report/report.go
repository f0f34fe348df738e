// Package report renders roster snapshots, number summaries and workbook
// results as pretty text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Formats lists the accepted --format values.
var Formats = []string{FormatPretty, FormatJSON, FormatYAML}

// CheckFormat rejects formats other than pretty|json|yaml. Empty means pretty.
func CheckFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatPretty, FormatJSON, FormatYAML, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected %s)", format, strings.Join(Formats, "|"))
	}
}

// WriteRoster renders an applied batch: the grouped roster and any rejected lines.
func WriteRoster(w io.Writer, rep domain.ApplyReport, format string) error {
	return write(w, rep, format, func() { printPrettyRoster(w, rep) })
}

// WriteMembers renders one department's sorted members.
func WriteMembers(w io.Writer, department string, members []string, format string) error {
	payload := domain.DepartmentMembers{Department: department, Members: members}
	return write(w, payload, format, func() {
		fmt.Fprintf(w, "%s (%d)\n", department, len(members))
		if len(members) == 0 {
			fmt.Fprintln(w, "  (no members)")
			return
		}
		for _, m := range members {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	})
}

// WriteSummary renders descriptive statistics.
func WriteSummary(w io.Writer, s domain.NumberSummary, format string) error {
	return write(w, s, format, func() { printPrettySummary(w, s) })
}

// WriteWorkbook renders every section present in a workbook report.
func WriteWorkbook(w io.Writer, rep domain.WorkbookReport, format string) error {
	return write(w, rep, format, func() {
		fmt.Fprintf(w, "Workbook: %s\n\n", rep.Name)
		if rep.Roster != nil {
			fmt.Fprintln(w, "== Roster")
			printPrettyRoster(w, *rep.Roster)
			fmt.Fprintln(w)
		}
		if len(rep.Checks) > 0 {
			fmt.Fprintln(w, "== Checks")
			printPrettyChecks(w, rep.Checks)
			fmt.Fprintln(w)
		}
		if rep.Summary != nil {
			fmt.Fprintln(w, "== Numbers")
			printPrettySummary(w, *rep.Summary)
			fmt.Fprintln(w)
		}
		if rep.Translated != "" {
			fmt.Fprintln(w, "== Pig latin")
			fmt.Fprintln(w, rep.Translated)
		}
	})
}

func write(w io.Writer, v any, format string, pretty func()) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatPretty, "":
		pretty()
		return nil
	default:
		return CheckFormat(format)
	}
}

func printPrettyRoster(w io.Writer, rep domain.ApplyReport) {
	fmt.Fprintf(w, "Applied:  %d\n", rep.Applied)
	if rep.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:  %d\n", rep.Skipped)
	}
	fmt.Fprintf(w, "Rejected: %d\n\n", len(rep.Rejected))

	if len(rep.Roster) == 0 {
		fmt.Fprintln(w, "(empty roster)")
	}
	for _, d := range rep.Roster {
		fmt.Fprintf(w, "%s (%d)\n", d.Department, len(d.Members))
		for _, m := range d.Members {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}

	if len(rep.Rejected) > 0 {
		fmt.Fprintln(w)
		for _, r := range rep.Rejected {
			fmt.Fprintf(w, "✗ line %d [%s] %s\n", r.Line, r.Kind, r.Message)
		}
	}
}

func printPrettyChecks(w io.Writer, checks []domain.CheckResult) {
	for _, c := range checks {
		mark := "✓"
		if !c.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s — %s\n", mark, c.Name, c.Message)
	}
}

func printPrettySummary(w io.Writer, s domain.NumberSummary) {
	fmt.Fprintf(w, "Count:      %d\n", s.Count)
	fmt.Fprintf(w, "Sum:        %d\n", s.Sum)
	fmt.Fprintf(w, "Mean:       %d\n", s.Mean)
	fmt.Fprintf(w, "Float mean: %g\n", s.FloatMean)
	fmt.Fprintf(w, "Median:     %d\n", s.Median)
	fmt.Fprintf(w, "Mode:       %d (x%d)\n", s.Mode, s.ModeCount)
}
