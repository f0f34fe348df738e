package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/report"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/yamlworkbook"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase/stats"
)

func statsCmd(opts *rootOptions) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:     "stats [n...]",
		Short:   "Summarize integers: sum, mean, median and mode",
		Example: `  collections stats 9 8 2 3 4 5 6 7 1 0 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.configPath)
			if err != nil {
				return err
			}

			format = outputFormat(ws, format, cmd.Flags().Changed("format"))
			if err := report.CheckFormat(format); err != nil {
				return err
			}

			values, err := sourceNumbers(ws, file, args)
			if err != nil {
				return err
			}

			s, err := stats.Summarize(values)
			if err != nil {
				return err
			}
			return report.WriteSummary(cmd.OutOrStdout(), s, format)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Read numbers from a workbook (.yaml) or a text file (whitespace separated)")
	c.Flags().StringVar(&format, "format", report.FormatPretty, "Output format: pretty|json|yaml")
	return c
}

func sourceNumbers(ws *workspaceCtx, file string, args []string) ([]int, error) {
	var values []int
	var fields []string

	if f := strings.TrimSpace(file); f != "" {
		if yamlworkbook.IsWorkbookPath(f) {
			wb, err := ws.workbooks.LoadWorkbook(f)
			if err != nil {
				return nil, err
			}
			values = append(values, wb.Numbers...)
		} else {
			lines, err := ws.workbooks.LoadCommandLines(f)
			if err != nil {
				return nil, err
			}
			for _, l := range lines {
				fields = append(fields, strings.Fields(l)...)
			}
		}
	}

	for _, a := range args {
		fields = append(fields, strings.Fields(strings.ReplaceAll(a, ",", " "))...)
	}

	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "cli.stats",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("%q is not an integer: %w", f, err),
			}
		}
		values = append(values, n)
	}
	return values, nil
}
