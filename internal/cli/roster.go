package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/logger"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/report"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/yamlworkbook"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase/extract"
)

func rosterCmd(opts *rootOptions) *cobra.Command {
	var file string
	var department string
	var selectExpr string
	var format string
	var halt bool

	c := &cobra.Command{
		Use:   "roster [command...]",
		Short: `Apply "Add <Name> to <Department>" commands and print the roster`,
		Example: `  collections roster "Add Sally to Engineering" "Add Amir to Sales"
  collections roster -f commands.txt -d Engineering
  collections roster -f workbook.yaml --select '$.Engineering[0]'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.configPath)
			if err != nil {
				return err
			}

			format = outputFormat(ws, format, cmd.Flags().Changed("format"))
			if err := report.CheckFormat(format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("halt-on-error") {
				halt = ws.cfg.Roster.HaltOnError
			}

			lines, err := commandLines(ws, file, args)
			if err != nil {
				return err
			}

			roster := domain.NewRoster()
			uc := usecase.NewApplyCommands(
				usecase.WithHaltOnError(halt),
				usecase.WithLogger(logger.L()),
			)

			out := cmd.OutOrStdout()
			rep, err := uc.Execute(cmd.Context(), roster, lines)
			if err != nil {
				_ = report.WriteRoster(out, rep, format)
				return err
			}

			switch {
			case strings.TrimSpace(selectExpr) != "":
				v, err := extract.Select(rep.Roster, selectExpr)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				printRejected(cmd.ErrOrStderr(), rep)
			case department != "":
				if err := report.WriteMembers(out, department, roster.MembersOf(department), format); err != nil {
					return err
				}
				printRejected(cmd.ErrOrStderr(), rep)
			default:
				if err := report.WriteRoster(out, rep, format); err != nil {
					return err
				}
			}

			if rep.Failed() {
				return fmt.Errorf("roster failed (%d rejected command(s))", len(rep.Rejected))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Read commands from a workbook (.yaml) or a text file (one per line)")
	c.Flags().StringVarP(&department, "department", "d", "", "Print only this department's members")
	c.Flags().StringVar(&selectExpr, "select", "", "Evaluate a JSONPath expression over the roster, e.g. $.Engineering")
	c.Flags().StringVar(&format, "format", report.FormatPretty, "Output format: pretty|json|yaml")
	c.Flags().BoolVar(&halt, "halt-on-error", false, "Stop at the first rejected command")
	return c
}

// commandLines gathers the file's commands followed by the positional ones.
func commandLines(ws *workspaceCtx, file string, args []string) ([]string, error) {
	var lines []string

	if f := strings.TrimSpace(file); f != "" {
		if yamlworkbook.IsWorkbookPath(f) {
			wb, err := ws.workbooks.LoadWorkbook(f)
			if err != nil {
				return nil, err
			}
			lines = append(lines, wb.Commands...)
		} else {
			fl, err := ws.workbooks.LoadCommandLines(f)
			if err != nil {
				return nil, err
			}
			lines = append(lines, fl...)
		}
	}

	lines = append(lines, args...)
	if len(lines) == 0 {
		return nil, &domain.OpError{
			Op:   "cli.roster",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("no commands given (pass them as arguments or use --file)"),
		}
	}
	return lines, nil
}

func printRejected(w io.Writer, rep domain.ApplyReport) {
	for _, r := range rep.Rejected {
		fmt.Fprintf(w, "✗ line %d [%s] %s\n", r.Line, r.Kind, r.Message)
	}
}
