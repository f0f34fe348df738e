package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/logger"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/report"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/yamlworkbook"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase"
)

func workbookCmd(opts *rootOptions) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "workbook",
		Short: "Run the roster, number and pig latin exercises from a workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.configPath)
			if err != nil {
				return err
			}

			format = outputFormat(ws, format, cmd.Flags().Changed("format"))
			if err := report.CheckFormat(format); err != nil {
				return err
			}

			uc := usecase.NewRunWorkbook(ws.workbooks,
				usecase.WithHaltOnError(ws.cfg.Roster.HaltOnError),
				usecase.WithLogger(logger.L()),
			)

			rep, err := uc.Execute(cmd.Context(), file)
			return finishWorkbook(cmd, rep, err, format)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Workbook path (required)")
	c.Flags().StringVar(&format, "format", report.FormatPretty, "Output format: pretty|json|yaml")

	_ = c.MarkFlagRequired("file")
	return c
}

func demoCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.configPath)
			if err != nil {
				return err
			}

			format = outputFormat(ws, format, cmd.Flags().Changed("format"))
			if err := report.CheckFormat(format); err != nil {
				return err
			}

			wb, err := yamlworkbook.Builtin()
			if err != nil {
				return err
			}

			uc := usecase.NewRunWorkbook(ws.workbooks, usecase.WithLogger(logger.L()))
			rep, err := uc.Run(cmd.Context(), wb)
			return finishWorkbook(cmd, rep, err, format)
		},
	}

	c.Flags().StringVar(&format, "format", report.FormatPretty, "Output format: pretty|json|yaml")
	return c
}

func finishWorkbook(cmd *cobra.Command, rep domain.WorkbookReport, runErr error, format string) error {
	if rep.Name != "" || rep.Roster != nil {
		if err := report.WriteWorkbook(cmd.OutOrStdout(), rep, format); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if rep.Roster != nil && rep.Roster.Failed() {
		return fmt.Errorf("workbook failed (%d rejected command(s))", len(rep.Roster.Rejected))
	}
	if n := rep.FailedChecks(); n > 0 {
		return fmt.Errorf("workbook failed (%d failed check(s))", n)
	}
	return nil
}
