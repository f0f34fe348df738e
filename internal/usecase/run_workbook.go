package usecase

import (
	"context"
	"strings"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/ports"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase/expect"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase/piglatin"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase/stats"
)

type RunWorkbook struct {
	workbooks ports.WorkbookLoader
	apply     *ApplyCommands
}

func NewRunWorkbook(wl ports.WorkbookLoader, opts ...ApplyOption) *RunWorkbook {
	return &RunWorkbook{
		workbooks: wl,
		apply:     NewApplyCommands(opts...),
	}
}

// Execute loads the workbook at path and runs it.
func (uc *RunWorkbook) Execute(ctx context.Context, path string) (domain.WorkbookReport, error) {
	wb, err := uc.workbooks.LoadWorkbook(path)
	if err != nil {
		return domain.WorkbookReport{}, err
	}
	return uc.Run(ctx, wb)
}

// Run applies the commands to a fresh roster, checks the workbook's
// expectations against it, summarizes the numbers and translates the text.
// Absent sections are left out of the report.
// A halted command batch returns the report built so far with the error.
func (uc *RunWorkbook) Run(ctx context.Context, wb domain.Workbook) (domain.WorkbookReport, error) {
	out := domain.WorkbookReport{Name: wb.Name}

	if len(wb.Commands) > 0 {
		rep, err := uc.apply.Execute(ctx, domain.NewRoster(), wb.Commands)
		out.Roster = &rep
		if err != nil {
			return out, err
		}
		out.Checks = expect.Evaluate(rep.Roster, wb.Expect)
	}

	if err := ctx.Err(); err != nil {
		return out, err
	}

	if len(wb.Numbers) > 0 {
		s, err := stats.Summarize(wb.Numbers)
		if err != nil {
			return out, err
		}
		out.Summary = &s
	}

	if strings.TrimSpace(wb.Text) != "" {
		out.Translated = piglatin.Sentence(wb.Text)
	}

	return out, nil
}
