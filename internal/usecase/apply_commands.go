package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
)

type ApplyCommands struct {
	haltOnError bool
	log         *slog.Logger
}

type ApplyOption func(*ApplyCommands)

// WithHaltOnError stops the batch at the first rejected command.
func WithHaltOnError(enabled bool) ApplyOption {
	return func(uc *ApplyCommands) { uc.haltOnError = enabled }
}

func WithLogger(log *slog.Logger) ApplyOption {
	return func(uc *ApplyCommands) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewApplyCommands(opts ...ApplyOption) *ApplyCommands {
	uc := &ApplyCommands{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute parses each line and adds the accepted ones to roster, in order.
//
// Blank lines and lines starting with '#' are skipped. A rejected line is
// recorded in the report and the batch continues, unless halt-on-error is
// set; then the parse error is returned with the partial report. The report
// always carries the roster snapshot taken when Execute returns.
func (uc *ApplyCommands) Execute(ctx context.Context, roster *domain.Roster, lines []string) (domain.ApplyReport, error) {
	report := domain.ApplyReport{Rejected: []domain.RejectedCommand{}}
	if roster == nil {
		return report, &domain.OpError{
			Op:   "usecase.apply_commands",
			Kind: domain.KindExecution,
			Err:  errors.New("roster is nil"),
		}
	}

	finish := func(err error) (domain.ApplyReport, error) {
		report.Roster = roster.AllMembersByDepartment()
		uc.log.Info("roster.apply.done",
			"applied", report.Applied,
			"skipped", report.Skipped,
			"rejected", len(report.Rejected),
			"departments", roster.Len(),
		)
		return report, err
	}

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			report.Skipped++
			continue
		}

		req, err := domain.ParseCommand(line)
		if err != nil {
			rejected := domain.RejectedCommand{
				Line:    lineNo,
				Input:   line,
				Message: err.Error(),
			}
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				rejected.Kind = pe.Kind
			}
			report.Rejected = append(report.Rejected, rejected)

			uc.log.Warn("roster.apply.rejected",
				"line", lineNo,
				"kind", string(rejected.Kind),
				"input", line,
			)

			if uc.haltOnError {
				return finish(&domain.OpError{
					Op:   "usecase.apply_commands",
					Kind: domain.KindInvalidCommand,
					Err:  fmt.Errorf("line %d: %w", lineNo, err),
				})
			}
			continue
		}

		roster.Add(req)
		report.Applied++
		uc.log.Debug("roster.apply.added",
			"line", lineNo,
			"name", req.Name(),
			"department", req.Department(),
		)
	}

	return finish(nil)
}
