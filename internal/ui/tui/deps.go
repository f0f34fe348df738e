package tui

import (
	"log/slog"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	// Workbooks backs the "load <file>" shell command; nil disables it.
	Workbooks ports.WorkbookLoader

	Config domain.Config
	Logger *slog.Logger
	Debug  bool
}
