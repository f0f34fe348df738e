package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/yamlworkbook"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{err: errors.New("WorkspaceInitializer is nil")}
		}

		wd, err := os.Getwd()
		if err != nil {
			return initWorkspaceDoneMsg{err: fmt.Errorf("getwd: %w", err)}
		}

		err = deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: wd}, false)
		return initWorkspaceDoneMsg{root: wd, err: err}
	}
}

// cmdLoadCommands reads command lines from a workbook or a text file. The
// lines are applied in Update so the session roster is only touched there.
func cmdLoadCommands(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Workbooks == nil {
			return commandsLoadedMsg{path: path, err: errors.New("WorkbookLoader is nil")}
		}

		if yamlworkbook.IsWorkbookPath(path) {
			wb, err := deps.Workbooks.LoadWorkbook(path)
			return commandsLoadedMsg{path: path, lines: wb.Commands, err: err}
		}

		lines, err := deps.Workbooks.LoadCommandLines(path)
		return commandsLoadedMsg{path: path, lines: lines, err: err}
	}
}
