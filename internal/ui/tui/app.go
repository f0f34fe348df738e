package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase"
)

const helpLine = "Add <Name> to <Department> • list [Department] • load <file> • init • quit"

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	input  textinput.Model
	roster *domain.Roster

	// focus is the department shown alone; empty shows the whole company.
	focus string

	toast    string
	toastErr bool

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	in := textinput.New()
	in.Placeholder = "Add Sally to Engineering"
	in.Prompt = "› "
	in.CharLimit = 256
	in.Width = 60
	in.Focus()

	m := model{
		theme:  DefaultTheme(),
		deps:   deps,
		log:    log,
		input:  in,
		roster: domain.NewRoster(),
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w := msg.Width - 10; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.focus = ""
			m.toast = ""
			return m, nil
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.submit(line)
		}

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.log.Error("tui.init.failed", "err", msg.err)
			m.setToast(userMessage(msg.err), true)
			return m, nil
		}
		m.log.Info("tui.init.done", "root", msg.root)
		m.setToast("Workspace initialized at "+msg.root, false)
		return m, cmdRefreshWorkspace(m.deps)

	case commandsLoadedMsg:
		return m.applyLoaded(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return m, tea.Quit

	case "list":
		m.focus = strings.Join(fields[1:], " ")
		if m.focus == "" {
			m.setToast("Showing all departments", false)
		} else {
			m.setToast("Showing "+m.focus, false)
		}
		return m, nil

	case "help":
		m.setToast(helpLine, false)
		return m, nil

	case "init":
		return m, cmdInitWorkspaceHere(m.deps)

	case "load":
		if len(fields) < 2 {
			m.setToast("Usage: load <file>", true)
			return m, nil
		}
		return m, cmdLoadCommands(m.deps, strings.Join(fields[1:], " "))
	}

	req, err := domain.ParseCommand(line)
	if err != nil {
		m.log.Info("tui.command.rejected", "input", line, "err", err)
		m.setToast(userMessage(err), true)
		return m, nil
	}

	m.roster.Add(req)
	m.log.Debug("tui.command.added", "name", req.Name(), "department", req.Department())
	m.setToast(fmt.Sprintf("Added %s to %s", req.Name(), req.Department()), false)
	return m, nil
}

func (m model) applyLoaded(msg commandsLoadedMsg) model {
	if msg.err != nil {
		m.log.Error("tui.load.failed", "path", msg.path, "err", msg.err)
		m.setToast(userMessage(msg.err), true)
		return m
	}

	uc := usecase.NewApplyCommands(
		usecase.WithHaltOnError(m.deps.Config.Roster.HaltOnError),
		usecase.WithLogger(m.log),
	)
	rep, err := uc.Execute(context.Background(), m.roster, msg.lines)
	if err != nil {
		m.setToast(userMessage(err), true)
		return m
	}

	if rep.Failed() {
		first := rep.Rejected[0]
		m.setToast(fmt.Sprintf("Loaded %d, rejected %d (line %d: %s)", rep.Applied, len(rep.Rejected), first.Line, first.Message), true)
		return m
	}
	m.setToast(fmt.Sprintf("Loaded %d command(s) from %s", rep.Applied, msg.path), false)
	return m
}

func (m *model) setToast(s string, isErr bool) {
	m.toast = s
	m.toastErr = isErr
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Company roster") + "\n" +
		m.theme.Subtitle.Render("Type commands like \"Add Sally to Engineering\"") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace (type init to create collections.yaml here)")
	}

	var body string
	if m.focus == "" {
		body = renderCompany(m.theme, m.roster.AllMembersByDepartment())
	} else {
		body = renderDepartment(m.theme, m.focus, m.roster.MembersOf(m.focus))
	}

	var status string
	if m.toast != "" {
		if m.toastErr {
			status = m.theme.Error.Render("✗ "+m.toast) + "\n"
		} else {
			status = m.theme.OK.Render(m.toast) + "\n"
		}
	}

	help := m.theme.Help.Render(helpLine + " • esc all • ctrl+c quit")

	return wrap.Render(header + workspaceBanner + "\n\n" +
		m.theme.Card.Render(body) + "\n\n" +
		status + m.input.View() + "\n\n" + help)
}
