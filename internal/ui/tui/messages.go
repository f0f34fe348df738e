package tui

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type commandsLoadedMsg struct {
	path  string
	lines []string
	err   error
}
