package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/fsworkspace"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/logger"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/workspacefinder"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/ui/tui"
)

// rootOptions carries the persistent flags down to every subcommand.
type rootOptions struct {
	debug      bool
	configPath string

	cleanup func() error
}

func Execute() {
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	err := cmd.Execute()
	if opts.cleanup != nil {
		_ = opts.cleanup()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "collections",
		Short:        "Company roster, pig latin and number summaries",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(opts)
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.configPath)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Workbooks:            ws.workbooks,
				Config:               ws.cfg,
				Logger:               logger.L(),
				Debug:                opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .collections/logs/collections.log")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to collections.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(
		rosterCmd(opts),
		piglatinCmd(opts),
		statsCmd(opts),
		workbookCmd(opts),
		demoCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging opens the log file inside the workspace. Outside a workspace
// it only logs when --debug is given, in the working directory.
func setupLogging(opts *rootOptions) {
	if opts.cleanup != nil {
		return
	}

	root := logRoot(opts)
	if root == "" {
		return
	}

	cfgPath := strings.TrimSpace(opts.configPath)
	if cfgPath == "" {
		cfgPath = filepath.Join(root, workspacefinder.ConfigFileName)
	}
	debug := opts.debug
	if cfg, err := workspacefinder.LoadConfigFile(cfgPath); err == nil && cfg.Logging.Debug {
		debug = true
	}

	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Debug: debug,
	})
	opts.cleanup = cleanup
}

// logRoot prefers the --config file's directory, then the enclosing workspace.
func logRoot(opts *rootOptions) string {
	if p := strings.TrimSpace(opts.configPath); p != "" {
		if abs, err := filepath.Abs(p); err == nil && fileExists(abs) {
			return filepath.Dir(abs)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
		return root
	}
	if opts.debug {
		return wd
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
