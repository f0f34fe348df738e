package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/workspacefinder"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/yamlworkbook"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/ports"
)

type workspaceCtx struct {
	// root is empty when no collections.yaml was found; defaults apply then.
	root string
	cfg  domain.Config

	workbooks ports.WorkbookLoader
}

func loadWorkspace(configFlag string) (*workspaceCtx, error) {
	ws := &workspaceCtx{
		cfg:       domain.DefaultConfig(),
		workbooks: yamlworkbook.NewLoader(),
	}

	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := workspacefinder.LoadConfigFile(abs)
		if err != nil {
			return nil, err
		}
		ws.root = filepath.Dir(abs)
		ws.cfg = cfg
		return ws, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return ws, nil
		}
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	ws.root = root
	ws.cfg = cfg
	return ws, nil
}

// outputFormat prefers an explicit --format over the workspace default.
func outputFormat(ws *workspaceCtx, flagValue string, changed bool) string {
	if changed {
		return flagValue
	}
	return ws.cfg.Output.Format
}
