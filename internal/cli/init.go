package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/fsworkspace"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create collections.yaml and sample inputs in a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			root, err := uc.Execute(path, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Target directory")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing sample files")
	return c
}
