package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/infra/yamlworkbook"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase/piglatin"
)

func piglatinCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:     "piglatin [word...]",
		Short:   "Translate text into pig latin",
		Example: `  collections piglatin "first apple of the day"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.configPath)
			if err != nil {
				return err
			}

			text, err := sourceText(ws, file, args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), piglatin.Sentence(text))
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Read the text from a workbook (.yaml) or a plain text file")
	return c
}

func sourceText(ws *workspaceCtx, file string, args []string) (string, error) {
	var parts []string

	if f := strings.TrimSpace(file); f != "" {
		if yamlworkbook.IsWorkbookPath(f) {
			wb, err := ws.workbooks.LoadWorkbook(f)
			if err != nil {
				return "", err
			}
			parts = append(parts, wb.Text)
		} else {
			b, err := os.ReadFile(f)
			if err != nil {
				return "", &domain.OpError{Op: "cli.piglatin", Kind: domain.KindNotFound, Path: f, Err: err}
			}
			parts = append(parts, string(b))
		}
	}

	parts = append(parts, args...)
	text := strings.Join(parts, " ")
	if strings.TrimSpace(text) == "" {
		return "", &domain.OpError{
			Op:   "cli.piglatin",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("no text given (pass words as arguments or use --file)"),
		}
	}
	return text, nil
}
