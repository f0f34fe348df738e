package ports

import "github.com/fahrenkrug/rust-learn-book-collections/internal/domain"

// WorkbookLoader loads exercise inputs from a source (e.g., filesystem).
type WorkbookLoader interface {
	LoadWorkbook(path string) (domain.Workbook, error)
	// LoadCommandLines reads a plain-text file holding one command per line.
	LoadCommandLines(path string) ([]string, error)
}
