package ports

import "github.com/fahrenkrug/rust-learn-book-collections/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
