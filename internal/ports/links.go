package ports

import "linkdir/internal/domain"

// LinkSource supplies the dataset a session browses.
// Implementations are read once at startup.
type LinkSource interface {
	// Load returns every link and category in source order
	Load() (domain.Dataset, error)
}

// LinkStore provides persistent storage for a dataset
type LinkStore interface {
	LinkSource

	// Lifecycle
	Open(path string) error
	Close() error

	// Queries
	GetLink(id string) (*domain.Link, error)
	CountLinks() (int, error)

	// Batch updates (for imports)
	BeginTx() (StoreTx, error)
}

// StoreTx represents a transaction for atomic dataset updates
type StoreTx interface {
	UpsertCategory(c *domain.Category) error
	UpsertLink(l *domain.Link, position int) error
	DeleteAll() error

	// Transaction control
	Commit() error
	Rollback() error
}
