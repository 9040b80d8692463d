package journal

import "context"

// Repository is the persistence boundary for journal entries.
//
// Implementations: repository.Postgres (pgx) and repository.Memory (in-process, used in tests).
type Repository interface {
	// FindAll returns every entry in the requested order (DefaultSort when orders is empty).
	FindAll(ctx context.Context, orders []SortOrder) ([]Entry, error)

	// FindByID returns the entry with the given id or an error wrapping ErrNotFound.
	FindByID(ctx context.Context, id int64) (Entry, error)

	// Save inserts the entry when it has no id and replaces its title and description otherwise.
	// Updating an id that does not exist returns an error wrapping ErrNotFound.
	Save(ctx context.Context, e Entry) (Entry, error)

	// DeleteByID removes the entry and reports whether it existed.
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int64, error)

	// FindByCriteria returns the entries matching every predicate of c, in the requested order.
	FindByCriteria(ctx context.Context, c Criteria, orders []SortOrder) ([]Entry, error)

	// CountByCriteria returns the number of entries FindByCriteria would return for c.
	CountByCriteria(ctx context.Context, c Criteria) (int64, error)

	// WithinTx runs fn with a repository bound to a single transaction.
	// The transaction commits if fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
