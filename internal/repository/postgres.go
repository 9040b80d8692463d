package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/information-sharing-networks/journey/internal/database"
	"github.com/information-sharing-networks/journey/internal/journal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgres error codes mapped to validation errors
const (
	pgNotNullViolation         = "23502"
	pgStringDataTruncated      = "22001"
	pgCharacterNotInRepertoire = "22021"
)

// Postgres is a journal.Repository backed by a pgx pool.
type Postgres struct {
	// pool is nil for a repository bound to a transaction
	pool    *pgxpool.Pool
	db      database.DBTX
	queries *database.Queries
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		pool:    pool,
		db:      pool,
		queries: database.New(pool),
	}
}

// WithinTx runs fn with a repository bound to a new transaction.
// Called on a repository that is already bound to a transaction, fn joins that transaction.
func (p *Postgres) WithinTx(ctx context.Context, fn func(ctx context.Context, repo journal.Repository) error) error {
	if p.pool == nil {
		return fn(ctx, p)
	}
	return database.WithTx(ctx, p.pool, func(tx pgx.Tx) error {
		return fn(ctx, &Postgres{
			db:      tx,
			queries: p.queries.WithTx(tx),
		})
	})
}

func (p *Postgres) FindAll(ctx context.Context, orders []journal.SortOrder) ([]journal.Entry, error) {
	return p.FindByCriteria(ctx, journal.Criteria{}, orders)
}

func (p *Postgres) FindByID(ctx context.Context, id int64) (journal.Entry, error) {
	row, err := p.queries.GetJournalEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return journal.Entry{}, fmt.Errorf("%w: id %d", journal.ErrNotFound, id)
		}
		return journal.Entry{}, fmt.Errorf("failed to get journal entry %d: %w", id, err)
	}
	return entryFromRow(row), nil
}

func (p *Postgres) Save(ctx context.Context, e journal.Entry) (journal.Entry, error) {
	if e.ID == nil {
		row, err := p.queries.CreateJournalEntry(ctx, database.CreateJournalEntryParams{
			Title:       e.Title,
			Description: e.Description,
		})
		if err != nil {
			return journal.Entry{}, mapWriteError(err, "failed to insert journal entry")
		}
		return entryFromRow(row), nil
	}

	row, err := p.queries.UpdateJournalEntry(ctx, database.UpdateJournalEntryParams{
		ID:          *e.ID,
		Title:       e.Title,
		Description: e.Description,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return journal.Entry{}, fmt.Errorf("%w: id %d", journal.ErrNotFound, *e.ID)
		}
		return journal.Entry{}, mapWriteError(err, fmt.Sprintf("failed to update journal entry %d", *e.ID))
	}
	return entryFromRow(row), nil
}

func (p *Postgres) DeleteByID(ctx context.Context, id int64) (bool, error) {
	n, err := p.queries.DeleteJournalEntry(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete journal entry %d: %w", id, err)
	}
	return n > 0, nil
}

func (p *Postgres) Count(ctx context.Context) (int64, error) {
	n, err := p.queries.CountJournalEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return n, nil
}

func (p *Postgres) FindByCriteria(ctx context.Context, c journal.Criteria, orders []journal.SortOrder) ([]journal.Entry, error) {
	query, args, err := selectStatement(c, orders)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[database.JournalEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to read journal entries: %w", err)
	}

	entries := make([]journal.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, entryFromRow(r))
	}
	return entries, nil
}

func (p *Postgres) CountByCriteria(ctx context.Context, c journal.Criteria) (int64, error) {
	query, args, err := countStatement(c)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := p.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return n, nil
}

func entryFromRow(row database.JournalEntry) journal.Entry {
	id := row.ID
	return journal.Entry{
		ID:          &id,
		Title:       row.Title,
		Description: row.Description,
	}
}

// mapWriteError turns constraint violations raised by the database into validation errors.
// Input is validated before it reaches the repository, so these only occur when the checks
// and the schema disagree.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation:
			return journal.WrapValidationError(err, fmt.Sprintf("%s: column %s must not be null", msg, pgErr.ColumnName))
		case pgStringDataTruncated:
			return journal.WrapValidationError(err, fmt.Sprintf("%s: value too long", msg))
		case pgCharacterNotInRepertoire:
			return journal.WrapValidationError(err, fmt.Sprintf("%s: value contains characters the database cannot store", msg))
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
