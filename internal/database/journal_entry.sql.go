// source: journal_entry.sql

package database

import (
	"context"
)

const countJournalEntries = `-- name: CountJournalEntries :one
SELECT count(*) FROM journal_entry
`

func (q *Queries) CountJournalEntries(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countJournalEntries)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createJournalEntry = `-- name: CreateJournalEntry :one
INSERT INTO journal_entry (title, description)
VALUES ($1, $2)
RETURNING id, title, description
`

type CreateJournalEntryParams struct {
	Title       string
	Description *string
}

func (q *Queries) CreateJournalEntry(ctx context.Context, arg CreateJournalEntryParams) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, createJournalEntry, arg.Title, arg.Description)
	var i JournalEntry
	err := row.Scan(&i.ID, &i.Title, &i.Description)
	return i, err
}

const deleteJournalEntry = `-- name: DeleteJournalEntry :execrows
DELETE FROM journal_entry
WHERE id = $1
`

func (q *Queries) DeleteJournalEntry(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteJournalEntry, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getJournalEntryByID = `-- name: GetJournalEntryByID :one
SELECT id, title, description
FROM journal_entry
WHERE id = $1
`

func (q *Queries) GetJournalEntryByID(ctx context.Context, id int64) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, getJournalEntryByID, id)
	var i JournalEntry
	err := row.Scan(&i.ID, &i.Title, &i.Description)
	return i, err
}

const isDatabaseRunning = `-- name: IsDatabaseRunning :one
SELECT true AS is_running
`

func (q *Queries) IsDatabaseRunning(ctx context.Context) (bool, error) {
	row := q.db.QueryRow(ctx, isDatabaseRunning)
	var is_running bool
	err := row.Scan(&is_running)
	return is_running, err
}

const updateJournalEntry = `-- name: UpdateJournalEntry :one
UPDATE journal_entry
SET title = $2,
    description = $3
WHERE id = $1
RETURNING id, title, description
`

type UpdateJournalEntryParams struct {
	ID          int64
	Title       string
	Description *string
}

func (q *Queries) UpdateJournalEntry(ctx context.Context, arg UpdateJournalEntryParams) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, updateJournalEntry, arg.ID, arg.Title, arg.Description)
	var i JournalEntry
	err := row.Scan(&i.ID, &i.Title, &i.Description)
	return i, err
}
