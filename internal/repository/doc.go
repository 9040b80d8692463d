/*
Package repository contains the implementations of journal.Repository.

Postgres stores entries in the journal_entry table (see sql/schema). The static statements
(insert, update, delete, get by id, count) are the sqlc queries in internal/database; the
criteria and sort dependent statements are rendered by this package from journal.Predicate
values, using bound parameters for every value and a fixed column list for every identifier.

Memory keeps entries in a map and evaluates criteria with journal.Predicate.Match. It is used
by the handler tests and has the same null and ordering semantics as the Postgres implementation.
*/
package repository
