// Package handlers implements the HTTP surface of the journal entry API.
//
// Requests are decoded and checked here (body JSON, path id, filter and sort parameters),
// then passed to journal.Service for writes and single entry reads and to
// journal.QueryService for searches. Errors are returned as journal.ErrorResponse bodies.
package handlers
