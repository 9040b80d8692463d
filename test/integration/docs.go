// Package integration contains end-to-end tests for the journey API server.
//
// These tests verify the server handles API requests correctly (expected responses,
// error handling, database persistence, etc). Each test runs against a temporary
// database with migrations applied, and the server is started in-process.
//
// The tests also check that the Postgres repository and the in-memory repository used by
// the unit tests return the same results for the same criteria.
package integration
