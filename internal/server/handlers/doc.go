// Package handlers provides the infrastructure HTTP handlers (health, version, API docs).
//
// The journal entry resource is in internal/journal/handlers.
package handlers
