// Package server provides the HTTP server for the journey API.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Routes:
//   - /api/journal-entries: the journal entry resource (internal/journal/handlers)
//   - /health/live, /health/ready, /version, /swagger/doc.json: infrastructure handlers (internal/server/handlers)
//
// middleware is in internal/server/middleware
package server
