//go:build tools

// Package tools pins the versions of the development tools used to build journey-server:
// sqlc and swag rewrite internal/database and internal/docs from sql/queries and the handler
// annotations, and goose applies the sql/schema migrations outside the server.
package tools

import (
	_ "github.com/air-verse/air"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/securego/gosec/v2/cmd/gosec"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "honnef.co/go/tools/cmd/staticcheck"
)
