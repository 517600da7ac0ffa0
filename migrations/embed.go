// Package migrations holds the goose SQL migrations for the notes schema.
package migrations

import "embed"

// FS contains every *.sql migration, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
