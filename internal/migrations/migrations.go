// Package migrations holds the goose-managed schema, embedded so the binary
// can migrate at startup without shipping loose SQL files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
