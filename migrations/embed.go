package migrations

import "embed"

// FS holds the goose migrations of the dispatch read model.
//
//go:embed *.sql
var FS embed.FS
