// Package migrations embeds the SQL migration files so the server can apply
// them without a migrations directory on disk.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
