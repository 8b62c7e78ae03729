// Package migrations embeds the SQL migration files so goose can apply them
// at service startup without relying on a filesystem path.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
