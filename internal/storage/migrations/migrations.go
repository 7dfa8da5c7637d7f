// Package migrations embeds the per-dialect goose migration scripts.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
