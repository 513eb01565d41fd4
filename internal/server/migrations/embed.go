// Package migrations embeds the goose migration files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
