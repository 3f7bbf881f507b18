// Package migrations embeds the Postgres schema for the user mirror.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
