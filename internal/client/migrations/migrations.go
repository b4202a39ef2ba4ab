// Package migrations embeds the sqlite schema for the client's local
// database, applied by goose on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
