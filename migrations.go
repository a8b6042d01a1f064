// Package webroulette holds assets shared by the binaries, such as the
// embedded database migrations.
package webroulette

import "embed"

// Migrations contains the goose migrations for the findings archive.
//
//go:embed migrations/*.sql
var Migrations embed.FS
