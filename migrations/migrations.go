// Package migrations embeds the schema for the migrator and test harness.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
