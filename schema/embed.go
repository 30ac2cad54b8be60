// Package schema provides embedded JSON schemas for tisgen settings and the
// configuration files it generates.
package schema

import "embed"

// FS contains the embedded schema files.
//
//go:embed *.schema.json
var FS embed.FS
