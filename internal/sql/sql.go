// Package sql embeds the database schema.
package sql

import _ "embed"

//go:embed schema.sql
var schema string

// Schema returns the DDL for the recipes and recipe_images tables.
func Schema() string {
	return schema
}
