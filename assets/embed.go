// Package assets provides embedded character data tables.
package assets

import "embed"

// Data contains the bundled YAML tables: character frequency ranks, the
// radical/stroke excerpt, compound words and idioms, and the common-character
// seed list.
//
//go:embed data/*.yaml
var Data embed.FS
