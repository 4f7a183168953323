// Package web embeds the HTML templates of generated documents.
package web

import "embed"

// Templates embeds document templates.
//
//go:embed templates/documents/*.html
var Templates embed.FS
