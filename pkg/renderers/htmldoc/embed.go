package htmldoc

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in page-chrome bundle so callers can reuse or
// extend it without re-embedding.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
