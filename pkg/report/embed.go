package report

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded report layout for consumers that want to
// customize it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
