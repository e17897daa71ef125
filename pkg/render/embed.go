package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

// TemplatesFS exposes the bundled field templates (select, multiselect,
// checkboxes, radio) so hosts can copy or extend them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return templatesFS
	}
	return sub
}
