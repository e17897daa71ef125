package render

import (
	theme "github.com/goliatone/go-theme"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/render/template"
)

// RenderOptions carry per-request rendering choices.
type RenderOptions struct {
	// Namespace wraps the input name, e.g. "fields" renders "fields[country]".
	Namespace string
	// Placeholder is the empty option label for dropdowns.
	Placeholder string
	// Theme and ThemeVariant select a go-theme manifest whose tokens provide
	// CSS classes (see ClassTokenPrefix).
	Theme        string
	ThemeVariant string
	// Classes override CSS classes by slot: wrapper, control, option.
	Classes map[string]string
	// Catalog supplies the options when the value is nil. An empty catalog
	// falls back to the English one.
	Catalog catalog.Catalog
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine replaces the bundled template engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTemplatesDir loads templates from dir before falling back to the
// bundled ones.
func WithTemplatesDir(dir string) Option {
	return func(r *Renderer) {
		r.templatesDir = dir
	}
}

// WithThemeSelector resolves RenderOptions.Theme through selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(r *Renderer) {
		r.themes = selector
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
