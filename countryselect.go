package countryselect

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/field"
	"github.com/goliatone/go-countryselect/pkg/i18n"
	"github.com/goliatone/go-countryselect/pkg/render"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

var (
	rendererOnce    sync.Once
	defaultRenderer *render.Renderer
	rendererErr     error
)

// Catalog returns the country catalog with labels in locale, sorted by the
// translated label. The bundled translations cover German and French; any
// other locale, including "" and "en", yields the English labels.
func Catalog(locale string) catalog.Catalog {
	return catalog.Build(translateFor(locale))
}

// CatalogWith builds the catalog using t for labels. Missing translations
// keep the English label.
func CatalogWith(t i18n.Translator, locale string) catalog.Catalog {
	return catalog.Build(i18n.TranslateFunc(t, locale, nil))
}

// Normalize converts a stored value into a FieldValue for cat.
func Normalize(raw any, cat catalog.Catalog, multi bool) selection.FieldValue {
	return selection.Normalize(raw, cat, multi)
}

// Serialize returns the storable form of value.
func Serialize(value selection.FieldValue) (string, error) {
	return selection.Serialize(value)
}

// NewRegistry returns a field registry with the four built-in kinds.
func NewRegistry() *field.Registry {
	return field.NewRegistry()
}

// NewRenderer constructs an HTML renderer. See render.New.
func NewRenderer(opts ...render.Option) (*render.Renderer, error) {
	return render.New(opts...)
}

// EmbeddedTemplates exposes the built-in field templates so callers can
// reuse or extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}

// RenderField normalizes raw for f against the catalog in locale and renders
// it with the bundled templates.
func RenderField(ctx context.Context, f field.Field, raw any, locale string, opts render.RenderOptions) (string, error) {
	rendererOnce.Do(func() {
		defaultRenderer, rendererErr = render.New()
	})
	if rendererErr != nil {
		return "", fmt.Errorf("countryselect: %w", rendererErr)
	}
	value := f.Normalize(raw, translateFor(locale))
	return defaultRenderer.Render(ctx, f, value, opts)
}

func translateFor(locale string) catalog.TranslateFunc {
	locale = strings.TrimSpace(locale)
	if locale == "" || strings.EqualFold(locale, "en") {
		return nil
	}
	messages, err := i18n.DefaultMessages()
	if err != nil {
		return nil
	}
	return i18n.TranslateFunc(messages, locale, nil)
}
