package render

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/internal/logging"
	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/field"
	"github.com/goliatone/go-countryselect/pkg/render/template"
	"github.com/goliatone/go-countryselect/pkg/render/template/gotemplate"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

// ClassTokenPrefix namespaces the theme tokens the renderer reads. A manifest
// token "countryselect.control" sets the class of the input element.
const ClassTokenPrefix = "countryselect."

// Class slots.
const (
	SlotWrapper = "wrapper"
	SlotControl = "control"
	SlotOption  = "option"
)

var defaultClasses = map[string]string{
	SlotWrapper: "country-field",
	SlotControl: "country-field__control",
	SlotOption:  "country-field__option",
}

var idUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Renderer turns a field and its normalized value into an HTML control.
type Renderer struct {
	engine       template.TemplateRenderer
	templatesDir string
	themes       theme.ThemeSelector
	logger       logrus.FieldLogger
}

// New constructs a Renderer. Without WithEngine the bundled pongo2 templates
// are used.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{logger: logging.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if r.engine == nil {
		engineOpts := []gotemplate.Option{gotemplate.WithFS(TemplatesFS())}
		if r.templatesDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(r.templatesDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("render: init templates: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name identifies the renderer.
func (r *Renderer) Name() string {
	return "countryselect"
}

// ContentType of the rendered output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML control for f showing value. A nil value renders
// the full catalog with nothing selected. Codes the catalog no longer knows
// are rendered as an extra selected option at the top so saving the form
// does not silently drop them.
func (r *Renderer) Render(ctx context.Context, f field.Field, value selection.FieldValue, opts RenderOptions) (string, error) {
	if r == nil || r.engine == nil {
		return "", errors.New("render: renderer not initialised")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	tmpl := f.Kind.Template()
	if tmpl == "" {
		return "", fmt.Errorf("render: field %s: %w: %q", f.Handle, field.ErrUnknownKind, f.Kind)
	}
	if strings.TrimSpace(f.Handle) == "" {
		return "", fmt.Errorf("render: field handle is required")
	}

	value = coerce(value, opts.Catalog, f.Multi())
	classes, err := r.classes(opts)
	if err != nil {
		return "", err
	}

	name := inputName(opts.Namespace, f.Handle)
	data := map[string]any{
		"kind":        f.Kind.String(),
		"id":          inputID(opts.Namespace, f.Handle),
		"name":        name,
		"base_name":   name,
		"required":    f.Required,
		"has_value":   !value.IsEmpty(),
		"placeholder": sanitizeLabel(opts.Placeholder),
		"classes":     classes,
		"options":     optionsData(value),
	}
	if f.Multi() {
		data["name"] = name + "[]"
	}

	out, err := r.engine.RenderTemplate(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("render: field %s: %w", f.Handle, err)
	}
	r.logger.WithFields(logrus.Fields{
		"field":    f.Handle,
		"kind":     f.Kind.String(),
		"selected": len(value.Canonical().Values()),
	}).Debug("rendered country field")
	return out, nil
}

// coerce makes sure value matches the field mode, re-normalizing against the
// options it already carries when it does not. A nil value gets the options
// of cat, or of the English catalog when cat is empty.
func coerce(value selection.FieldValue, cat catalog.Catalog, multi bool) selection.FieldValue {
	if value == nil {
		if cat.Len() == 0 {
			cat = catalog.Build(nil)
		}
		return selection.Normalize(nil, cat, multi)
	}
	if value.IsMulti() == multi {
		return value
	}
	options := value.Options()
	entries := make([]catalog.Entry, 0, len(options))
	for _, option := range options {
		entries = append(entries, catalog.Entry{Code: option.Code, Label: option.Label})
	}
	return selection.Normalize(value.Canonical(), catalog.FromEntries(entries), multi)
}

func optionsData(value selection.FieldValue) []map[string]any {
	options := value.Options()
	known := make(map[string]struct{}, len(options))
	for _, option := range options {
		known[option.Code] = struct{}{}
	}

	out := make([]map[string]any, 0, len(options)+1)
	for _, code := range value.Canonical().Values() {
		if _, ok := known[code]; ok {
			continue
		}
		known[code] = struct{}{}
		out = append(out, map[string]any{
			"value":    code,
			"label":    sanitizeLabel(code),
			"selected": true,
			"stale":    true,
		})
	}
	for _, option := range options {
		out = append(out, map[string]any{
			"value":    option.Code,
			"label":    sanitizeLabel(option.Label),
			"selected": option.Selected,
		})
	}
	return out
}

func (r *Renderer) classes(opts RenderOptions) (map[string]string, error) {
	classes := make(map[string]string, len(defaultClasses))
	for slot, class := range defaultClasses {
		classes[slot] = class
	}

	if opts.Theme != "" && r.themes != nil {
		sel, err := r.themes.Select(opts.Theme, opts.ThemeVariant)
		if err != nil {
			return nil, fmt.Errorf("render: select theme %q: %w", opts.Theme, err)
		}
		for slot, class := range themeClasses(sel) {
			classes[slot] = class
		}
	}

	for slot, class := range opts.Classes {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		classes[slot] = strings.TrimSpace(class)
	}
	return classes, nil
}

func themeClasses(sel *theme.Selection) map[string]string {
	if sel == nil || sel.Manifest == nil {
		return nil
	}
	tokens := make(map[string]string)
	for key, value := range sel.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	out := make(map[string]string)
	for key, value := range tokens {
		slot, ok := strings.CutPrefix(key, ClassTokenPrefix)
		if !ok || slot == "" {
			continue
		}
		out[slot] = value
	}
	return out
}

func inputName(namespace, handle string) string {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return handle
	}
	return namespace + "[" + handle + "]"
}

func inputID(namespace, handle string) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{namespace, handle} {
		cleaned := strings.Trim(idUnsafe.ReplaceAllString(strings.TrimSpace(part), "-"), "-")
		if cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return strings.ToLower(strings.Join(parts, "-"))
}
