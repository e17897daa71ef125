package render_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/field"
	"github.com/goliatone/go-countryselect/pkg/render"
	"github.com/goliatone/go-countryselect/pkg/testsupport"
)

func TestRenderer_DropdownExactOutput(t *testing.T) {
	renderer := newRenderer(t)
	value := testsupport.MustNormalize(t, "FR", testsupport.SmallCatalog(), false)

	got, err := renderer.Render(testsupport.Context(), field.New("country", field.KindDropdown), value, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	path := filepath.Join("testdata", "dropdown.golden")
	if testsupport.WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, path), got); diff != "" {
		t.Fatalf("dropdown output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_DropdownPlaceholderSelectedWhenEmpty(t *testing.T) {
	renderer := newRenderer(t)
	value := testsupport.MustNormalize(t, nil, testsupport.SmallCatalog(), false)

	f := field.New("country", field.KindDropdown)
	f.Required = true
	got, err := renderer.Render(testsupport.Context(), f, value, render.RenderOptions{Placeholder: "Pick <b>one</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `<option value="" selected>Pick one</option>`) {
		t.Fatalf("expected selected sanitized placeholder, got:\n%s", got)
	}
	if !strings.Contains(got, `class="country-field__control" required>`) {
		t.Fatalf("expected required attribute, got:\n%s", got)
	}
	if strings.Contains(got, " selected>France") {
		t.Fatalf("expected no selected country, got:\n%s", got)
	}
}

func TestRenderer_CheckboxesNamespaced(t *testing.T) {
	renderer := newRenderer(t)
	value := testsupport.MustNormalize(t, `["DE","AD"]`, testsupport.SmallCatalog(), true)

	got, err := renderer.Render(context.Background(), field.New("regions", field.KindCheckboxes), value, render.RenderOptions{Namespace: "fields"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, fragment := range []string{
		`<fieldset id="fields-regions" class="country-field" data-country-field="checkboxes">`,
		`<input type="hidden" name="fields[regions]" value="">`,
		`id="fields-regions-ad" name="fields[regions][]" value="AD" checked> Andorra`,
		`id="fields-regions-fr" name="fields[regions][]" value="FR"> France`,
		`id="fields-regions-de" name="fields[regions][]" value="DE" checked> Germany`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected fragment %q in:\n%s", fragment, got)
		}
	}
}

func TestRenderer_MultiSelect(t *testing.T) {
	renderer := newRenderer(t)
	value := testsupport.MustNormalize(t, []string{"FR"}, testsupport.SmallCatalog(), true)

	got, err := renderer.Render(context.Background(), field.New("visited", field.KindMultiSelect), value, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `<select id="visited" name="visited[]" class="country-field__control" multiple>`) {
		t.Fatalf("expected multiple select, got:\n%s", got)
	}
	if !strings.Contains(got, `<option value="FR" selected>France</option>`) {
		t.Fatalf("expected France selected, got:\n%s", got)
	}
	if strings.Count(got, " selected>") != 1 {
		t.Fatalf("expected exactly one selected option, got:\n%s", got)
	}
}

func TestRenderer_RadioRequiredOnFirstOption(t *testing.T) {
	renderer := newRenderer(t)
	value := testsupport.MustNormalize(t, "DE", testsupport.SmallCatalog(), false)

	f := field.New("home", field.KindRadio)
	f.Required = true
	got, err := renderer.Render(context.Background(), f, value, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(got, " required>") != 1 {
		t.Fatalf("expected a single required radio, got:\n%s", got)
	}
	if !strings.Contains(got, `value="AD" required> Andorra`) {
		t.Fatalf("expected required on the first radio, got:\n%s", got)
	}
	if !strings.Contains(got, `value="DE" checked> Germany`) {
		t.Fatalf("expected Germany checked, got:\n%s", got)
	}
}

func TestRenderer_StaleCodeRenderedFirst(t *testing.T) {
	renderer := newRenderer(t)
	value := testsupport.MustNormalize(t, "YU", testsupport.SmallCatalog(), false)

	got, err := renderer.Render(context.Background(), field.New("country", field.KindDropdown), value, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	stale := strings.Index(got, `<option value="YU" selected>YU</option>`)
	first := strings.Index(got, `<option value="AD">`)
	if stale < 0 || first < 0 || stale > first {
		t.Fatalf("expected stale option before catalog options, got:\n%s", got)
	}
}

func TestRenderer_ModeMismatchRenormalizes(t *testing.T) {
	renderer := newRenderer(t)
	value := testsupport.MustNormalize(t, []string{"FR", "DE"}, testsupport.SmallCatalog(), true)

	got, err := renderer.Render(context.Background(), field.New("country", field.KindDropdown), value, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(got, " selected>") != 1 || !strings.Contains(got, `<option value="FR" selected>`) {
		t.Fatalf("expected only the first code selected, got:\n%s", got)
	}
}

func TestRenderer_NilValueRendersFullCatalog(t *testing.T) {
	renderer := newRenderer(t)

	got, err := renderer.Render(context.Background(), field.New("country", field.KindDropdown), nil, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(got, "<option value=") != catalog.Build(nil).Len()+1 {
		t.Fatalf("expected every country plus the placeholder")
	}
}

func TestRenderer_NilValueUsesOptionsCatalog(t *testing.T) {
	renderer := newRenderer(t)

	got, err := renderer.Render(context.Background(), field.New("country", field.KindDropdown), nil, render.RenderOptions{
		Catalog: testsupport.SmallCatalog(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(got, "<option value=") != testsupport.SmallCatalog().Len()+1 {
		t.Fatalf("expected the given catalog plus the placeholder, got:\n%s", got)
	}
	if !strings.Contains(got, `<option value="AD">Andorra</option>`) {
		t.Fatalf("expected options from the given catalog, got:\n%s", got)
	}
}

func TestRenderer_SanitizesLabels(t *testing.T) {
	renderer := newRenderer(t)
	cat := catalog.FromEntries([]catalog.Entry{
		{Code: "TT", Label: "Trinidad & Tobago"},
		{Code: "XX", Label: `<script>alert(1)</script>Nowhere`},
	})
	value := testsupport.MustNormalize(t, nil, cat, false)

	got, err := renderer.Render(context.Background(), field.New("country", field.KindDropdown), value, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected script stripped, got:\n%s", got)
	}
	if !strings.Contains(got, "Trinidad &amp; Tobago") {
		t.Fatalf("expected escaped ampersand, got:\n%s", got)
	}
}

func TestRenderer_ThemeTokensAndOverrides(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				"countryselect.wrapper": "acme-field",
				"countryselect.control": "acme-select",
				"brand":                 "#123456",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"countryselect.control": "acme-select--dark"}},
			},
		},
	}}
	renderer, err := render.New(render.WithThemeSelector(selector))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	value := testsupport.MustNormalize(t, "FR", testsupport.SmallCatalog(), false)

	got, err := renderer.Render(context.Background(), field.New("country", field.KindDropdown), value, render.RenderOptions{
		Theme:        "acme",
		ThemeVariant: "dark",
		Classes:      map[string]string{render.SlotWrapper: "override"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != "acme/dark" {
		t.Fatalf("unexpected selector calls %v", selector.calls)
	}
	if !strings.Contains(got, `<div class="override"`) {
		t.Fatalf("expected class override, got:\n%s", got)
	}
	if !strings.Contains(got, `class="acme-select--dark"`) {
		t.Fatalf("expected variant token class, got:\n%s", got)
	}
}

func TestRenderer_ThemeSelectionError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("unknown theme")}
	renderer, err := render.New(render.WithThemeSelector(selector))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	_, err = renderer.Render(context.Background(), field.New("country", field.KindDropdown), nil, render.RenderOptions{Theme: "ghost"})
	if err == nil {
		t.Fatalf("expected theme selection error")
	}
}

func TestRenderer_Errors(t *testing.T) {
	renderer := newRenderer(t)

	if _, err := renderer.Render(context.Background(), field.New("country", field.Kind("slider")), nil, render.RenderOptions{}); !errors.Is(err, field.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := renderer.Render(context.Background(), field.New("  ", field.KindRadio), nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for missing handle")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, field.New("country", field.KindRadio), nil, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.Name() != "countryselect" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestTemplatesFS_BundlesEveryKind(t *testing.T) {
	files := render.TemplatesFS()
	for _, kind := range field.Kinds() {
		name := kind.Template() + ".tpl"
		f, err := files.Open(name)
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		_ = f.Close()
	}
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, name+"/"+variant)
	return s.selection, s.err
}
