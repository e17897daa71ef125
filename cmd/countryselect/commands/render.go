package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-countryselect/pkg/render"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	FieldSelector `embed:""`

	Value       string   `arg:"" optional:"" help:"Stored value to render as selected"`
	Namespace   string   `short:"n" help:"Input name namespace, e.g. fields"`
	Placeholder string   `short:"p" help:"Placeholder for single-value dropdowns"`
	Theme       string   `help:"Theme name used to resolve classes"`
	Variant     string   `help:"Theme variant"`
	ThemeFile   []string `name:"theme-file" help:"YAML theme manifest to load (repeatable)"`
	Output      string   `help:"Write the HTML to this file instead of stdout" type:"path"`
}

func (r *RenderCmd) Run(g *Global) error {
	f, err := r.Resolve(g)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(g, r.ThemeFile...)
	if err != nil {
		return err
	}

	value := selection.Normalize(r.Value, g.Catalog(), f.Multi())
	html, err := renderer.Render(context.Background(), f, value, render.RenderOptions{
		Namespace:    r.Namespace,
		Placeholder:  r.Placeholder,
		Theme:        r.Theme,
		ThemeVariant: r.Variant,
	})
	if err != nil {
		return err
	}

	if r.Output == "" {
		_, err = fmt.Fprint(g.Out, html)
		return err
	}
	if err := os.WriteFile(r.Output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.Output, err)
	}
	g.Logger.WithField("path", r.Output).Info("rendered field")
	return nil
}

func newRenderer(g *Global, themeFiles ...string) (*render.Renderer, error) {
	opts := []render.Option{
		render.WithTemplatesDir(g.Config.TemplatesDir),
		render.WithLogger(g.Logger),
	}
	if len(themeFiles) > 0 {
		selector, err := loadThemeManifests(themeFiles...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithThemeSelector(selector))
	}
	return render.New(opts...)
}
