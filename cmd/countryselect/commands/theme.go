package commands

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// manifestSelector resolves themes from manifests loaded off disk. Manifests
// are registered with a go-theme registry first so malformed ones are
// rejected before rendering.
type manifestSelector struct {
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*manifestSelector)(nil)

func loadThemeManifests(paths ...string) (*manifestSelector, error) {
	registry := theme.NewRegistry()
	sel := &manifestSelector{manifests: make(map[string]*theme.Manifest, len(paths))}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read theme %s: %w", path, err)
		}
		manifest := &theme.Manifest{}
		if err := yaml.Unmarshal(data, manifest); err != nil {
			return nil, fmt.Errorf("decode theme %s: %w", path, err)
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("register theme %s: %w", path, err)
		}
		sel.manifests[manifest.Name] = manifest
	}
	return sel, nil
}

func (s *manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme %q not loaded", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
