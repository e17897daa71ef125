package commands

import (
	"context"
	"fmt"

	"github.com/goliatone/go-countryselect/pkg/field"
	"github.com/goliatone/go-countryselect/pkg/schema"
)

// SchemaCmd implements the 'schema' command.
type SchemaCmd struct {
	Format     string   `short:"o" help:"Output format" enum:"json,yaml" default:"json"`
	Title      string   `help:"Document title" default:"Country fields"`
	DocVersion string   `name:"doc-version" help:"Document version" default:"1.0.0"`
	Fields     []string `short:"f" help:"Handles of configured fields to include (default: all)"`
}

func (s *SchemaCmd) Run(g *Global) error {
	fields, err := s.selectFields(g)
	if err != nil {
		return err
	}

	doc, err := schema.Document(s.Title, s.DocVersion, fields, g.Catalog())
	if err != nil {
		return err
	}
	if err := schema.ValidateDocument(context.Background(), doc); err != nil {
		return err
	}
	payload, err := schema.Marshal(doc, s.Format)
	if err != nil {
		return err
	}
	g.Logger.WithField("fields", len(fields)).Debug("generated schema document")

	if _, err := g.Out.Write(payload); err != nil {
		return err
	}
	if n := len(payload); n > 0 && payload[n-1] != '\n' {
		_, err = fmt.Fprintln(g.Out)
	}
	return err
}

func (s *SchemaCmd) selectFields(g *Global) ([]field.Field, error) {
	if len(s.Fields) == 0 {
		if len(g.Config.Fields) == 0 {
			return []field.Field{field.New("country", field.KindDropdown)}, nil
		}
		return g.Config.Fields, nil
	}
	out := make([]field.Field, 0, len(s.Fields))
	for _, handle := range s.Fields {
		f, ok := g.Config.Field(handle)
		if !ok {
			return nil, fmt.Errorf("field %q is not configured", handle)
		}
		out = append(out, f)
	}
	return out, nil
}
