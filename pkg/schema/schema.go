package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/field"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

// Extension keys added to generated schemas.
const (
	ExtensionKind       = "x-countryselect-kind"
	ExtensionEnumLabels = "x-enumNames"
)

const openAPIVersion = "3.0.3"

// ForField returns the schema of the JSON value a client submits for f: a
// string code for single fields and an array of distinct codes for multi
// fields. Codes are restricted to cat. Optional single fields accept null.
func ForField(f field.Field, cat catalog.Catalog) *openapi3.Schema {
	codes := make([]any, 0, cat.Len()+1)
	labels := make([]string, 0, cat.Len())
	for _, entry := range cat.Entries() {
		codes = append(codes, entry.Code)
		labels = append(labels, entry.Label)
	}

	code := &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeString},
		Extensions: map[string]any{
			ExtensionEnumLabels: labels,
		},
	}

	if f.Multi() {
		code.Enum = codes
		s := &openapi3.Schema{
			Type:        &openapi3.Types{openapi3.TypeArray},
			Title:       f.Label,
			Description: f.Instructions,
			Items:       &openapi3.SchemaRef{Value: code},
			UniqueItems: true,
			Extensions: map[string]any{
				ExtensionKind: f.Kind.String(),
			},
		}
		if f.Required {
			s.MinItems = 1
		}
		return s
	}

	if !f.Required {
		code.Nullable = true
		codes = append(codes, nil)
	}
	code.Enum = codes
	code.Title = f.Label
	code.Description = f.Instructions
	code.Extensions[ExtensionKind] = f.Kind.String()
	return code
}

// Validate checks value against the schema of f. It rejects codes missing
// from cat, duplicates in multi values and empty values for required fields.
func Validate(f field.Field, cat catalog.Catalog, value selection.FieldValue) error {
	if err := ForField(f, cat).VisitJSON(jsonValue(f, value), openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("schema: field %s: %w", f.Handle, err)
	}
	return nil
}

// jsonValue converts value to the shape a decoded JSON body would have.
func jsonValue(f field.Field, value selection.FieldValue) any {
	var codes []string
	if value != nil {
		codes = value.Canonical().Values()
	}
	if f.Multi() {
		out := make([]any, 0, len(codes))
		for _, code := range codes {
			out = append(out, code)
		}
		return out
	}
	if len(codes) == 0 {
		return nil
	}
	return codes[0]
}

// Document wraps the schemas of fields into an OpenAPI document. Each field
// becomes a component schema named after its handle and the "CountryFields"
// object schema references all of them.
func Document(title, version string, fields []field.Field, cat catalog.Catalog) (*openapi3.T, error) {
	if strings.TrimSpace(title) == "" {
		title = "Country fields"
	}
	if strings.TrimSpace(version) == "" {
		version = "1.0.0"
	}

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info:    &openapi3.Info{Title: title, Version: version},
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}

	container := &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{},
	}
	for _, f := range fields {
		handle := strings.TrimSpace(f.Handle)
		if handle == "" {
			return nil, errors.New("schema: field handle is required")
		}
		if !f.Kind.Valid() {
			return nil, fmt.Errorf("schema: field %s: %w: %q", handle, field.ErrUnknownKind, f.Kind)
		}
		if _, exists := doc.Components.Schemas[handle]; exists {
			return nil, fmt.Errorf("schema: duplicate field handle %q", handle)
		}
		fieldSchema := ForField(f, cat)
		doc.Components.Schemas[handle] = &openapi3.SchemaRef{Value: fieldSchema}
		container.Properties[handle] = &openapi3.SchemaRef{Ref: "#/components/schemas/" + handle, Value: fieldSchema}
		if f.Required {
			container.Required = append(container.Required, handle)
		}
	}
	doc.Components.Schemas["CountryFields"] = &openapi3.SchemaRef{Value: container}
	return doc, nil
}

// ValidateDocument runs kin-openapi's document validation.
func ValidateDocument(ctx context.Context, doc *openapi3.T) error {
	if doc == nil {
		return errors.New("schema: document is nil")
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("schema: validate document: %w", err)
	}
	return nil
}

// Marshal encodes doc as "json" (indented) or "yaml".
func Marshal(doc *openapi3.T, format string) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("schema: document is nil")
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode json: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return payload, nil
	case "yaml", "yml":
		var generic any
		if err := yaml.Unmarshal(payload, &generic); err != nil {
			return nil, fmt.Errorf("schema: convert to yaml: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("schema: encode yaml: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("schema: unsupported format %q", format)
}
