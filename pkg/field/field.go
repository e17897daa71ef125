package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

var (
	// ErrUnknownKind is returned when a kind name cannot be resolved.
	ErrUnknownKind = errors.New("field: unknown kind")
	// ErrRequired is returned by Validate when a required field is empty.
	ErrRequired = errors.New("field: value is required")
	// ErrUnknownCode is returned by ValidateStrict for codes outside the catalog.
	ErrUnknownCode = errors.New("field: unknown country code")
)

// Column types reported by ColumnType, named after the textual column sizes
// host databases offer.
const (
	ColumnString     = "string"
	ColumnText       = "text"
	ColumnMediumText = "mediumtext"
	ColumnLongText   = "longtext"
)

// Field is one configured country field in a host form.
type Field struct {
	Handle       string `json:"handle" yaml:"handle"`
	Kind         Kind   `json:"kind" yaml:"kind"`
	Label        string `json:"label,omitempty" yaml:"label,omitempty"`
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Required     bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// New returns a field with the given handle and kind.
func New(handle string, kind Kind) Field {
	return Field{Handle: strings.TrimSpace(handle), Kind: kind}
}

// Multi reports whether the field stores several codes.
func (f Field) Multi() bool {
	return f.Kind.Multi()
}

// Catalog builds the option catalog for the field using translate for labels.
func (f Field) Catalog(translate catalog.TranslateFunc) catalog.Catalog {
	return catalog.Build(translate)
}

// Normalize builds a fresh catalog and normalizes raw against it.
func (f Field) Normalize(raw any, translate catalog.TranslateFunc) selection.FieldValue {
	return selection.Normalize(raw, f.Catalog(translate), f.Multi())
}

// Serialize returns the storable form of value.
func (f Field) Serialize(value selection.FieldValue) (string, error) {
	if value == nil {
		value = selection.Normalize(nil, catalog.Catalog{}, f.Multi())
	}
	stored, err := selection.Serialize(value)
	if err != nil {
		return "", fmt.Errorf("field %s: serialize: %w", f.Handle, err)
	}
	return stored, nil
}

// ColumnType reports the column size needed to store every possible value:
// single fields hold one short code, multi fields a JSON array that may list
// the whole catalog.
func (f Field) ColumnType() string {
	if !f.Multi() {
		return ColumnString
	}
	return columnTypeForLength(catalog.Build(nil).ColumnLength(true))
}

func columnTypeForLength(length int) string {
	switch {
	case length <= 255:
		return ColumnString
	case length <= 65535:
		return ColumnText
	case length <= 16777215:
		return ColumnMediumText
	default:
		return ColumnLongText
	}
}

// Validate enforces the Required flag. Unknown codes are accepted so stale
// values do not block saving unrelated edits.
func (f Field) Validate(value selection.FieldValue) error {
	if f.Required && (value == nil || value.IsEmpty()) {
		return fmt.Errorf("%w: %s", ErrRequired, f.Handle)
	}
	return nil
}

// ValidateStrict is Validate plus a check that every chosen code exists in
// cat. Use it on API submissions, not when loading stored data.
func (f Field) ValidateStrict(value selection.FieldValue, cat catalog.Catalog) error {
	if err := f.Validate(value); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	var unknown []string
	for _, code := range value.Canonical().Values() {
		if !cat.Contains(code) {
			unknown = append(unknown, code)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrUnknownCode, f.Handle, strings.Join(unknown, ", "))
	}
	return nil
}
