package field

import (
	"fmt"
	"strings"
)

// Kind identifies one of the country field flavours. Kinds differ only in the
// control they render and whether they accept several countries.
type Kind string

// Built-in kinds.
const (
	KindDropdown    Kind = "dropdown"
	KindMultiSelect Kind = "multiselect"
	KindCheckboxes  Kind = "checkboxes"
	KindRadio       Kind = "radio"
)

// Kinds lists the built-in kinds in registration order.
func Kinds() []Kind {
	return []Kind{KindCheckboxes, KindDropdown, KindMultiSelect, KindRadio}
}

// Multi reports whether the kind stores several codes.
func (k Kind) Multi() bool {
	return k == KindMultiSelect || k == KindCheckboxes
}

// Valid reports whether k is a built-in kind.
func (k Kind) Valid() bool {
	switch k {
	case KindDropdown, KindMultiSelect, KindCheckboxes, KindRadio:
		return true
	}
	return false
}

// DisplayName is the English name shown to editors when picking a field type.
func (k Kind) DisplayName() string {
	switch k {
	case KindDropdown:
		return "Country Dropdown"
	case KindMultiSelect:
		return "Country Multi-select"
	case KindCheckboxes:
		return "Country Checkboxes"
	case KindRadio:
		return "Country Radio Buttons"
	}
	return string(k)
}

// Template is the template name the renderer uses for the kind.
func (k Kind) Template() string {
	switch k {
	case KindDropdown:
		return "select"
	case KindMultiSelect:
		return "multiselect"
	case KindCheckboxes:
		return "checkboxes"
	case KindRadio:
		return "radio"
	}
	return ""
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a kind from its name. A few aliases used by form
// builders ("select", "multi-select", "checkbox", "radiobuttons") are
// accepted.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dropdown", "select":
		return KindDropdown, nil
	case "multiselect", "multi-select", "multi":
		return KindMultiSelect, nil
	case "checkboxes", "checkbox":
		return KindCheckboxes, nil
	case "radio", "radiobuttons", "radio-buttons":
		return KindRadio, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}
