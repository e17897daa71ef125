package selection

import (
	"encoding/json"

	"github.com/goliatone/go-countryselect/pkg/catalog"
)

// Option is a catalog entry annotated with whether it is part of the current
// value.
type Option struct {
	Code     string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FieldValue is the normalized value of a country field. It is either a
// *Single or a *Multi.
type FieldValue interface {
	// IsMulti reports whether the value allows several codes.
	IsMulti() bool
	// Options returns every catalog entry in catalog order.
	Options() []Option
	// SelectedOptions returns the catalog entries marked selected.
	SelectedOptions() []Option
	// Canonical returns the storable form of the value.
	Canonical() RawValue
	// IsEmpty reports whether nothing is chosen.
	IsEmpty() bool
}

// Single is the value of a dropdown or radio field.
type Single struct {
	// Code is the chosen code, or "" when nothing is chosen.
	Code string
	// Label is the catalog label for Code, or Code itself when the catalog
	// does not know it.
	Label string
	// Valid is false when nothing is chosen.
	Valid bool

	options []Option
}

var _ FieldValue = (*Single)(nil)

func (s *Single) IsMulti() bool { return false }

func (s *Single) Options() []Option {
	if s == nil {
		return nil
	}
	return append([]Option{}, s.options...)
}

func (s *Single) SelectedOptions() []Option {
	if s == nil {
		return nil
	}
	return selectedOf(s.options)
}

func (s *Single) Canonical() RawValue {
	if s == nil || !s.Valid {
		return Empty()
	}
	return Scalar(s.Code)
}

func (s *Single) IsEmpty() bool {
	return s == nil || !s.Valid
}

// Known reports whether the chosen code exists in the catalog the value was
// normalized against. Unknown codes are kept as the current value so stale
// data stays visible, but no option is marked for them.
func (s *Single) Known() bool {
	if s == nil || !s.Valid {
		return false
	}
	for _, option := range s.options {
		if option.Code == s.Code {
			return true
		}
	}
	return false
}

func (s *Single) String() string {
	if s == nil {
		return ""
	}
	return s.Label
}

type singleJSON struct {
	Code    *string  `json:"code"`
	Label   *string  `json:"label"`
	Known   bool     `json:"known"`
	Options []Option `json:"options"`
}

func (s *Single) MarshalJSON() ([]byte, error) {
	out := singleJSON{Options: s.options}
	if out.Options == nil {
		out.Options = []Option{}
	}
	if s.Valid {
		code, label := s.Code, s.Label
		out.Code, out.Label = &code, &label
		out.Known = s.Known()
	}
	return json.Marshal(out)
}

// Multi is the value of a multi-select or checkboxes field.
type Multi struct {
	// Codes holds the chosen codes in first-seen order without duplicates.
	// Codes the catalog does not know are kept.
	Codes []string

	options []Option
}

var _ FieldValue = (*Multi)(nil)

func (m *Multi) IsMulti() bool { return true }

func (m *Multi) Options() []Option {
	if m == nil {
		return nil
	}
	return append([]Option{}, m.options...)
}

func (m *Multi) SelectedOptions() []Option {
	if m == nil {
		return nil
	}
	return selectedOf(m.options)
}

func (m *Multi) Canonical() RawValue {
	if m == nil {
		return Empty()
	}
	return List(m.Codes...)
}

func (m *Multi) IsEmpty() bool {
	return m == nil || len(m.Codes) == 0
}

// Contains reports whether code is part of the value.
func (m *Multi) Contains(code string) bool {
	if m == nil {
		return false
	}
	for _, c := range m.Codes {
		if c == code {
			return true
		}
	}
	return false
}

type multiJSON struct {
	Codes   []string `json:"codes"`
	Options []Option `json:"options"`
}

func (m *Multi) MarshalJSON() ([]byte, error) {
	out := multiJSON{Codes: m.Codes, Options: m.options}
	if out.Codes == nil {
		out.Codes = []string{}
	}
	if out.Options == nil {
		out.Options = []Option{}
	}
	return json.Marshal(out)
}

func selectedOf(options []Option) []Option {
	out := make([]Option, 0, 1)
	for _, option := range options {
		if option.Selected {
			out = append(out, option)
		}
	}
	return out
}

// Normalize converts a stored value into a FieldValue for cat. A FieldValue of
// the requested mode is returned unchanged. Anything else goes through
// DecodeRaw first; see NormalizeRaw for the rules. Normalize never fails:
// malformed input degrades to a literal code or to nothing selected.
func Normalize(raw any, cat catalog.Catalog, multi bool) FieldValue {
	if value, ok := raw.(FieldValue); ok && !isNilValue(value) && value.IsMulti() == multi {
		return value
	}
	return NormalizeRaw(DecodeRaw(raw), cat, multi)
}

// NormalizeRaw builds a FieldValue from an already coerced value. Options
// follow catalog order and an option is selected iff its code, compared
// exactly, is one of the chosen codes. Single values keep only the first code
// so that re-normalizing their canonical form marks the same options; the
// label comes from the catalog or falls back to the code. Multi values keep
// every distinct code.
func NormalizeRaw(raw RawValue, cat catalog.Catalog, multi bool) FieldValue {
	codes := raw.Values()
	if multi {
		codes = dedupe(codes)
	} else if len(codes) > 1 {
		codes = codes[:1]
	}

	chosen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		chosen[code] = struct{}{}
	}

	options := make([]Option, cat.Len())
	for i := range options {
		entry := cat.At(i)
		_, selected := chosen[entry.Code]
		options[i] = Option{Code: entry.Code, Label: entry.Label, Selected: selected}
	}

	if multi {
		if codes == nil {
			codes = []string{}
		}
		return &Multi{Codes: codes, options: options}
	}

	if len(codes) == 0 {
		return &Single{options: options}
	}
	code := codes[0]
	return &Single{
		Code:    code,
		Label:   cat.Label(code),
		Valid:   true,
		options: options,
	}
}

// Serialize renders a value in the form hosts persist: a bare code for single
// values ("" when empty) and a JSON array for multi values ("[]" when empty).
// A single code that would not decode back to itself, such as "null", "1.50"
// or " ", is written as a JSON string instead. Normalize accepts the output
// unchanged.
func Serialize(value FieldValue) (string, error) {
	if isNilValue(value) {
		return "", nil
	}
	if !value.IsMulti() {
		return serializeCode(value.Canonical())
	}
	codes := value.Canonical().Values()
	if codes == nil {
		codes = []string{}
	}
	payload, err := json.Marshal(codes)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func serializeCode(raw RawValue) (string, error) {
	code := raw.String()
	if code == "" {
		return "", nil
	}
	if decoded := decodeString(code); decoded.Kind() == RawScalar && decoded.String() == code {
		return code, nil
	}
	payload, err := json.Marshal(code)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func dedupe(codes []string) []string {
	if len(codes) < 2 {
		return codes
	}
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
