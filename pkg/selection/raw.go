package selection

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// RawKind tags the shape of a stored field value.
type RawKind int

const (
	RawEmpty RawKind = iota
	RawScalar
	RawList
)

func (k RawKind) String() string {
	switch k {
	case RawScalar:
		return "scalar"
	case RawList:
		return "list"
	default:
		return "empty"
	}
}

// RawValue is the stored value after the host coerced it into one of three
// shapes: nothing, a single code, or a list of codes. Construct it with
// Empty, Scalar or List, or let DecodeRaw inspect an arbitrary value.
type RawValue struct {
	kind   RawKind
	values []string
}

// Empty returns the RawValue for an absent value.
func Empty() RawValue {
	return RawValue{kind: RawEmpty}
}

// Scalar returns a single-code RawValue. An empty string is treated as Empty.
func Scalar(code string) RawValue {
	if code == "" {
		return Empty()
	}
	return RawValue{kind: RawScalar, values: []string{code}}
}

// List returns a list RawValue. Empty strings are dropped; a list with no
// remaining codes is Empty.
func List(codes ...string) RawValue {
	values := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		values = append(values, code)
	}
	if len(values) == 0 {
		return Empty()
	}
	return RawValue{kind: RawList, values: values}
}

// Kind reports the shape of the value.
func (r RawValue) Kind() RawKind {
	return r.kind
}

// IsEmpty reports whether no code is present.
func (r RawValue) IsEmpty() bool {
	return r.kind == RawEmpty || len(r.values) == 0
}

// Values returns the codes in stored order: none for Empty, one for Scalar.
func (r RawValue) Values() []string {
	if r.IsEmpty() {
		return nil
	}
	return append([]string{}, r.values...)
}

func (r RawValue) String() string {
	switch r.kind {
	case RawScalar:
		return r.values[0]
	case RawList:
		return "[" + strings.Join(r.values, ",") + "]"
	default:
		return ""
	}
}

// DecodeRaw inspects a value as handed over by a storage layer and coerces it
// into a RawValue. Strings are JSON-decoded when they hold JSON and taken
// literally otherwise. Slices become lists, other scalars become their text
// form, and nil becomes Empty. A FieldValue yields its canonical form.
func DecodeRaw(raw any) RawValue {
	switch v := raw.(type) {
	case nil:
		return Empty()
	case RawValue:
		return v
	case *RawValue:
		if v == nil {
			return Empty()
		}
		return *v
	case FieldValue:
		if isNilValue(v) {
			return Empty()
		}
		return v.Canonical()
	case string:
		return decodeString(v)
	case []byte:
		return decodeString(string(v))
	case json.RawMessage:
		return decodeString(string(v))
	case []string:
		return List(v...)
	case []any:
		return List(flatten(v)...)
	case map[string]any:
		return List(flatten(mapValues(v))...)
	}

	if text, ok := scalarText(raw); ok {
		return Scalar(text)
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return List(flatten(items)...)
	case reflect.Pointer:
		if rv.IsNil() {
			return Empty()
		}
		return DecodeRaw(rv.Elem().Interface())
	}
	return Scalar(fmt.Sprint(raw))
}

func decodeString(s string) RawValue {
	if strings.TrimSpace(s) == "" {
		return Empty()
	}

	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return Scalar(s)
	}

	switch v := decoded.(type) {
	case nil:
		return Empty()
	case string:
		return Scalar(v)
	case []any:
		return List(flatten(v)...)
	case map[string]any:
		return List(flatten(mapValues(v))...)
	}
	if text, ok := scalarText(decoded); ok {
		return Scalar(text)
	}
	return Scalar(s)
}

// flatten stringifies list members, skipping nulls and descending into
// nested lists.
func flatten(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			continue
		case string:
			out = append(out, v)
		case []any:
			out = append(out, flatten(v)...)
		case []string:
			out = append(out, v...)
		default:
			if text, ok := scalarText(v); ok {
				out = append(out, text)
				continue
			}
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}

// mapValues returns the values of an object ordered by key so decoding is
// deterministic.
func mapValues(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, key := range keys {
		out = append(out, m[key])
	}
	return out
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(t).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(t).Uint(), 10), true
	case json.Number:
		return t.String(), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
