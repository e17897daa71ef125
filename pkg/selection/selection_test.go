package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-countryselect/pkg/catalog"
)

func selectedCodes(value FieldValue) []string {
	var out []string
	for _, option := range value.SelectedOptions() {
		out = append(out, option.Code)
	}
	return out
}

func TestNormalize_SingleKnownCode(t *testing.T) {
	cat := catalog.Build(nil)

	value := Normalize("GB", cat, false)
	single, ok := value.(*Single)
	if !ok {
		t.Fatalf("expected *Single, got %T", value)
	}
	if !single.Valid || single.Code != "GB" || single.Label != "United Kingdom" {
		t.Fatalf("unexpected single value: %+v", single)
	}
	if !single.Known() {
		t.Fatalf("expected GB to be known")
	}
	if diff := cmp.Diff([]string{"GB"}, selectedCodes(value)); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
}

func TestNormalize_MultiFromJSONFollowsCatalogOrder(t *testing.T) {
	cat := catalog.Build(nil)

	value := Normalize(`["GB","FR"]`, cat, true)
	multi, ok := value.(*Multi)
	if !ok {
		t.Fatalf("expected *Multi, got %T", value)
	}
	if diff := cmp.Diff([]string{"GB", "FR"}, multi.Codes); diff != "" {
		t.Fatalf("unexpected codes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"FR", "GB"}, selectedCodes(value)); diff != "" {
		t.Fatalf("options should follow catalog order (-want +got):\n%s", diff)
	}
}

func TestNormalize_NilIsEmpty(t *testing.T) {
	cat := catalog.Build(nil)

	single := Normalize(nil, cat, false).(*Single)
	if single.Valid || single.Code != "" || single.Label != "" {
		t.Fatalf("expected empty single value, got %+v", single)
	}
	if len(single.SelectedOptions()) != 0 {
		t.Fatalf("expected no selected options")
	}

	multi := Normalize(nil, cat, true).(*Multi)
	if multi.Codes == nil || len(multi.Codes) != 0 {
		t.Fatalf("expected empty non-nil codes, got %#v", multi.Codes)
	}
}

func TestNormalize_UnknownSingleCodeKeepsRawLabel(t *testing.T) {
	cat := catalog.Build(nil)

	single := Normalize("ZZ", cat, false).(*Single)
	if !single.Valid || single.Code != "ZZ" || single.Label != "ZZ" {
		t.Fatalf("unexpected value for unknown code: %+v", single)
	}
	if single.Known() {
		t.Fatalf("expected ZZ to be unknown")
	}
	if len(single.SelectedOptions()) != 0 {
		t.Fatalf("expected no catalog option selected, got %#v", single.SelectedOptions())
	}
}

func TestNormalize_MultiCollapsesDuplicates(t *testing.T) {
	cat := catalog.Build(nil)

	multi := Normalize([]string{"GB", "GB"}, cat, true).(*Multi)
	if diff := cmp.Diff([]string{"GB"}, multi.Codes); diff != "" {
		t.Fatalf("unexpected codes (-want +got):\n%s", diff)
	}
	if got := len(multi.SelectedOptions()); got != 1 {
		t.Fatalf("expected one selected option, got %d", got)
	}
}

func TestNormalize_InputShapes(t *testing.T) {
	cat := catalog.Build(nil)

	cases := []struct {
		name  string
		raw   any
		multi bool
		want  []string
	}{
		{name: "json scalar string single", raw: `"FR"`, want: []string{"FR"}},
		{name: "json scalar string multi", raw: `"FR"`, multi: true, want: []string{"FR"}},
		{name: "literal multi", raw: "FR", multi: true, want: []string{"FR"}},
		{name: "malformed json literal", raw: `["FR"`, want: []string{`["FR"`}},
		{name: "json null", raw: "null", multi: true, want: nil},
		{name: "empty string", raw: "", want: nil},
		{name: "whitespace string", raw: "   ", multi: true, want: nil},
		{name: "list single takes first", raw: []string{"DE", "FR"}, want: []string{"DE"}},
		{name: "any list", raw: []any{"DE", nil, "FR"}, multi: true, want: []string{"DE", "FR"}},
		{name: "bytes", raw: []byte(`["DE"]`), multi: true, want: []string{"DE"}},
		{name: "json object values", raw: `{"b":"FR","a":"DE"}`, multi: true, want: []string{"DE", "FR"}},
		{name: "raw value", raw: List("DE", "DE", "FR"), multi: true, want: []string{"DE", "FR"}},
		{name: "number", raw: 42, want: []string{"42"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value := Normalize(tc.raw, cat, tc.multi)
			got := value.Canonical().Values()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected codes (-want +got):\n%s", diff)
			}
			if len(value.Options()) != cat.Len() {
				t.Fatalf("expected %d options, got %d", cat.Len(), len(value.Options()))
			}
		})
	}
}

func TestNormalize_SingleModeKeepsFirstListedCode(t *testing.T) {
	cat := catalog.Build(nil)

	value := Normalize([]string{"GB", "FR"}, cat, false)
	if diff := cmp.Diff([]string{"GB"}, selectedCodes(value)); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
	if single := value.(*Single); single.Code != "GB" {
		t.Fatalf("expected first listed code as current value, got %q", single.Code)
	}
}

func TestNormalize_CodeMatchIsCaseSensitive(t *testing.T) {
	cat := catalog.Build(nil)

	single := Normalize("gb", cat, false).(*Single)
	if single.Known() || len(single.SelectedOptions()) != 0 {
		t.Fatalf("expected lowercase code not to match, got %+v", single.SelectedOptions())
	}
	if single.Label != "gb" {
		t.Fatalf("expected fallback label, got %q", single.Label)
	}
}

func TestNormalize_PassesThroughNormalizedValues(t *testing.T) {
	cat := catalog.Build(nil)

	first := Normalize(`["GB"]`, cat, true)
	if again := Normalize(first, cat, true); again != first {
		t.Fatalf("expected normalized value to pass through unchanged")
	}

	converted := Normalize(first, cat, false)
	single, ok := converted.(*Single)
	if !ok || single.Code != "GB" {
		t.Fatalf("expected mode change to renormalize, got %#v", converted)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	cat := catalog.Build(nil)
	inputs := []any{nil, "GB", "ZZ", `["GB","FR","GB"]`, []string{"DE"}, `not json`}

	for _, multi := range []bool{false, true} {
		for _, raw := range inputs {
			first := Normalize(raw, cat, multi)
			second := Normalize(first.Canonical(), cat, multi)
			if diff := cmp.Diff(first.Canonical().Values(), second.Canonical().Values()); diff != "" {
				t.Fatalf("codes changed for %v (multi=%v):\n%s", raw, multi, diff)
			}
			if diff := cmp.Diff(first.Options(), second.Options()); diff != "" {
				t.Fatalf("options changed for %v (multi=%v):\n%s", raw, multi, diff)
			}
		}
	}
}

func TestNormalize_UnknownMultiCodesAreKept(t *testing.T) {
	cat := catalog.Build(nil)

	multi := Normalize(`["ZZ","FR"]`, cat, true).(*Multi)
	if !multi.Contains("ZZ") || !multi.Contains("FR") {
		t.Fatalf("expected both codes kept, got %#v", multi.Codes)
	}
	if diff := cmp.Diff([]string{"FR"}, selectedCodes(multi)); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
}

func TestSerialize_RoundTrips(t *testing.T) {
	cat := catalog.Build(nil)

	cases := []struct {
		name  string
		raw   any
		multi bool
		want  string
	}{
		{name: "single", raw: "GB", want: "GB"},
		{name: "single empty", raw: nil, want: ""},
		{name: "multi", raw: []string{"GB", "FR"}, multi: true, want: `["GB","FR"]`},
		{name: "multi empty", raw: nil, multi: true, want: `[]`},
		{name: "single numeric code stays bare", raw: 1, want: "1"},
		{name: "single null code is quoted", raw: Scalar("null"), want: `"null"`},
		{name: "single decimal code is quoted", raw: Scalar("1.50"), want: `"1.50"`},
		{name: "single blank code is quoted", raw: Scalar(" "), want: `" "`},
		{name: "single bracketed code stays bare", raw: Scalar("[FR"), want: "[FR"},
		{name: "single array-like code is quoted", raw: Scalar(`["FR"]`), want: `"[\"FR\"]"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value := Normalize(tc.raw, cat, tc.multi)
			stored, err := Serialize(value)
			if err != nil {
				t.Fatalf("serialize: %v", err)
			}
			if stored != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, stored)
			}

			back := Normalize(stored, cat, tc.multi)
			if diff := cmp.Diff(value.Canonical().Values(), back.Canonical().Values()); diff != "" {
				t.Fatalf("round trip changed codes:\n%s", diff)
			}
		})
	}
}
