package testsupport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

// SmallCatalog returns a catalog with a handful of entries so tests can assert
// exact option lists without walking the full country table.
func SmallCatalog() catalog.Catalog {
	return catalog.FromEntries([]catalog.Entry{
		{Code: "FR", Label: "France"},
		{Code: "AD", Label: "Andorra"},
		{Code: "DE", Label: "Germany"},
	})
}

// MustNormalize normalizes raw against cat and fails the test when the result
// is nil.
func MustNormalize(t *testing.T, raw any, cat catalog.Catalog, multi bool) selection.FieldValue {
	t.Helper()

	value := selection.Normalize(raw, cat, multi)
	if value == nil {
		t.Fatalf("normalize %v: got nil value", raw)
	}
	return value
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer and returns both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(w *bytes.Buffer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
