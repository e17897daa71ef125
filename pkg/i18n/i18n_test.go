package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-countryselect/pkg/catalog"
)

func TestMessages_TranslateMatchesParentLocale(t *testing.T) {
	m := NewMessages()
	if err := m.Add("fr", map[string]string{"Germany": "Allemagne"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := m.Translate("fr-CA", "Germany")
	if err != nil || got != "Allemagne" {
		t.Fatalf("Translate(fr-CA) = %q, %v", got, err)
	}
	got, err = m.Translate("fr_FR", "Germany")
	if err != nil || got != "Allemagne" {
		t.Fatalf("Translate(fr_FR) = %q, %v", got, err)
	}
}

func TestMessages_MissingKeyAndLocale(t *testing.T) {
	m := NewMessages()
	if err := m.Add("de", map[string]string{"Germany": "Deutschland"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := m.Translate("de", "France"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected missing key error, got %v", err)
	}
	if _, err := m.Translate("ja", "Germany"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected missing locale error, got %v", err)
	}
	if _, err := m.Translate("", "Germany"); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("expected invalid locale error, got %v", err)
	}
}

func TestMessages_AddMergesAndFormatsArgs(t *testing.T) {
	m := NewMessages()
	_ = m.Add("de", map[string]string{"a": "A"})
	_ = m.Add("de", map[string]string{"b": "B %s"})

	if got, _ := m.Translate("de", "a"); got != "A" {
		t.Fatalf("expected merged key a, got %q", got)
	}
	if got, _ := m.Translate("de", "b", "x"); got != "B x" {
		t.Fatalf("expected formatted message, got %q", got)
	}
	if diff := cmp.Diff([]string{"de"}, m.Locales()); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}
}

func TestMessages_ConcurrentAddAndTranslate(t *testing.T) {
	m := NewMessages()
	if err := m.Add("fr", map[string]string{"France": "France"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			_ = m.Add("fr", map[string]string{fmt.Sprintf("k%d", i): "v"})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			if got, err := m.Translate("fr", "France"); err != nil || got != "France" {
				t.Errorf("Translate = %q, %v", got, err)
				return
			}
		}
	}()
	wg.Wait()

	if got, _ := m.Translate("fr", "k1999"); got != "v" {
		t.Fatalf("expected last merged key, got %q", got)
	}
}

func TestLoadFS_ReadsYAMLFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/es.yaml":   {Data: []byte("Germany: Alemania\n\"Cote d'Ivoire\": \"Costa de Marfil\"\n")},
		"locales/it.yml":    {Data: []byte("Germany: Germania\n")},
		"locales/README.md": {Data: []byte("ignored")},
	}

	m, err := LoadFS(fsys, "locales")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"es", "it"}, m.Locales()); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}
	if got, _ := m.Translate("es", "Cote d'Ivoire"); got != "Costa de Marfil" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestMessages_LoadDirLayersOverBundled(t *testing.T) {
	m, err := LoadFS(LocalesFS(), ".")
	if err != nil {
		t.Fatalf("load bundled: %v", err)
	}
	overrides := fstest.MapFS{
		"de.yaml": {Data: []byte("Germany: BRD\n")},
		"es.yaml": {Data: []byte("Germany: Alemania\n")},
	}
	if err := m.LoadDir(overrides, "."); err != nil {
		t.Fatalf("load overrides: %v", err)
	}

	if got, _ := m.Translate("de", "Germany"); got != "BRD" {
		t.Fatalf("expected override, got %q", got)
	}
	if got, _ := m.Translate("de", "France"); got != "Frankreich" {
		t.Fatalf("expected bundled label kept, got %q", got)
	}
	if diff := cmp.Diff([]string{"de", "es", "fr"}, m.Locales()); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}
	if err := m.LoadDir(nil, "."); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}
}

func TestLoadFS_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{"bad.yaml": {Data: []byte("- not\n- a map\n")}}
	if _, err := LoadFS(fsys, "."); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultMessages_CoverTheCatalog(t *testing.T) {
	m, err := DefaultMessages()
	if err != nil {
		t.Fatalf("default messages: %v", err)
	}

	for _, locale := range []string{"de", "fr"} {
		if _, err := catalog.BuildE(StrictTranslateFunc(m, locale)); err != nil {
			t.Fatalf("locale %s does not cover the catalog: %v", locale, err)
		}
	}
}

func TestTranslateFunc_FallsBackToDefault(t *testing.T) {
	m := NewMessages()
	_ = m.Add("de", map[string]string{"Germany": "Deutschland", "FR": "Frankreich"})

	translate := TranslateFunc(m, "de", nil)
	if got := translate("DE", "Germany"); got != "Deutschland" {
		t.Fatalf("expected label key translation, got %q", got)
	}
	if got := translate("FR", "France"); got != "Frankreich" {
		t.Fatalf("expected code key translation, got %q", got)
	}
	if got := translate("GB", "United Kingdom"); got != "United Kingdom" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestTranslateFunc_CustomMissingHandler(t *testing.T) {
	var missing []string
	translate := TranslateFunc(nil, "de", func(locale, key string, args []any, err error) string {
		if !errors.Is(err, ErrMissingTranslator) {
			t.Fatalf("expected ErrMissingTranslator, got %v", err)
		}
		missing = append(missing, key)
		return strings.ToUpper(key)
	})

	if got := translate("GB", "United Kingdom"); got != "UNITED KINGDOM" {
		t.Fatalf("unexpected handler result %q", got)
	}
	if len(missing) != 1 {
		t.Fatalf("expected handler called once, got %v", missing)
	}
}

func TestStrictTranslateFunc_PropagatesMissing(t *testing.T) {
	m := NewMessages()
	_ = m.Add("de", map[string]string{"Germany": "Deutschland"})

	_, err := catalog.BuildE(StrictTranslateFunc(m, "de"))
	if !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected missing translation error, got %v", err)
	}
}

func TestBuild_GermanLabelsResort(t *testing.T) {
	m, err := DefaultMessages()
	if err != nil {
		t.Fatalf("default messages: %v", err)
	}
	cat := catalog.Build(TranslateFunc(m, "de", nil))

	entry, ok := cat.Lookup("DE")
	if !ok || entry.Label != "Deutschland" {
		t.Fatalf("unexpected DE entry %#v", entry)
	}
	for i := 1; i < cat.Len(); i++ {
		if catalog.CompareFold(cat.At(i-1).Label, cat.At(i).Label) > 0 {
			t.Fatalf("german catalog out of order at %d", i)
		}
	}
}

func TestNegotiate(t *testing.T) {
	m, err := DefaultMessages()
	if err != nil {
		t.Fatalf("default messages: %v", err)
	}

	if got := m.Negotiate("fr-CH, fr;q=0.9, en;q=0.8", "en"); got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
	if got := m.Negotiate("ja", "en"); got != "en" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := m.Negotiate("", "en"); got != "en" {
		t.Fatalf("expected fallback for empty header, got %q", got)
	}
}
