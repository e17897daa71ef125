package i18n

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-countryselect/pkg/catalog"
)

var (
	// ErrMissingTranslation is returned when no message exists for a key.
	ErrMissingTranslation = errors.New("i18n: missing translation")
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("i18n: translator not configured")
	// ErrInvalidLocale is returned for locale strings that are not BCP 47 tags.
	ErrInvalidLocale = errors.New("i18n: invalid locale")
)

// Translator resolves a message key for a locale. Args, when present, are
// applied with fmt.Sprintf semantics.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a translation is
// missing. args carries a map with the "default" label.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Messages is an in-memory translator backed by per-locale message maps.
// Locales are matched with golang.org/x/text/language, so a request for
// "fr-CA" falls back to "fr" messages. Safe for concurrent use.
type Messages struct {
	mu       sync.RWMutex
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

var _ Translator = (*Messages)(nil)

// NewMessages returns an empty translator.
func NewMessages() *Messages {
	return &Messages{}
}

// Add merges messages for locale, overriding existing keys.
func (m *Messages) Add(locale string, messages map[string]string) error {
	tag, err := parseLocale(locale)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.tags {
		if existing == tag {
			for key, value := range messages {
				m.messages[i][key] = value
			}
			return nil
		}
	}

	copied := make(map[string]string, len(messages))
	for key, value := range messages {
		copied[key] = value
	}
	m.tags = append(m.tags, tag)
	m.messages = append(m.messages, copied)
	m.matcher = language.NewMatcher(m.tags)
	return nil
}

// Load reads a YAML document mapping keys to messages for locale.
func (m *Messages) Load(locale string, r io.Reader) error {
	if r == nil {
		return fmt.Errorf("i18n: missing reader for %q", locale)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("i18n: read %q: %w", locale, err)
	}
	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("i18n: decode %q: %w", locale, err)
	}
	return m.Add(locale, messages)
}

// LoadFS loads every *.yaml and *.yml file in dir into a new translator; the
// file name without extension is the locale.
func LoadFS(fsys fs.FS, dir string) (*Messages, error) {
	m := NewMessages()
	if err := m.LoadDir(fsys, dir); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadDir merges every locale file in dir into m, so hosts can layer their
// own wording over the bundled files.
func (m *Messages) LoadDir(fsys fs.FS, dir string) error {
	if fsys == nil {
		return fmt.Errorf("i18n: missing filesystem")
	}
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("i18n: read dir %q: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		f, err := fsys.Open(path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("i18n: open %q: %w", name, err)
		}
		err = m.Load(strings.TrimSuffix(name, ext), f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// Translate implements Translator.
func (m *Messages) Translate(locale, key string, args ...any) (string, error) {
	if m == nil {
		return "", ErrMissingTranslator
	}
	msg, ok, err := m.message(locale, key)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(msg) == "" {
		return "", fmt.Errorf("%w: %s: %q", ErrMissingTranslation, locale, key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...), nil
	}
	return msg, nil
}

// Locales lists the loaded locales in sorted order.
func (m *Messages) Locales() []string {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.tags))
	for _, tag := range m.tags {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// Negotiate picks the best loaded locale for an Accept-Language header value.
// It returns fallback when nothing matches or the header is malformed.
func (m *Messages) Negotiate(acceptLanguage, fallback string) string {
	if m == nil || strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.matcher == nil {
		return fallback
	}
	_, idx, confidence := m.matcher.Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return m.tags[idx].String()
}

// message reads key for the best match of locale. The read happens under the
// lock because Add merges into the same maps.
func (m *Messages) message(locale, key string) (string, bool, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.matcher == nil {
		return "", false, fmt.Errorf("%w: %s: no locales loaded", ErrMissingTranslation, locale)
	}
	_, idx, confidence := m.matcher.Match(tag)
	if confidence == language.No {
		return "", false, fmt.Errorf("%w: %s: locale not loaded", ErrMissingTranslation, locale)
	}
	msg, ok := m.messages[idx][key]
	return msg, ok, nil
}

func parseLocale(locale string) (language.Tag, error) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if trimmed == "" {
		return language.Und, fmt.Errorf("%w: empty locale", ErrInvalidLocale)
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}
	return tag, nil
}

// TranslateFunc adapts t into a catalog.TranslateFunc for locale. Labels are
// looked up by their English text first and by country code second. When
// neither resolves, onMissing decides; a nil onMissing keeps the English
// label.
func TranslateFunc(t Translator, locale string, onMissing MissingTranslationHandler) catalog.TranslateFunc {
	if onMissing == nil {
		onMissing = KeepDefault
	}
	return func(code, defaultLabel string) string {
		if t == nil || isNilTranslator(t) {
			return onMissing(locale, defaultLabel, defaultArgs(defaultLabel), ErrMissingTranslator)
		}
		if msg, err := t.Translate(locale, defaultLabel); err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
		msg, err := t.Translate(locale, code)
		if err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
		return onMissing(locale, defaultLabel, defaultArgs(defaultLabel), err)
	}
}

// StrictTranslateFunc adapts t into a catalog.TranslateFuncE that reports
// missing translations instead of falling back.
func StrictTranslateFunc(t Translator, locale string) catalog.TranslateFuncE {
	return func(code, defaultLabel string) (string, error) {
		if t == nil || isNilTranslator(t) {
			return "", ErrMissingTranslator
		}
		if msg, err := t.Translate(locale, defaultLabel); err == nil && strings.TrimSpace(msg) != "" {
			return msg, nil
		}
		msg, err := t.Translate(locale, code)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(msg) == "" {
			return "", fmt.Errorf("%w: %s: %q", ErrMissingTranslation, locale, defaultLabel)
		}
		return msg, nil
	}
}

// KeepDefault is the default MissingTranslationHandler: it returns the
// default label carried in args, or the key when there is none.
func KeepDefault(_ string, key string, args []any, _ error) string {
	if fallback := defaultFromArgs(args); fallback != "" {
		return fallback
	}
	return key
}

func defaultArgs(fallback string) []any {
	return []any{map[string]any{"default": fallback}}
}

func defaultFromArgs(args []any) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return ""
}

func isNilTranslator(t Translator) bool {
	m, ok := t.(*Messages)
	return ok && m == nil
}
