package countries

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/internal/logging"
	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/i18n"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type optionsResponse struct {
	Data []selection.Option `json:"data"`
}

// negotiator is implemented by translators that can pick a locale from an
// Accept-Language header, such as *i18n.Messages.
type negotiator interface {
	Negotiate(acceptLanguage, fallback string) string
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value. Defaults and clamps are re-applied.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	catalogs := newCatalogCache(opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			opts.Metrics.IncRequest("method_not_allowed")
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				opts.Metrics.IncRequest("rejected")
				logger.WithError(err).WithField("path", r.URL.Path).Debug("country catalog request rejected")
				writeGuardError(w, err)
				return
			}
		}

		query := r.URL.Query()
		locale := resolveLocale(r, opts)
		cat := catalogs.get(locale)

		results := SearchOptions(cat, query.Get(opts.SearchParam), parseInt(query.Get(opts.LimitParam)), selectedValue(query[opts.SelectedParam], cat), opts)
		if results == nil {
			results = []selection.Option{}
		}

		opts.Metrics.IncRequest("ok")
		opts.Metrics.ObserveResults(len(results))
		logger.WithFields(logrus.Fields{
			"locale":  locale,
			"query":   query.Get(opts.SearchParam),
			"results": len(results),
		}).Debug("country catalog request")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Language", locale)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(optionsResponse{Data: results})
	})
}

// SearchOptions filters cat and marks the options that are part of value.
// An empty query follows opts.EmptySearchMode.
func SearchOptions(cat catalog.Catalog, query string, limit int, value selection.FieldValue, opts Options) []selection.Option {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}
	if strings.TrimSpace(query) == "" && opts.EmptySearchMode == EmptySearchNone {
		return nil
	}

	selected := map[string]struct{}{}
	if value != nil {
		for _, option := range value.SelectedOptions() {
			selected[option.Code] = struct{}{}
		}
	}

	entries := cat.Search(query, limit)
	if len(entries) == 0 {
		return nil
	}
	out := make([]selection.Option, 0, len(entries))
	for _, entry := range entries {
		_, ok := selected[entry.Code]
		out = append(out, selection.Option{Code: entry.Code, Label: entry.Label, Selected: ok})
	}
	return out
}

// selectedValue reads the stored value from the request. A single parameter
// may carry a bare code or a JSON array; repeated parameters form a list.
func selectedValue(values []string, cat catalog.Catalog) selection.FieldValue {
	var raw selection.RawValue
	switch len(values) {
	case 0:
		return nil
	case 1:
		raw = selection.DecodeRaw(values[0])
	default:
		raw = selection.List(values...)
	}
	return selection.NormalizeRaw(raw, cat, raw.Kind() == selection.RawList)
}

func resolveLocale(r *http.Request, opts Options) string {
	if locale := strings.TrimSpace(r.URL.Query().Get(opts.LocaleParam)); locale != "" {
		return locale
	}
	if n, ok := opts.Translator.(negotiator); ok {
		return n.Negotiate(r.Header.Get("Accept-Language"), opts.DefaultLocale)
	}
	return opts.DefaultLocale
}

const maxCachedLocales = 32

// catalogCache keeps one sorted catalog per locale. Locales come from
// request input, so the cache is bounded and overflow is built per request.
type catalogCache struct {
	mu       sync.RWMutex
	opts     Options
	byLocale map[string]catalog.Catalog
}

func newCatalogCache(opts Options) *catalogCache {
	return &catalogCache{opts: opts, byLocale: make(map[string]catalog.Catalog)}
}

func (c *catalogCache) get(locale string) catalog.Catalog {
	key := locale
	if c.opts.Translator == nil {
		key = ""
	}

	c.mu.RLock()
	cat, ok := c.byLocale[key]
	c.mu.RUnlock()
	if ok {
		return cat
	}

	cat = buildCatalog(c.opts, locale)

	c.mu.Lock()
	if len(c.byLocale) < maxCachedLocales {
		c.byLocale[key] = cat
	}
	c.mu.Unlock()
	return cat
}

func buildCatalog(opts Options, locale string) catalog.Catalog {
	translate := catalog.TranslateFunc(catalog.Identity)
	if opts.Translator != nil {
		translate = i18n.TranslateFunc(opts.Translator, locale, nil)
	}
	if opts.Entries == nil {
		return catalog.Build(translate)
	}
	entries := make([]catalog.Entry, 0, len(opts.Entries))
	for _, entry := range opts.Entries {
		entries = append(entries, catalog.Entry{Code: entry.Code, Label: translate(entry.Code, entry.Label)})
	}
	return catalog.FromEntries(entries)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
