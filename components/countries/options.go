package countries

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/i18n"
)

type EmptySearchMode string

const (
	// EmptySearchAll returns the catalog in order, up to the limit.
	EmptySearchAll EmptySearchMode = "all"
	// EmptySearchNone returns no options until the user types.
	EmptySearchNone EmptySearchMode = "none"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	LocaleParam     string
	SelectedParam   string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	DefaultLocale   string
	Guard           GuardFunc

	// Translator localizes labels. Without one the English labels are served.
	Translator i18n.Translator
	// Entries replaces the built-in country table.
	Entries []catalog.Entry

	Metrics *Metrics
	Logger  logrus.FieldLogger
}

type OptionFn func(*Options)

const (
	defaultRoutePath = "/api/countries"
	defaultLimit     = 300
	defaultMaxLimit  = 300
)

func DefaultOptions() Options {
	return Options{
		RoutePath:       defaultRoutePath,
		SearchParam:     "q",
		LimitParam:      "limit",
		LocaleParam:     "locale",
		SelectedParam:   "selected",
		DefaultLimit:    defaultLimit,
		MaxLimit:        defaultMaxLimit,
		EmptySearchMode: EmptySearchAll,
		DefaultLocale:   "en",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaultMaxLimit
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchAll
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = "locale"
	}
	if opts.SelectedParam == "" {
		opts.SelectedParam = "selected"
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en"
	}
	if opts.Entries != nil {
		opts.Entries = append([]catalog.Entry{}, opts.Entries...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

func WithSelectedParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SelectedParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithDefaultLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLocale = locale
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithTranslator(t i18n.Translator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
	}
}

func WithEntries(entries []catalog.Entry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if entries == nil {
			o.Entries = nil
			return
		}
		o.Entries = append([]catalog.Entry{}, entries...)
	}
}

func WithMetrics(m *Metrics) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Metrics = m
	}
}

func WithLogger(logger logrus.FieldLogger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
