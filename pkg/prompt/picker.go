package prompt

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/internal/logging"
	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/field"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

// NoneLabel is the first choice of optional single fields.
const NoneLabel = "(none)"

const defaultPageSize = 15

// Picker asks the user to choose countries for a field on a terminal.
type Picker struct {
	driver   Driver
	pageSize int
	logger   logrus.FieldLogger
}

// Option configures a Picker.
type Option func(*Picker)

// WithDriver replaces the survey driver.
func WithDriver(d Driver) Option {
	return func(p *Picker) {
		if d != nil {
			p.driver = d
		}
	}
}

// WithPageSize sets how many options are visible at once.
func WithPageSize(n int) Option {
	return func(p *Picker) {
		if n > 0 {
			p.pageSize = n
		}
	}
}

// WithLogger sets the logger used for picker diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Picker) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPicker returns a Picker using survey prompts unless WithDriver is given.
func NewPicker(opts ...Option) *Picker {
	p := &Picker{pageSize: defaultPageSize, logger: logging.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver()
	}
	return p
}

// Pick prompts for a new value of f, starting from current (which may be
// nil). Codes in current that cat does not know are offered for keeping in
// multi fields so a stale entry is never dropped silently.
func (p *Picker) Pick(ctx context.Context, f field.Field, cat catalog.Catalog, current selection.FieldValue) (selection.FieldValue, error) {
	if cat.Len() == 0 {
		return nil, ErrNoOptions
	}
	if current == nil || current.IsMulti() != f.Multi() {
		var raw any
		if current != nil {
			raw = current.Canonical()
		}
		current = selection.Normalize(raw, cat, f.Multi())
	}

	var (
		value selection.FieldValue
		err   error
	)
	if f.Multi() {
		value, err = p.pickMulti(ctx, f, cat, current)
	} else {
		value, err = p.pickSingle(ctx, f, cat, current)
	}
	if err != nil {
		return nil, err
	}
	if err := f.Validate(value); err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"field":    f.Handle,
		"selected": value.Canonical().Values(),
	}).Debug("country picked")
	return value, nil
}

func (p *Picker) pickSingle(ctx context.Context, f field.Field, cat catalog.Catalog, current selection.FieldValue) (selection.FieldValue, error) {
	options := optionLabels(cat)
	offset := 0
	if !f.Required {
		options = append([]string{NoneLabel}, options...)
		offset = 1
	}

	defaultIndex := 0
	if indices := catalogIndices(cat, current); len(indices) > 0 {
		defaultIndex = indices[0] + offset
	}

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      message(f),
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         f.Instructions,
		PageSize:     p.pageSize,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(options) {
		return nil, fmt.Errorf("prompt: selection %d out of range", idx)
	}
	if idx < offset {
		return selection.Normalize(nil, cat, false), nil
	}
	return selection.Normalize(cat.At(idx-offset).Code, cat, false), nil
}

func (p *Picker) pickMulti(ctx context.Context, f field.Field, cat catalog.Catalog, current selection.FieldValue) (selection.FieldValue, error) {
	defaults := catalogIndices(cat, current)

	indices, err := p.driver.MultiSelect(ctx, SelectConfig{
		Message:  message(f),
		Options:  optionLabels(cat),
		Defaults: defaults,
		Help:     f.Instructions,
		PageSize: p.pageSize,
	})
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= cat.Len() {
			return nil, fmt.Errorf("prompt: selection %d out of range", idx)
		}
		codes = append(codes, cat.At(idx).Code)
	}

	var stale []string
	for _, code := range current.Canonical().Values() {
		if !cat.Contains(code) {
			stale = append(stale, code)
		}
	}
	if len(stale) > 0 {
		keep, err := p.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Keep %d unknown code(s) %v?", len(stale), stale),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if keep {
			codes = append(stale, codes...)
		}
	}
	return selection.NormalizeRaw(selection.List(codes...), cat, true), nil
}

// catalogIndices returns the positions in cat of the codes held by value.
func catalogIndices(cat catalog.Catalog, value selection.FieldValue) []int {
	chosen := map[string]struct{}{}
	for _, code := range value.Canonical().Values() {
		chosen[code] = struct{}{}
	}
	var out []int
	for i, entry := range cat.Entries() {
		if _, ok := chosen[entry.Code]; ok {
			out = append(out, i)
		}
	}
	return out
}

func optionLabels(cat catalog.Catalog) []string {
	out := make([]string, 0, cat.Len())
	for _, entry := range cat.Entries() {
		out = append(out, fmt.Sprintf("%s (%s)", entry.Label, entry.Code))
	}
	return out
}

func message(f field.Field) string {
	if f.Label != "" {
		return f.Label
	}
	if f.Handle != "" {
		return f.Handle
	}
	return f.Kind.DisplayName()
}
