package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/internal/config"
	"github.com/goliatone/go-countryselect/internal/logging"
	"github.com/goliatone/go-countryselect/pkg/catalog"
	"github.com/goliatone/go-countryselect/pkg/field"
	"github.com/goliatone/go-countryselect/pkg/i18n"
)

// Global carries the state shared by every subcommand. It is built once in
// CLI.AfterApply and bound into each Run method.
type Global struct {
	Config     config.Config
	Logger     *logrus.Logger
	Translator *i18n.Messages
	Registry   *field.Registry
	Out        io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path" type:"path" env:"COUNTRYSELECT_CONFIG"`
	EnvFile   []string         `name:"env-file" help:"Env files loaded before reading the environment" default:".env,.env.dev"`
	Locale    string           `short:"l" help:"Locale for country labels (overrides config)"`
	LogLevel  string           `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFormat string           `name:"log-format" help:"Log format (text, json)"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	List      ListCmd      `cmd:"" help:"Print the country catalog"`
	Normalize NormalizeCmd `cmd:"" help:"Normalize a stored value into field options"`
	Render    RenderCmd    `cmd:"" help:"Render a field as HTML"`
	Schema    SchemaCmd    `cmd:"" help:"Print an OpenAPI document for the configured fields"`
	Pick      PickCmd      `cmd:"" help:"Pick countries interactively and print the stored value"`
	Serve     ServeCmd     `cmd:"" help:"Serve the country options endpoint"`

	Out io.Writer `kong:"-"`
	Err io.Writer `kong:"-"`
}

// AfterApply runs after flag parsing: it layers configuration, sets up
// logging and translations, and binds the shared Global.
func (c *CLI) AfterApply(kctx *kong.Context) error {
	g, err := c.global()
	if err != nil {
		return err
	}
	kctx.Bind(g)
	return nil
}

func (c *CLI) global() (*Global, error) {
	out, errOut := c.Out, c.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	bootstrap := logging.New(logging.Options{Level: "info", Output: errOut, Format: logging.FormatText})
	config.LoadEnv(bootstrap, c.EnvFile...)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(&cfg)
	if c.Locale != "" {
		cfg.Locale = c.Locale
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.Log.Format = c.LogFormat
	}
	if c.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: logging.Format(cfg.Log.Format),
		Output: errOut,
	})

	translator, err := i18n.LoadFS(i18n.LocalesFS(), ".")
	if err != nil {
		return nil, fmt.Errorf("load bundled locales: %w", err)
	}
	if cfg.LocalesDir != "" {
		if err := translator.LoadDir(os.DirFS(cfg.LocalesDir), "."); err != nil {
			return nil, err
		}
	}

	return &Global{
		Config:     cfg,
		Logger:     logger,
		Translator: translator,
		Registry:   field.NewRegistry(),
		Out:        out,
	}, nil
}

// Catalog builds the catalog for the configured locale.
func (g *Global) Catalog() catalog.Catalog {
	return catalog.Build(g.Translate())
}

// Translate returns the label translation for the configured locale, or nil
// for English.
func (g *Global) Translate() catalog.TranslateFunc {
	locale := strings.TrimSpace(g.Config.Locale)
	if locale == "" || strings.EqualFold(locale, "en") || g.Translator == nil {
		return nil
	}
	return i18n.TranslateFunc(g.Translator, locale, func(locale, key string, args []any, err error) string {
		g.Logger.WithFields(logrus.Fields{"locale": locale, "key": key}).WithError(err).Debug("missing country translation")
		return i18n.KeepDefault(locale, key, args, err)
	})
}

// FieldSelector picks the field a command works on: a configured handle, a
// kind name, or the multi flag.
type FieldSelector struct {
	Field string `short:"f" help:"Handle of a configured field"`
	Kind  string `short:"k" help:"Field kind (dropdown, multiselect, checkboxes, radio)"`
	Multi bool   `short:"m" help:"Shorthand for --kind=multiselect"`
}

// Resolve returns the selected field. Unknown handles fall back to an ad-hoc
// field named after the handle.
func (s FieldSelector) Resolve(g *Global) (field.Field, error) {
	if s.Field != "" {
		if f, ok := g.Config.Field(s.Field); ok {
			if s.Kind != "" || s.Multi {
				g.Logger.WithField("field", s.Field).Warn("ignoring --kind/--multi for a configured field")
			}
			return f, nil
		}
	}

	kind := s.Kind
	if kind == "" {
		kind = string(field.KindDropdown)
		if s.Multi {
			kind = string(field.KindMultiSelect)
		}
	}
	desc, err := g.Registry.Resolve(kind)
	if err != nil {
		return field.Field{}, err
	}

	handle := s.Field
	if handle == "" {
		handle = "country"
	}
	return field.New(handle, desc.Kind), nil
}
