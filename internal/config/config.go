package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-countryselect/pkg/field"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "COUNTRYSELECT_"

// Config is the runtime configuration of the countryselect tool. Values are
// layered: Default, then the YAML file, then environment variables, then
// command-line flags applied by the caller.
type Config struct {
	Locale       string `yaml:"locale"`
	LocalesDir   string `yaml:"locales_dir"`
	TemplatesDir string `yaml:"templates_dir"`
	// Strict makes normalize reject codes missing from the catalog.
	Strict bool          `yaml:"strict"`
	Log    LogConfig     `yaml:"log"`
	Server ServerConfig  `yaml:"server"`
	Fields []field.Field `yaml:"fields"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	BasePath    string `yaml:"base_path"`
	MetricsPath string `yaml:"metrics_path"`

	// ShutdownTimeout is the graceful shutdown window in seconds.
	ShutdownTimeout int `yaml:"shutdown_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale: "en",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MetricsPath:     "/metrics",
			ShutdownTimeout: 10,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with COUNTRYSELECT_* environment variables.
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Locale = GetEnv(EnvPrefix+"LOCALE", cfg.Locale)
	cfg.LocalesDir = GetEnv(EnvPrefix+"LOCALES_DIR", cfg.LocalesDir)
	cfg.TemplatesDir = GetEnv(EnvPrefix+"TEMPLATES_DIR", cfg.TemplatesDir)
	cfg.Strict = GetEnvBool(EnvPrefix+"STRICT", cfg.Strict)
	cfg.Log.Level = GetEnv(EnvPrefix+"LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = GetEnv(EnvPrefix+"LOG_FORMAT", cfg.Log.Format)
	cfg.Server.Addr = GetEnv(EnvPrefix+"ADDR", cfg.Server.Addr)
	cfg.Server.BasePath = GetEnv(EnvPrefix+"BASE_PATH", cfg.Server.BasePath)
	cfg.Server.MetricsPath = GetEnv(EnvPrefix+"METRICS_PATH", cfg.Server.MetricsPath)
	cfg.Server.ShutdownTimeout = GetEnvInt(EnvPrefix+"SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
}

// Validate checks field definitions and resolves kind aliases in place.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: nil config")
	}
	seen := make(map[string]struct{}, len(c.Fields))
	for i := range c.Fields {
		f := &c.Fields[i]
		f.Handle = strings.TrimSpace(f.Handle)
		if f.Handle == "" {
			return fmt.Errorf("config: field %d: handle is required", i)
		}
		if _, ok := seen[f.Handle]; ok {
			return fmt.Errorf("config: duplicate field handle %q", f.Handle)
		}
		seen[f.Handle] = struct{}{}

		kind, err := field.ParseKind(string(f.Kind))
		if err != nil {
			return fmt.Errorf("config: field %s: %w", f.Handle, err)
		}
		f.Kind = kind
	}
	return nil
}

// Field returns the configured field with the given handle.
func (c Config) Field(handle string) (field.Field, bool) {
	for _, f := range c.Fields {
		if f.Handle == handle {
			return f, true
		}
	}
	return field.Field{}, false
}
