// Package config loads the tmplvars program configuration from defaults,
// an optional YAML file, an optional .env file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/tmplvars/draft"
)

const (
	defaultEnvFile        = ".env"
	defaultMaxSuggestions = 8
	defaultPopupMaxWidth  = 40
	defaultLogLevel       = "info"
	defaultLogFile        = "tmplvars.log"
)

// Config captures the runtime configuration organised by concern.
type Config struct {
	Editor EditorConfig `yaml:"editor"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// EditorConfig tunes the template content editor.
type EditorConfig struct {
	MaxSuggestions int `yaml:"max_suggestions"`
	ContentLimit   int `yaml:"content_limit"`
	PopupMaxWidth  int `yaml:"popup_max_width"`
}

// OutputConfig says where saved drafts go. An empty path or "-" means
// stdout after the program exits.
type OutputConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ValidationError lists the fields that hold unusable values.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return "config: invalid " + strings.Join(e.fields, ", ")
}

func (e *ValidationError) Fields() []string {
	return append([]string(nil), e.fields...)
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	file         string
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithFile reads YAML configuration from path. The file must exist.
func WithFile(path string) Option {
	return func(o *loaderOptions) {
		o.file = path
	}
}

// WithEnvFile overrides the .env file path. A missing file is ignored.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit environment values that take precedence
// over the system environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			MaxSuggestions: defaultMaxSuggestions,
			ContentLimit:   draft.ContentLimit,
			PopupMaxWidth:  defaultPopupMaxWidth,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
	}
}

// Load assembles the configuration. Precedence, lowest first: defaults,
// YAML file, .env file, process environment, explicit env map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	cfg := Defaults()
	if options.file != "" {
		data, err := os.ReadFile(options.file)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", options.file, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", options.file, err)
		}
	}

	dotEnv, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if value, ok := options.envMap[key]; ok {
			return value, true
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		value, ok := dotEnv[key]
		return value, ok
	}

	cfg.Editor.MaxSuggestions = intWithDefault(lookup, "TMPLVARS_MAX_SUGGESTIONS", cfg.Editor.MaxSuggestions)
	cfg.Editor.ContentLimit = intWithDefault(lookup, "TMPLVARS_CONTENT_LIMIT", cfg.Editor.ContentLimit)
	cfg.Editor.PopupMaxWidth = intWithDefault(lookup, "TMPLVARS_POPUP_MAX_WIDTH", cfg.Editor.PopupMaxWidth)
	cfg.Output.Path = stringWithDefault(lookup, "TMPLVARS_OUTPUT", cfg.Output.Path)
	cfg.Log.File = stringWithDefault(lookup, "TMPLVARS_LOG_FILE", cfg.Log.File)
	cfg.Log.Level = stringWithDefault(lookup, "LOG_LEVEL", cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports out-of-range values as a *ValidationError.
func (c Config) Validate() error {
	var fields []string
	if c.Editor.MaxSuggestions <= 0 {
		fields = append(fields, "editor.max_suggestions")
	}
	if c.Editor.ContentLimit < 0 {
		fields = append(fields, "editor.content_limit")
	}
	if c.Editor.PopupMaxWidth <= 0 {
		fields = append(fields, "editor.popup_max_width")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

// StdoutOutput reports whether drafts are written to stdout.
func (c Config) StdoutOutput() bool {
	return c.Output.Path == "" || c.Output.Path == "-"
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}
