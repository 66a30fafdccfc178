package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/graphvalid/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*cfg)

func WithLevel(l slog.Level) Option {
	return func(c *cfg) { c.level = l }
}

// WithFormat sets output format. Panics for invalid formats: a misconfigured
// logging sink should fail at startup, not at the first log record.
func WithFormat(f Format) Option {
	return func(c *cfg) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *cfg) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *cfg) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithHandlerOptions allows fine-grained control over slog behavior.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *cfg) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

type cfg struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
}

func defaultCfg() *cfg {
	return &cfg{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New builds a slog.Logger from the given options. Defaults are JSON output
// at info level on stdout.
func New(opts ...Option) *slog.Logger {
	c := defaultCfg()
	for _, opt := range opts {
		opt(c)
	}

	ho := c.handlerOptions
	if ho == nil {
		ho = &slog.HandlerOptions{Level: c.level}
	} else if ho.Level == nil {
		ho.Level = c.level
	}

	var handler slog.Handler
	switch c.format {
	case FormatText:
		handler = slog.NewTextHandler(c.output, ho)
	default:
		handler = slog.NewJSONHandler(c.output, ho)
	}

	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}

	return slog.New(handler)
}

// EnvConfig is the environment surface of the logging sink.
type EnvConfig struct {
	Level  string `env:"GRAPHVALID_LOG_LEVEL" envDefault:"info"`
	Format string `env:"GRAPHVALID_LOG_FORMAT" envDefault:"json"`
}

// NewFromEnv builds a logger from GRAPHVALID_LOG_* environment variables,
// with extra options applied on top.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	var ec EnvConfig
	if err := config.Load(&ec); err != nil {
		return nil, err
	}

	level, err := parseLevel(ec.Level)
	if err != nil {
		return nil, err
	}
	format := Format(strings.ToLower(ec.Format))
	switch format {
	case FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", ec.Format, FormatJSON, FormatText)
	}

	base := []Option{WithLevel(level), WithFormat(format)}
	return New(append(base, opts...)...), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
