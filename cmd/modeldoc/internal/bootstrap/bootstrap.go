package bootstrap

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goliatone/go-modeldoc"
	convertcmd "github.com/goliatone/go-modeldoc/internal/commands/convert"
	"github.com/goliatone/go-modeldoc/internal/di"
	"github.com/goliatone/go-modeldoc/internal/logging"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

// Options captures configuration for the modeldoc CLI.
type Options struct {
	BasePath  string
	Pattern   string
	Recursive bool

	Title           string
	TableOfContents bool
	FrontMatter     bool
	HTML            bool

	Timeout time.Duration

	LogProvider string
	LogLevel    string
	LogFormat   string

	// Output receives documents without an explicit target. Defaults to stdout.
	Output         io.Writer
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the modeldoc module with the handlers the CLI dispatches to.
type Module struct {
	Module   *modeldoc.Module
	Commands *convertcmd.HandlerSet
	Logger   interfaces.Logger
}

// BuildModule constructs a modeldoc module configured from CLI options.
func BuildModule(opts Options) (*Module, error) {
	cfg := modeldoc.DefaultConfig()
	if base := strings.TrimSpace(opts.BasePath); base != "" {
		cfg.Discovery.BasePath = base
	}
	if pattern := strings.TrimSpace(opts.Pattern); pattern != "" {
		cfg.Discovery.Pattern = pattern
	}
	cfg.Discovery.Recursive = opts.Recursive

	cfg.Render.Title = strings.TrimSpace(opts.Title)
	cfg.Render.TableOfContents = opts.TableOfContents
	cfg.Render.FrontMatter = opts.FrontMatter

	if opts.HTML {
		cfg.Features.Preview = true
		cfg.Preview.Enabled = true
	}
	if opts.Timeout > 0 {
		cfg.Commands.Timeout = opts.Timeout
	}

	cfg.Features.Logger = true
	if provider := strings.TrimSpace(opts.LogProvider); provider != "" {
		cfg.Logging.Provider = provider
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	cfg.Logging.Format = strings.TrimSpace(opts.LogFormat)

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}
	if opts.Output != nil {
		diOpts = append(diOpts, di.WithOutput(opts.Output))
	}

	module, err := modeldoc.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise modeldoc module: %w", err)
	}

	return &Module{
		Module:   module,
		Commands: module.Commands(),
		Logger:   logging.ModuleLogger(module.Container().LoggerProvider(), "modeldoc.cli"),
	}, nil
}
