package di

import (
	"io"
	"io/fs"
	"strings"

	"github.com/goliatone/go-modeldoc/internal/commands"
	convertcmd "github.com/goliatone/go-modeldoc/internal/commands/convert"
	"github.com/goliatone/go-modeldoc/internal/logging"
	"github.com/goliatone/go-modeldoc/internal/logging/console"
	"github.com/goliatone/go-modeldoc/internal/logging/gologger"
	"github.com/goliatone/go-modeldoc/internal/markdown"
	"github.com/goliatone/go-modeldoc/internal/pipeline"
	"github.com/goliatone/go-modeldoc/internal/runtimeconfig"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

// CommandRegistry receives the convert handlers when one is supplied.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Container wires the conversion pipeline, its logging and the command
// handlers from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	filesystem     fs.FS
	parser         interfaces.MarkdownParser
	sink           convertcmd.Sink
	stream         io.Writer
	registry       CommandRegistry

	service  interfaces.ModelDocService
	handlers *convertcmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithFS replaces the filesystem rooted at Config.Discovery.BasePath.
func WithFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.filesystem = filesystem
	}
}

// WithMarkdownParser overrides the goldmark parser used for HTML previews.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithSink overrides where generated documents are written.
func WithSink(sink convertcmd.Sink) Option {
	return func(c *Container) {
		c.sink = sink
	}
}

// WithOutput sets the stream used by the default sink. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Container) {
		c.stream = w
	}
}

// WithCommandRegistry registers the convert handlers with reg.
func WithCommandRegistry(reg CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// WithModelDocService replaces the pipeline service.
func WithModelDocService(svc interfaces.ModelDocService) Option {
	return func(c *Container) {
		c.service = svc
	}
}

// NewContainer validates cfg and builds every dependency.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configurePreview()
	if err := c.configureService(); err != nil {
		return nil, err
	}
	if err := c.configureCommands(); err != nil {
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "modeldoc").Debug("modeldoc.configured",
		"preview", c.parser != nil,
		"logger", c.loggerName(),
		"base_path", c.Config.Discovery.BasePath,
		"pattern", c.Config.Discovery.Pattern,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch runtimeconfig.NormalizeProvider(c.Config.Logging.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(c.Config.Logging.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configurePreview() {
	if c.parser != nil || !c.previewEnabled() {
		return
	}
	c.parser = markdown.NewGoldmarkParser(c.previewOptions())
}

func (c *Container) configureService() error {
	if c.service != nil {
		return nil
	}

	opts := []pipeline.ServiceOption{
		pipeline.WithLogger(logging.PipelineLogger(c.loggerProvider)),
	}
	if c.filesystem != nil {
		opts = append(opts, pipeline.WithFS(c.filesystem))
	}
	if c.parser != nil {
		opts = append(opts, pipeline.WithParser(c.parser))
	}

	svc, err := pipeline.NewService(pipeline.Config{
		BasePath:        c.Config.Discovery.BasePath,
		Pattern:         c.Config.Discovery.Pattern,
		Recursive:       c.Config.Discovery.Recursive,
		Title:           c.Config.Render.Title,
		TableOfContents: c.Config.Render.TableOfContents,
		FrontMatter:     c.Config.Render.FrontMatter,
		Preview:         c.previewOptions(),
	}, opts...)
	if err != nil {
		return err
	}
	c.service = svc
	return nil
}

func (c *Container) configureCommands() error {
	if c.sink == nil {
		c.sink = convertcmd.NewFileSink(c.stream)
	}

	timeout := c.Config.Commands.Timeout
	set, err := convertcmd.RegisterConvertCommands(c.registry, c.service, c.sink, c.loggerProvider,
		convertcmd.FeatureGates{
			PreviewEnabled: c.previewEnabled,
		},
		convertcmd.WithSourceHandlerOptions(commands.WithTimeout[convertcmd.ConvertSourceCommand](timeout)),
		convertcmd.WithFileHandlerOptions(commands.WithTimeout[convertcmd.ConvertFileCommand](timeout)),
		convertcmd.WithDirectoryHandlerOptions(commands.WithTimeout[convertcmd.ConvertDirectoryCommand](timeout)),
	)
	if err != nil {
		return err
	}
	c.handlers = set
	return nil
}

// previewEnabled requires both the feature flag and Preview.Enabled.
func (c *Container) previewEnabled() bool {
	return c.Config.Features.Preview && c.Config.Preview.Enabled
}

func (c *Container) previewOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: c.Config.Preview.Extensions,
		HardWraps:  c.Config.Preview.HardWraps,
		SafeMode:   c.Config.Preview.SafeMode,
	}
}

func (c *Container) loggerName() string {
	if c.loggerProvider == nil {
		return "noop"
	}
	if !c.Config.Features.Logger {
		return "custom"
	}
	return strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider))
}

// LoggerProvider returns the configured provider, or nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Logger returns a module-scoped logger.
func (c *Container) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, module)
}

// ModelDocService returns the conversion service.
func (c *Container) ModelDocService() interfaces.ModelDocService {
	return c.service
}

// MarkdownParser returns the preview parser, or nil when preview is off.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// CommandHandlers returns the convert command handlers.
func (c *Container) CommandHandlers() *convertcmd.HandlerSet {
	return c.handlers
}
