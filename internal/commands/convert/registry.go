package convertcmd

import (
	"errors"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-modeldoc/internal/commands"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract for handler wiring.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers built by RegisterConvertCommands.
type HandlerSet struct {
	Source    *ConvertSourceHandler
	File      *ConvertFileHandler
	Directory *ConvertDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	sourceHandlerOpts    []commands.HandlerOption[ConvertSourceCommand]
	fileHandlerOpts      []commands.HandlerOption[ConvertFileCommand]
	directoryHandlerOpts []commands.HandlerOption[ConvertDirectoryCommand]
}

// WithSourceHandlerOptions forwards options to NewConvertSourceHandler.
func WithSourceHandlerOptions(opts ...commands.HandlerOption[ConvertSourceCommand]) Option {
	return func(cfg *options) {
		cfg.sourceHandlerOpts = append(cfg.sourceHandlerOpts, opts...)
	}
}

// WithFileHandlerOptions forwards options to NewConvertFileHandler.
func WithFileHandlerOptions(opts ...commands.HandlerOption[ConvertFileCommand]) Option {
	return func(cfg *options) {
		cfg.fileHandlerOpts = append(cfg.fileHandlerOpts, opts...)
	}
}

// WithDirectoryHandlerOptions forwards options to NewConvertDirectoryHandler.
func WithDirectoryHandlerOptions(opts ...commands.HandlerOption[ConvertDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.directoryHandlerOpts = append(cfg.directoryHandlerOpts, opts...)
	}
}

// RegisterConvertCommands builds the convert handlers and registers them with
// reg when it is non-nil.
func RegisterConvertCommands(reg CommandRegistry, service interfaces.ModelDocService, sink Sink, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("convert command registration: service is nil")
	}
	if sink == nil {
		return nil, errors.New("convert command registration: sink is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "convert")

	set := &HandlerSet{
		Source:    NewConvertSourceHandler(service, sink, logger, gates, cfg.sourceHandlerOpts...),
		File:      NewConvertFileHandler(service, sink, logger, gates, cfg.fileHandlerOpts...),
		Directory: NewConvertDirectoryHandler(service, sink, logger, gates, cfg.directoryHandlerOpts...),
	}

	if reg != nil {
		for _, handler := range []any{set.Source, set.File, set.Directory} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

// Subscribe attaches every handler in the set to the go-command dispatcher so
// messages can be sent with dispatcher.Dispatch. Failed executions are
// retried up to maxRetries times. The returned function removes the
// subscriptions.
func (s *HandlerSet) Subscribe(maxRetries int) func() {
	if maxRetries < 0 {
		maxRetries = 0
	}
	unsubscribe := []func(){
		dispatcher.SubscribeCommand(s.Source, runner.WithMaxRetries(maxRetries)).Unsubscribe,
		dispatcher.SubscribeCommand(s.File, runner.WithMaxRetries(maxRetries)).Unsubscribe,
		dispatcher.SubscribeCommand(s.Directory, runner.WithMaxRetries(maxRetries)).Unsubscribe,
	}
	return func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}
}
