package modeldoc

import (
	convertcmd "github.com/goliatone/go-modeldoc/internal/commands/convert"
	"github.com/goliatone/go-modeldoc/internal/di"
	"github.com/goliatone/go-modeldoc/internal/pipeline"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

// Service exports the conversion service contract.
type Service = interfaces.ModelDocService

// Document exports the conversion result.
type Document = interfaces.Document

// ConvertOptions exports the per-call conversion options.
type ConvertOptions = interfaces.ConvertOptions

// CommandHandlers exports the convert command handler set.
type CommandHandlers = *convertcmd.HandlerSet

// Module is the top level modeldoc runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module from cfg and optional container overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Service returns the configured conversion service.
func (m *Module) Service() Service {
	return m.container.ModelDocService()
}

// Commands returns the convert command handlers.
func (m *Module) Commands() CommandHandlers {
	return m.container.CommandHandlers()
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(module string) interfaces.Logger {
	return m.container.Logger(module)
}

// Render converts a Core Data model document into Markdown with no optional
// sections. Malformed XML yields a *collector.ParseError and no output.
func Render(source []byte) (string, error) {
	return pipeline.Render(source)
}
