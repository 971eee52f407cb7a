package convertcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-modeldoc/internal/commands"
	"github.com/goliatone/go-modeldoc/internal/logging"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

const (
	sourceOperation    = "convert.source"
	fileOperation      = "convert.file"
	directoryOperation = "convert.directory"
)

// ErrPreviewFeatureDisabled is returned when HTML output is requested while
// the preview feature is off.
var ErrPreviewFeatureDisabled = errors.New("convert command: html preview disabled")

var (
	_ command.Commander[ConvertSourceCommand]    = (*ConvertSourceHandler)(nil)
	_ command.Commander[ConvertFileCommand]      = (*ConvertFileHandler)(nil)
	_ command.Commander[ConvertDirectoryCommand] = (*ConvertDirectoryHandler)(nil)
)

type writer struct {
	service interfaces.ModelDocService
	sink    Sink
	gates   FeatureGates
}

func (w writer) checkSections(s Sections) error {
	if s.HTML && !w.gates.previewEnabled() {
		return ErrPreviewFeatureDisabled
	}
	return nil
}

// emit renders HTML when requested and hands the result to the sink.
func (w writer) emit(ctx context.Context, doc *interfaces.Document, target string, s Sections) error {
	content := []byte(doc.Markdown)
	if s.HTML {
		html, err := w.service.RenderHTML(ctx, doc, interfaces.ParseOptions{})
		if err != nil {
			return err
		}
		content = html
	}
	return w.sink.Write(ctx, target, content)
}

func convertOptions(s Sections, sourcePath string) interfaces.ConvertOptions {
	return interfaces.ConvertOptions{
		SourcePath:      sourcePath,
		Title:           s.Title,
		TableOfContents: s.TableOfContents,
		FrontMatter:     s.FrontMatter,
	}
}

func sectionFields(fields map[string]any, s Sections) map[string]any {
	if s.Title != "" {
		fields["title"] = s.Title
	}
	if s.TableOfContents {
		fields["toc"] = true
	}
	if s.FrontMatter {
		fields["front_matter"] = true
	}
	if s.HTML {
		fields["html"] = true
	}
	return fields
}

// ConvertSourceHandler converts in-memory model documents.
type ConvertSourceHandler struct {
	inner *commands.Handler[ConvertSourceCommand]
}

// NewConvertSourceHandler binds a handler to service and sink.
func NewConvertSourceHandler(service interfaces.ModelDocService, sink Sink, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ConvertSourceCommand]) *ConvertSourceHandler {
	baseLogger := commands.EnsureLogger(logger)
	w := writer{service: service, sink: sink, gates: gates}

	exec := func(ctx context.Context, msg ConvertSourceCommand) error {
		if err := w.checkSections(msg.Sections); err != nil {
			return err
		}
		doc, err := service.Convert(ctx, msg.Source, convertOptions(msg.Sections, msg.SourcePath))
		if err != nil {
			return err
		}
		return w.emit(ctx, doc, msg.Output, msg.Sections)
	}

	handlerOpts := []commands.HandlerOption[ConvertSourceCommand]{
		commands.WithLogger[ConvertSourceCommand](baseLogger),
		commands.WithOperation[ConvertSourceCommand](sourceOperation),
		commands.WithMessageFields(func(msg ConvertSourceCommand) map[string]any {
			fields := map[string]any{"bytes": len(msg.Source)}
			if msg.SourcePath != "" {
				fields["source_path"] = msg.SourcePath
			}
			if msg.Output != "" {
				fields["output"] = msg.Output
			}
			return sectionFields(fields, msg.Sections)
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertSourceCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertSourceHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ConvertSourceCommand].
func (h *ConvertSourceHandler) Execute(ctx context.Context, msg ConvertSourceCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ConvertFileHandler converts a single model file.
type ConvertFileHandler struct {
	inner *commands.Handler[ConvertFileCommand]
}

// NewConvertFileHandler binds a handler to service and sink.
func NewConvertFileHandler(service interfaces.ModelDocService, sink Sink, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ConvertFileCommand]) *ConvertFileHandler {
	baseLogger := commands.EnsureLogger(logger)
	w := writer{service: service, sink: sink, gates: gates}

	exec := func(ctx context.Context, msg ConvertFileCommand) error {
		if err := w.checkSections(msg.Sections); err != nil {
			return err
		}
		doc, err := service.ConvertFile(ctx, msg.Path, convertOptions(msg.Sections, ""))
		if err != nil {
			return err
		}
		return w.emit(ctx, doc, msg.Output, msg.Sections)
	}

	handlerOpts := []commands.HandlerOption[ConvertFileCommand]{
		commands.WithLogger[ConvertFileCommand](baseLogger),
		commands.WithOperation[ConvertFileCommand](fileOperation),
		commands.WithMessageFields(func(msg ConvertFileCommand) map[string]any {
			fields := map[string]any{"path": msg.Path}
			if msg.Output != "" {
				fields["output"] = msg.Output
			}
			return sectionFields(fields, msg.Sections)
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertFileHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ConvertFileCommand].
func (h *ConvertFileHandler) Execute(ctx context.Context, msg ConvertFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// streamSeparator keeps streamed documents apart. Documents carry no
// trailing newline.
var streamSeparator = []byte("\n\n")

// ConvertDirectoryHandler converts every model under a directory. A model that
// fails to convert aborts the run before any document is written.
type ConvertDirectoryHandler struct {
	inner *commands.Handler[ConvertDirectoryCommand]
}

// NewConvertDirectoryHandler binds a handler to service and sink.
func NewConvertDirectoryHandler(service interfaces.ModelDocService, sink Sink, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ConvertDirectoryCommand]) *ConvertDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)
	w := writer{service: service, sink: sink, gates: gates}

	exec := func(ctx context.Context, msg ConvertDirectoryCommand) error {
		if err := w.checkSections(msg.Sections); err != nil {
			return err
		}
		convertOpts := convertOptions(msg.Sections, "")
		convertOpts.Pattern = msg.Pattern
		convertOpts.Recursive = msg.Recursive

		docs, err := service.ConvertDirectory(ctx, msg.Directory, convertOpts)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			target := ""
			if msg.OutputDir != "" {
				target = OutputPath(msg.OutputDir, msg.Directory, doc.SourcePath, msg.HTML)
			} else if i > 0 {
				if err := sink.Write(ctx, "", streamSeparator); err != nil {
					return err
				}
			}
			if err := w.emit(ctx, doc, target, msg.Sections); err != nil {
				return err
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"directory": msg.Directory,
			"documents": len(docs),
		}).Info("convert.command.directory.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertDirectoryCommand]{
		commands.WithLogger[ConvertDirectoryCommand](baseLogger),
		commands.WithOperation[ConvertDirectoryCommand](directoryOperation),
		commands.WithMessageFields(func(msg ConvertDirectoryCommand) map[string]any {
			fields := map[string]any{"directory": msg.Directory}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive != nil {
				fields["recursive"] = *msg.Recursive
			}
			return sectionFields(fields, msg.Sections)
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ConvertDirectoryCommand].
func (h *ConvertDirectoryHandler) Execute(ctx context.Context, msg ConvertDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
