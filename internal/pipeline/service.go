package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-modeldoc/internal/collector"
	"github.com/goliatone/go-modeldoc/internal/identity"
	"github.com/goliatone/go-modeldoc/internal/logging"
	"github.com/goliatone/go-modeldoc/internal/markdown"
	"github.com/goliatone/go-modeldoc/internal/model"
	"github.com/goliatone/go-modeldoc/internal/render"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

// Config controls discovery and the default document sections.
type Config struct {
	BasePath        string
	Pattern         string
	Recursive       bool
	Title           string
	TableOfContents bool
	FrontMatter     bool
	Preview         interfaces.ParseOptions
}

// Service implements interfaces.ModelDocService for filesystem-backed models.
type Service struct {
	cfg    Config
	loader *markdown.Loader
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

var _ interfaces.ModelDocService = (*Service)(nil)

// ServiceOption customises a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	fs     fs.FS
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

// WithFS replaces the filesystem rooted at Config.BasePath.
func WithFS(filesystem fs.FS) ServiceOption {
	return func(o *serviceOptions) {
		o.fs = filesystem
	}
}

// WithParser enables HTML previews through the supplied parser.
func WithParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(o *serviceOptions) {
		o.parser = parser
	}
}

// WithLogger sets the logger used for conversion diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// NewService constructs a conversion service. Without WithFS the loader reads
// from os.DirFS(cfg.BasePath), which must exist.
func NewService(cfg Config, opts ...ServiceOption) (*Service, error) {
	options := serviceOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	filesystem := options.fs
	if filesystem == nil {
		prepared, err := prepareFilesystem(cfg.BasePath)
		if err != nil {
			return nil, err
		}
		filesystem = prepared
	}

	logger := options.logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		cfg:    cfg,
		parser: options.parser,
		logger: logger,
		loader: markdown.NewLoader(filesystem, markdown.LoaderConfig{
			BasePath:  cfg.BasePath,
			Pattern:   cfg.Pattern,
			Recursive: cfg.Recursive,
		}),
	}, nil
}

// Convert renders an in-memory model document.
func (s *Service) Convert(ctx context.Context, source []byte, opts interfaces.ConvertOptions) (*interfaces.Document, error) {
	sum := sha256.Sum256(source)
	doc, err := s.convert(ctx, source, sum[:], opts)
	if err != nil {
		return nil, convertError(opts.SourcePath, err)
	}
	return doc, nil
}

// ConvertFile reads a model file relative to the base path and renders it.
func (s *Service) ConvertFile(ctx context.Context, path string, opts interfaces.ConvertOptions) (*interfaces.Document, error) {
	src, err := s.loader.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	opts.SourcePath = src.Path
	doc, err := s.convert(ctx, src.Data, src.Checksum, opts)
	if err != nil {
		return nil, convertError(src.Path, err)
	}
	return doc, nil
}

// ConvertDirectory renders every model file found under dir, sorted by path.
// The first failure aborts the run and no documents are returned.
func (s *Service) ConvertDirectory(ctx context.Context, dir string, opts interfaces.ConvertOptions) ([]*interfaces.Document, error) {
	sources, err := s.loader.LoadDirectory(ctx, dir, markdown.LoadParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("pipeline.directory.discovered", "directory", dir, "files", len(sources))

	docs := make([]*interfaces.Document, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileOpts := opts
		fileOpts.SourcePath = src.Path
		doc, err := s.convert(ctx, src.Data, src.Checksum, fileOpts)
		if err != nil {
			return nil, convertError(src.Path, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// RenderHTML converts the document's Markdown into HTML and stores it on doc.
func (s *Service) RenderHTML(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, ErrDocumentRequired
	}
	if s.parser == nil {
		return nil, ErrPreviewDisabled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	html, err := s.parser.ParseWithOptions([]byte(doc.Markdown), markdown.MergeParseOptions(s.cfg.Preview, opts))
	if err != nil {
		return nil, fmt.Errorf("render html %s: %w", doc.SourcePath, err)
	}
	doc.HTML = html
	return html, nil
}

func (s *Service) convert(ctx context.Context, source, checksum []byte, opts interfaces.ConvertOptions) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := identity.DocumentUUID(checksum)
	logger := logging.WithSourceContext(s.logger, opts.SourcePath, id.String())

	result, err := collector.DecodeBytes(source)
	if err != nil {
		logger.Warn("pipeline.convert.parse_failed", "error", err)
		return nil, err
	}
	if result.Dropped > 0 {
		logger.Warn("pipeline.convert.dropped_children", "dropped", result.Dropped)
	}

	stats := result.Model.Stats()
	renderer := render.New(s.renderOptions(opts, id.String(), checksum, stats))
	out, err := renderer.Render(result.Model)
	if err != nil {
		return nil, err
	}

	logger.Info("pipeline.convert.completed",
		"entities", stats.Entities,
		"attributes", stats.Attributes,
		"relationships", stats.Relationships,
	)

	return &interfaces.Document{
		ID:         id,
		SourcePath: opts.SourcePath,
		Markdown:   out,
		Checksum:   checksum,
		Stats: interfaces.DocumentStats{
			Entities:      stats.Entities,
			Attributes:    stats.Attributes,
			Relationships: stats.Relationships,
			Dropped:       result.Dropped,
		},
	}, nil
}

func (s *Service) renderOptions(opts interfaces.ConvertOptions, id string, checksum []byte, stats model.Stats) render.Options {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = s.cfg.Title
	}

	out := render.Options{
		Title:           title,
		TableOfContents: opts.TableOfContents || s.cfg.TableOfContents,
	}
	if opts.FrontMatter || s.cfg.FrontMatter {
		out.FrontMatter = &render.FrontMatter{
			Title:    title,
			ID:       id,
			Source:   opts.SourcePath,
			Checksum: hex.EncodeToString(checksum),
			Stats:    stats,
		}
	}
	return out
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("pipeline: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
