package convertcmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

const (
	markdownExt = ".md"
	htmlExt     = ".html"
	modelExt    = ".xcdatamodel"
)

// Sink receives generated documents. An empty target selects the sink's
// stream (stdout for the CLI).
type Sink interface {
	Write(ctx context.Context, target string, content []byte) error
}

// FileSink writes targets to disk, creating parent directories, and empty
// targets to Stream.
type FileSink struct {
	Stream io.Writer

	mu sync.Mutex
}

var _ Sink = (*FileSink)(nil)

// NewFileSink returns a sink streaming to stream, or os.Stdout when nil.
func NewFileSink(stream io.Writer) *FileSink {
	if stream == nil {
		stream = os.Stdout
	}
	return &FileSink{Stream: stream}
}

func (s *FileSink) Write(ctx context.Context, target string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(target) == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, err := s.Stream.Write(content); err != nil {
			return fmt.Errorf("convert sink: write stream: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("convert sink: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("convert sink: write %s: %w", target, err)
	}
	return nil
}

// OutputPath maps a discovered model file onto its document path under
// outputDir. The model bundle name becomes the file name and the bundle's
// location relative to root is kept, so
// "models/Store.xcdatamodeld/Store 2.xcdatamodel/contents" under root
// "models" becomes "<outputDir>/Store.xcdatamodeld/Store 2.md".
func OutputPath(outputDir, root, source string, html bool) string {
	ext := markdownExt
	if html {
		ext = htmlExt
	}

	rel := path.Clean(filepath.ToSlash(source))
	if cleanRoot := path.Clean(filepath.ToSlash(root)); cleanRoot != "." {
		rel = strings.TrimPrefix(rel, cleanRoot+"/")
	}

	dir, file := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")
	name := strings.TrimSuffix(file, path.Ext(file))
	if strings.HasSuffix(dir, modelExt) {
		bundle := path.Base(dir)
		name = strings.TrimSuffix(bundle, modelExt)
		dir = path.Dir(dir)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(outputDir, filepath.FromSlash(dir), name+ext)
}
