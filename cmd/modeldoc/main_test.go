package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-modeldoc/cmd/modeldoc/internal/bootstrap"
	convertcmd "github.com/goliatone/go-modeldoc/internal/commands/convert"
	"github.com/goliatone/go-modeldoc/internal/commands/fixtures"
	"github.com/goliatone/go-modeldoc/internal/logging"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

type stubModelDocService struct {
	sources []string
	files   []string
	dirs    []string
}

func (s *stubModelDocService) Convert(_ context.Context, source []byte, _ interfaces.ConvertOptions) (*interfaces.Document, error) {
	s.sources = append(s.sources, string(source))
	return &interfaces.Document{Markdown: "converted"}, nil
}

func (s *stubModelDocService) ConvertFile(_ context.Context, path string, _ interfaces.ConvertOptions) (*interfaces.Document, error) {
	s.files = append(s.files, path)
	return &interfaces.Document{SourcePath: path, Markdown: "converted"}, nil
}

func (s *stubModelDocService) ConvertDirectory(_ context.Context, dir string, _ interfaces.ConvertOptions) ([]*interfaces.Document, error) {
	s.dirs = append(s.dirs, dir)
	return nil, nil
}

func (s *stubModelDocService) RenderHTML(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func stubBuilder(t *testing.T, svc *stubModelDocService, sink *fixtures.MemorySink, captured *bootstrap.Options) func(bootstrap.Options) (*bootstrap.Module, error) {
	t.Helper()
	return func(opts bootstrap.Options) (*bootstrap.Module, error) {
		if captured != nil {
			*captured = opts
		}
		set, err := convertcmd.RegisterConvertCommands(nil, svc, sink, nil, convertcmd.FeatureGates{})
		if err != nil {
			return nil, err
		}
		return &bootstrap.Module{Commands: set, Logger: logging.NoOp()}, nil
	}
}

func TestRunFileUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubModelDocService{}
	sink := fixtures.NewMemorySink()
	var opts bootstrap.Options
	moduleBuilder = stubBuilder(t, svc, sink, &opts)

	in := filepath.Join("testdata", "models", "Store.xcdatamodel", "contents")
	if err := run(context.Background(), []string{"-in", in, "-out", "Store.md", "-toc"}, strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if len(svc.files) != 1 || svc.files[0] != "contents" {
		t.Fatalf("expected file conversion relative to its directory, got %v", svc.files)
	}
	if opts.BasePath != filepath.Dir(in) {
		t.Fatalf("expected base path %q, got %q", filepath.Dir(in), opts.BasePath)
	}
	if !opts.TableOfContents {
		t.Fatal("expected -toc to reach bootstrap options")
	}
	if targets := sink.Targets(); len(targets) != 1 || targets[0] != "Store.md" {
		t.Fatalf("unexpected sink targets %v", targets)
	}
}

func TestRunDirectoryUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubModelDocService{}
	moduleBuilder = stubBuilder(t, svc, fixtures.NewMemorySink(), nil)

	if err := run(context.Background(), []string{"-in", filepath.Join("testdata", "models")}, strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if len(svc.dirs) != 1 || svc.dirs[0] != "." {
		t.Fatalf("expected directory conversion rooted at the input, got %v", svc.dirs)
	}
}

func TestRunReadsStdin(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubModelDocService{}
	sink := fixtures.NewMemorySink()
	moduleBuilder = stubBuilder(t, svc, sink, nil)

	if err := run(context.Background(), nil, strings.NewReader("<model/>"), &bytes.Buffer{}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if len(svc.sources) != 1 || svc.sources[0] != "<model/>" {
		t.Fatalf("expected stdin to be converted, got %v", svc.sources)
	}
	if len(sink.Writes) != 1 || sink.Writes[0].Target != "" {
		t.Fatalf("expected stream output, got %+v", sink.Writes)
	}
}

func TestRunMissingInput(t *testing.T) {
	if err := run(context.Background(), []string{"-in", "testdata/missing"}, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestRunEndToEndWritesMarkdown(t *testing.T) {
	var stdout bytes.Buffer
	in := filepath.Join("testdata", "models", "Store.xcdatamodel", "contents")

	if err := run(context.Background(), []string{"-in", in, "-log-level", "error"}, strings.NewReader(""), &stdout); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "## Person") || !strings.Contains(out, "Class: PetMO") {
		t.Fatalf("unexpected markdown output:\n%s", out)
	}
}

func TestRunEndToEndDirectoryAndInspect(t *testing.T) {
	outDir := t.TempDir()

	err := run(context.Background(), []string{
		"-in", filepath.Join("testdata", "models"),
		"-out", outDir,
		"-frontmatter",
		"-title", "Models",
		"-log-level", "error",
	}, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	for _, name := range []string{"Store.md", "Legacy.md"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}

	var inspected bytes.Buffer
	if err := run(context.Background(), []string{"-inspect", "-in", filepath.Join(outDir, "Store.md")}, strings.NewReader(""), &inspected); err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	got := inspected.String()
	if !strings.Contains(got, "title: Models") || !strings.Contains(got, "entities: 2") {
		t.Fatalf("unexpected inspect output:\n%s", got)
	}
}

func TestRunEndToEndMalformedInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.xml")
	if err := os.WriteFile(path, []byte(`<model><entity name="A">`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-in", path, "-log-level", "error"}, strings.NewReader(""), &stdout); err == nil {
		t.Fatal("expected parse error")
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", stdout.String())
	}
}

func TestRunGoLoggerOnlyWithOutputDestination(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var opts bootstrap.Options
	moduleBuilder = stubBuilder(t, &stubModelDocService{}, fixtures.NewMemorySink(), &opts)

	in := filepath.Join("testdata", "models", "Store.xcdatamodel", "contents")
	if err := run(context.Background(), []string{"-in", in, "-log-provider", "gologger"}, strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if opts.LogProvider != "console" {
		t.Fatalf("expected console provider when writing to stdout, got %q", opts.LogProvider)
	}

	if err := run(context.Background(), []string{"-in", in, "-out", "Store.md", "-log-provider", "gologger"}, strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if opts.LogProvider != "gologger" {
		t.Fatalf("expected gologger provider with -out, got %q", opts.LogProvider)
	}
}

func TestRunKeepsLogsOutOfStdout(t *testing.T) {
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	originalStdout := os.Stdout
	os.Stdout = writer
	defer func() { os.Stdout = originalStdout }()

	source := `<model><attribute name="stray" attributeType="String"/><entity name="A"/></model>`
	var markdown bytes.Buffer
	runErr := run(context.Background(), []string{"-log-provider", "gologger", "-log-level", "warn"}, strings.NewReader(source), &markdown)

	os.Stdout = originalStdout
	writer.Close()
	captured, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read captured stdout: %v", err)
	}

	if runErr != nil {
		t.Fatalf("run returned error: %v", runErr)
	}
	if len(captured) != 0 {
		t.Fatalf("expected no log output on stdout, got %q", captured)
	}
	if !strings.Contains(markdown.String(), "## A") {
		t.Fatalf("expected markdown output, got %q", markdown.String())
	}
}
