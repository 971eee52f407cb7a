package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-command/dispatcher"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modeldoc/cmd/modeldoc/internal/bootstrap"
	convertcmd "github.com/goliatone/go-modeldoc/internal/commands/convert"
	"github.com/goliatone/go-modeldoc/internal/markdown"
	"github.com/goliatone/go-modeldoc/internal/runtimeconfig"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("modeldoc: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("modeldoc", flag.ContinueOnError)
	in := fs.String("in", "", "Model file or directory to convert (stdin when empty or -)")
	out := fs.String("out", "", "Output file, or output directory when -in is a directory (stdout when empty)")
	pattern := fs.String("pattern", markdown.DefaultModelPattern, "Glob applied when discovering model files in a directory")
	recursive := fs.Bool("recursive", true, "Walk sub-directories when -in is a directory")
	title := fs.String("title", "", "Title heading written before the entities")
	toc := fs.Bool("toc", false, "Write a table of contents linking every entity")
	frontMatter := fs.Bool("frontmatter", false, "Write a YAML front matter block with id, checksum and counts")
	html := fs.Bool("html", false, "Write an HTML preview instead of Markdown")
	inspect := fs.Bool("inspect", false, "Print the front matter of a generated document given with -in")
	timeout := fs.Duration("timeout", 0, "Abort a conversion after this long (default 30s)")
	logProvider := fs.String("log-provider", "console", "Logging provider (console, gologger)")
	logLevel := fs.String("log-level", "warn", "Minimum log level")
	logFormat := fs.String("log-format", "", "gologger output format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inspect {
		return runInspect(*in, stdout)
	}

	target, err := resolveInput(*in)
	if err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		BasePath:        target.basePath,
		Pattern:         *pattern,
		Recursive:       *recursive,
		Title:           *title,
		TableOfContents: *toc,
		FrontMatter:     *frontMatter,
		HTML:            *html,
		Timeout:         *timeout,
		LogProvider:     logProviderFor(*logProvider, *out),
		LogLevel:        *logLevel,
		LogFormat:       *logFormat,
		Output:          stdout,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Commands == nil {
		return fmt.Errorf("convert commands not configured")
	}

	unsubscribe := module.Commands.Subscribe(0)
	defer unsubscribe()

	sections := convertcmd.Sections{
		Title:           *title,
		TableOfContents: *toc,
		FrontMatter:     *frontMatter,
		HTML:            *html,
	}

	var msg any
	switch target.kind {
	case inputStdin:
		source, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		msg = convertcmd.ConvertSourceCommand{Source: source, SourcePath: "stdin", Output: *out, Sections: sections}
	case inputDirectory:
		msg = convertcmd.ConvertDirectoryCommand{
			Directory: ".",
			OutputDir: *out,
			Pattern:   *pattern,
			Recursive: recursive,
			Sections:  sections,
		}
	default:
		msg = convertcmd.ConvertFileCommand{Path: target.path, Output: *out, Sections: sections}
	}

	if err := dispatch(ctx, msg); err != nil {
		return err
	}
	if module.Logger != nil {
		module.Logger.Debug("modeldoc.cli.completed", "input", *in, "output", *out)
	}
	return nil
}

// logProviderFor keeps stdout free for the generated document. go-logger
// always writes to stdout, so it is only used when -out names a destination.
func logProviderFor(provider, out string) string {
	if runtimeconfig.NormalizeProvider(provider) == "gologger" && strings.TrimSpace(out) == "" {
		return "console"
	}
	return provider
}

func dispatch(ctx context.Context, msg any) error {
	switch m := msg.(type) {
	case convertcmd.ConvertSourceCommand:
		return dispatcher.Dispatch(ctx, m)
	case convertcmd.ConvertDirectoryCommand:
		return dispatcher.Dispatch(ctx, m)
	case convertcmd.ConvertFileCommand:
		return dispatcher.Dispatch(ctx, m)
	default:
		return fmt.Errorf("unsupported command %T", msg)
	}
}

type inputKind int

const (
	inputStdin inputKind = iota
	inputFile
	inputDirectory
)

type input struct {
	kind     inputKind
	basePath string
	path     string
}

// resolveInput roots the loader at the input so absolute and relative paths
// behave the same.
func resolveInput(in string) (input, error) {
	in = strings.TrimSpace(in)
	if in == "" || in == "-" {
		return input{kind: inputStdin, basePath: "."}, nil
	}
	info, err := os.Stat(in)
	if err != nil {
		return input{}, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return input{kind: inputDirectory, basePath: in, path: "."}, nil
	}
	return input{kind: inputFile, basePath: filepath.Dir(in), path: filepath.Base(in)}, nil
}

func runInspect(path string, stdout io.Writer) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("-inspect requires -in")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	meta, _, err := markdown.ParseFrontMatter(data)
	if err != nil {
		return fmt.Errorf("parse front matter: %w", err)
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("encode front matter: %w", err)
	}
	return enc.Close()
}
