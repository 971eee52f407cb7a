package convertcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-modeldoc/internal/markdown"
)

const (
	convertSourceMessageType    = "modeldoc.convert.source"
	convertFileMessageType      = "modeldoc.convert.file"
	convertDirectoryMessageType = "modeldoc.convert.directory"
)

// Sections selects the optional parts of a generated document.
type Sections struct {
	Title           string `json:"title,omitempty"`
	TableOfContents bool   `json:"table_of_contents,omitempty"`
	FrontMatter     bool   `json:"front_matter,omitempty"`
	// HTML writes the goldmark preview instead of Markdown.
	HTML bool `json:"html,omitempty"`
}

// ConvertSourceCommand converts an in-memory model document, typically read
// from stdin.
type ConvertSourceCommand struct {
	Source []byte `json:"source"`
	// SourcePath labels the document in logs and front matter.
	SourcePath string `json:"source_path,omitempty"`
	// Output is the destination file. Empty writes to the sink's stream.
	Output string `json:"output,omitempty"`
	Sections
}

// Type implements command.Message.
func (ConvertSourceCommand) Type() string { return convertSourceMessageType }

// Validate ensures there is something to convert.
func (cmd ConvertSourceCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Source, validation.Required.Error("source document is empty")),
	)
}

// ConvertFileCommand converts one model file resolved against the
// configured base path.
type ConvertFileCommand struct {
	Path   string `json:"path"`
	Output string `json:"output,omitempty"`
	Sections
}

// Type implements command.Message.
func (ConvertFileCommand) Type() string { return convertFileMessageType }

// Validate ensures a path is present.
func (cmd ConvertFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank("modeldoc.convert.file.path_required", "path is required"))),
	)
}

// ConvertDirectoryCommand converts every model file found under Directory.
// One document is written per model into OutputDir, or all of them to the
// sink's stream when OutputDir is empty.
type ConvertDirectoryCommand struct {
	Directory string `json:"directory"`
	OutputDir string `json:"output_dir,omitempty"`
	// Pattern overrides the discovery glob ("contents" by default).
	Pattern   string `json:"pattern,omitempty"`
	Recursive *bool  `json:"recursive,omitempty"`
	Sections
}

// Type implements command.Message.
func (ConvertDirectoryCommand) Type() string { return convertDirectoryMessageType }

// Validate checks the directory and, when given, the discovery pattern.
func (cmd ConvertDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(notBlank("modeldoc.convert.directory.directory_required", "directory is required"))),
		validation.Field(&cmd.Pattern, validation.By(func(value any) error {
			pattern, _ := value.(string)
			if markdown.ValidPattern(pattern) {
				return nil
			}
			return validation.NewError("modeldoc.convert.directory.pattern_invalid", "pattern is not a valid glob")
		})),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
