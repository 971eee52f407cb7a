package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// ModelDocService converts Core Data model documents into Markdown.
type ModelDocService interface {
	Convert(ctx context.Context, source []byte, opts ConvertOptions) (*Document, error)
	ConvertFile(ctx context.Context, path string, opts ConvertOptions) (*Document, error)
	ConvertDirectory(ctx context.Context, dir string, opts ConvertOptions) ([]*Document, error)
	RenderHTML(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}

// ConvertOptions selects the optional document sections. The zero value
// produces the bare entity documentation.
type ConvertOptions struct {
	// SourcePath is recorded on the document and in front matter.
	SourcePath      string
	Title           string
	TableOfContents bool
	FrontMatter     bool
	// Pattern and Recursive override discovery for ConvertDirectory.
	Pattern   string
	Recursive *bool
}

// DocumentStats summarises the converted model.
type DocumentStats struct {
	Entities      int `yaml:"entities" json:"entities"`
	Attributes    int `yaml:"attributes" json:"attributes"`
	Relationships int `yaml:"relationships" json:"relationships"`
	// Dropped counts attribute or relationship elements seen before any entity.
	Dropped int `yaml:"-" json:"dropped"`
}

// Document is the result of a single conversion.
type Document struct {
	ID         uuid.UUID
	SourcePath string
	Markdown   string
	HTML       []byte
	// Checksum is the SHA-256 digest of the source XML.
	Checksum []byte
	Stats    DocumentStats
}
