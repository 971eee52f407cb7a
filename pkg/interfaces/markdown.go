package interfaces

// MarkdownParser converts generated Markdown into HTML for previews.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises HTML preview rendering.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// FrontMatter is the metadata block modeldoc writes ahead of a document when
// front matter output is enabled.
type FrontMatter struct {
	Title    string         `yaml:"title" json:"title"`
	ID       string         `yaml:"id" json:"id"`
	Source   string         `yaml:"source" json:"source"`
	Checksum string         `yaml:"checksum" json:"checksum"`
	Stats    DocumentStats  `yaml:"stats" json:"stats"`
	Raw      map[string]any `yaml:"-" json:"raw"`
}
