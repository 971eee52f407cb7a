package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

// ErrNoFrontMatter is returned when a document does not open with a
// metadata block. Documents rendered without front matter start with the
// entity rule pair, which is not a metadata block.
var ErrNoFrontMatter = errors.New("markdown: document has no front matter")

// ParseFrontMatter reads the metadata block of a generated document and
// returns it together with the remaining Markdown body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	if !bytes.HasPrefix(source, []byte("---\n")) && !bytes.HasPrefix(source, []byte("---\r\n")) {
		return interfaces.FrontMatter{}, nil, ErrNoFrontMatter
	}

	var meta frontMatterEnvelope
	var raw map[string]any

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if _, err := frontmatter.Parse(bytes.NewReader(source), &raw); err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if len(raw) == 0 {
		return interfaces.FrontMatter{}, nil, ErrNoFrontMatter
	}

	return interfaces.FrontMatter{
		Title:    meta.Title,
		ID:       meta.ID,
		Source:   meta.Source,
		Checksum: meta.Checksum,
		Stats: interfaces.DocumentStats{
			Entities:      meta.Stats.Entities,
			Attributes:    meta.Stats.Attributes,
			Relationships: meta.Stats.Relationships,
		},
		Raw: raw,
	}, body, nil
}

type frontMatterEnvelope struct {
	Title    string `yaml:"title"`
	ID       string `yaml:"id"`
	Source   string `yaml:"source"`
	Checksum string `yaml:"checksum"`
	Stats    struct {
		Entities      int `yaml:"entities"`
		Attributes    int `yaml:"attributes"`
		Relationships int `yaml:"relationships"`
	} `yaml:"stats"`
}
