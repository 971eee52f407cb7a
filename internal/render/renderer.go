package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modeldoc/internal/model"
)

// FrontMatter is emitted as a YAML block at the top of the document.
type FrontMatter struct {
	Title    string      `yaml:"title,omitempty"`
	ID       string      `yaml:"id,omitempty"`
	Source   string      `yaml:"source,omitempty"`
	Checksum string      `yaml:"checksum,omitempty"`
	Stats    model.Stats `yaml:"stats"`
}

// Options toggles the document-level sections. The zero value renders the
// entity template only.
type Options struct {
	Title           string
	TableOfContents bool
	FrontMatter     *FrontMatter
}

// Renderer renders whole documents.
type Renderer struct {
	opts Options
}

// New constructs a renderer with the supplied options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Lines renders the optional preamble followed by the entity template.
func (r *Renderer) Lines(m model.Model) ([]string, error) {
	var out []string

	if r.opts.FrontMatter != nil {
		block, err := frontMatterLines(*r.opts.FrontMatter)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}

	if title := strings.TrimSpace(r.opts.Title); title != "" {
		out = append(out, "# "+title, "")
	}

	if r.opts.TableOfContents && len(m.Entities) > 0 {
		out = append(out, tableOfContents(m.Entities)...)
	}

	return append(out, Lines(m.Entities)...), nil
}

// Render joins Lines with newline separators.
func (r *Renderer) Render(m model.Model) (string, error) {
	lines, err := r.Lines(m)
	if err != nil {
		return "", err
	}
	return Join(lines), nil
}

// Join concatenates lines with "\n" and no trailing newline.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

func frontMatterLines(fm FrontMatter) ([]string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, fmt.Errorf("render front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render front matter: %w", err)
	}

	body := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	out := make([]string, 0, len(body)+3)
	out = append(out, ruleToken)
	out = append(out, body...)
	return append(out, ruleToken, ""), nil
}

func tableOfContents(entities []model.Entity) []string {
	out := make([]string, 0, len(entities)+1)
	seen := map[string]int{}
	for _, entity := range entities {
		out = append(out, fmt.Sprintf("- [%s](#%s)", entity.Name, anchor(entity.Name, seen)))
	}
	return append(out, "")
}

// anchor builds a stable fragment for an entity heading. Repeated names get a
// numeric suffix.
func anchor(name string, seen map[string]int) string {
	base, err := slug.Normalize(name)
	if err != nil || base == "" {
		base = "entity"
	}
	count := seen[base]
	seen[base] = count + 1
	if count == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, count)
}
