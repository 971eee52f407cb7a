package pipeline

import (
	"github.com/goliatone/go-modeldoc/internal/collector"
	"github.com/goliatone/go-modeldoc/internal/render"
)

// Render converts a model document into Markdown. The renderer only runs
// after the whole input decoded successfully; on failure the returned error
// is a *collector.ParseError and the string is empty.
func Render(source []byte) (string, error) {
	result, err := collector.DecodeBytes(source)
	if err != nil {
		return "", err
	}
	return render.Join(render.Lines(result.Model.Entities)), nil
}
