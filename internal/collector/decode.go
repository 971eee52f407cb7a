package collector

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-modeldoc/internal/model"
)

// ErrNoRootElement is reported when the input holds no element at all.
var ErrNoRootElement = errors.New("no root element")

// ErrContentAfterRoot is reported for elements or text following the root
// element's end tag.
var ErrContentAfterRoot = errors.New("content after root element")

// ErrTextBeforeRoot is reported for non-whitespace text ahead of the root
// element.
var ErrTextBeforeRoot = errors.New("text before root element")

// ParseError reports XML that could not be decoded. No partial model is
// returned alongside it.
type ParseError struct {
	Line   int
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("model xml: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("model xml: offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Result carries the decoded model together with collector diagnostics.
type Result struct {
	Model   model.Model
	Dropped int
}

// DecodeBytes decodes an in-memory model document.
func DecodeBytes(data []byte) (Result, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads the whole document from r, feeding every start element into
// a fresh Collector. The document must be well formed; elements other than
// entity, attribute and relationship may wrap them at any depth.
func Decode(r io.Reader) (Result, error) {
	decoder := xml.NewDecoder(r)
	c := New()
	seenRoot := false
	depth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, newParseError(decoder, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if seenRoot && depth == 0 {
				return Result{}, newParseError(decoder, ErrContentAfterRoot)
			}
			seenRoot = true
			depth++
			c.Start(Event{
				Name:  t.Name.Local,
				Attrs: attrMap(t.Attr),
			})
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth > 0 || len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			if seenRoot {
				return Result{}, newParseError(decoder, ErrContentAfterRoot)
			}
			return Result{}, newParseError(decoder, ErrTextBeforeRoot)
		}
	}

	if !seenRoot {
		return Result{}, newParseError(decoder, ErrNoRootElement)
	}

	return Result{Model: c.Model(), Dropped: c.Dropped()}, nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		out[attr.Name.Local] = attr.Value
	}
	return out
}

func newParseError(decoder *xml.Decoder, err error) *ParseError {
	pe := &ParseError{
		Offset: decoder.InputOffset(),
		Err:    err,
	}
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		pe.Line = syntax.Line
	}
	return pe
}
