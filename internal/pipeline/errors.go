package pipeline

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-modeldoc/internal/collector"
)

const textCodeMalformedXML = "MODEL_XML_MALFORMED"

// ErrDocumentRequired is returned when a nil document is passed for preview.
var ErrDocumentRequired = errors.New("pipeline: document is nil")

// ErrPreviewDisabled is returned by RenderHTML when no parser is configured.
var ErrPreviewDisabled = errors.New("pipeline: html preview is disabled")

// convertError attaches the source path to a conversion failure. Decoder
// failures become go-errors validation errors with the *collector.ParseError
// reachable through errors.As.
func convertError(path string, err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	var parseErr *collector.ParseError
	if errors.As(err, &parseErr) {
		message := "model xml is malformed"
		if path != "" {
			message = fmt.Sprintf("model xml is malformed: %s", path)
		}
		return goerrors.Wrap(err, goerrors.CategoryValidation, message).
			WithTextCode(textCodeMalformedXML)
	}
	if path == "" {
		return err
	}
	return fmt.Errorf("convert %s: %w", path, err)
}
