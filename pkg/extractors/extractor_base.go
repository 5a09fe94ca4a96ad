package extractors

import (
	"fmt"

	"github.com/getzep/animalfacts/internal"
)

var log = internal.GetLogger()

// ExtractorError wraps a failure to produce facts for an animal.
type ExtractorError struct {
	message       string
	originalError error
}

func (e *ExtractorError) Error() string {
	return fmt.Sprintf("extractor error: %s (original error: %v)", e.message, e.originalError)
}

func (e *ExtractorError) Unwrap() error {
	return e.originalError
}

func NewExtractorError(message string, originalError error) *ExtractorError {
	return &ExtractorError{message: message, originalError: originalError}
}
