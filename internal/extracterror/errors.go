// Package extracterror defines the typed errors returned across the
// extraction and analytics boundary. Errors are plain values so callers can
// always render partial diagnostics (for example the raw OCR text) next to
// the failure.
package extracterror

import "fmt"

// ExtractionError reports that no monetary amount could be resolved from the
// input text. It is surfaced to the caller and never retried.
type ExtractionError struct {
	Input  string
	Reason string
}

func (e *ExtractionError) Error() string {
	snippet := e.Input
	// Truncate on a rune boundary; Vietnamese input is multi-byte.
	if runes := []rune(snippet); len(runes) > 60 {
		snippet = string(runes[:60]) + "..."
	}
	return fmt.Sprintf("extraction failed for %q: %s", snippet, e.Reason)
}

// OCRInputError reports that the text recovered from a receipt image was
// unusable. RawText keeps whatever survived recognition so callers can show
// it for diagnostics.
type OCRInputError struct {
	RawText string
	Reason  string
	Err     error
}

func (e *OCRInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("receipt text unusable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("receipt text unusable: %s", e.Reason)
}

func (e *OCRInputError) Unwrap() error {
	return e.Err
}

// QueryError reports that a natural-language query could not be answered.
type QueryError struct {
	Query  string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q failed: %s", e.Query, e.Reason)
}
