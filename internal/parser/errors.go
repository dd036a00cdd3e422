package parser

import "fmt"

// ExtractionError indicates the extraction provider call failed (network,
// API error, empty response). Fatal per-request; the caller may resubmit the
// whole pipeline, there is no partial result.
type ExtractionError struct {
	Provider string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Provider, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ParseError indicates the model output did not conform to the receipt
// schema. RawOutput carries the full original completion for diagnosis; the
// output is never coerced into a best-guess record.
type ParseError struct {
	RawOutput string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing receipt output: %v (full response: %s)", e.Err, e.RawOutput)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
