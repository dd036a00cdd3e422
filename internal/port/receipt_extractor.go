package port

import "context"

// ExtractInput carries a normalized, transport-encoded receipt image.
type ExtractInput struct {
	ImageBase64 string
	ContentType string
}

// ReceiptExtractor abstracts LLM-based structured extraction. Extract sends
// the image and the receipt schema to a vision model exactly once and returns
// the raw textual completion; shape validation happens downstream.
type ReceiptExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (string, error)
}
