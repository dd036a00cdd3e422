package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"net/http"

	xdraw "golang.org/x/image/draw"
)

// DefaultMaxDimension bounds the longest side of an image sent to extraction.
const DefaultMaxDimension = 1024

// DecodeError indicates the input bytes could not be decoded as an image.
// It is fatal for the request; the caller must not retry.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Normalize bounds an image so neither dimension exceeds maxDim, preserving
// aspect ratio. Images already within the bound pass through byte-identical.
// Downscaled images are re-encoded as PNG with a Catmull-Rom kernel.
// Returns the image bytes and their content type.
func Normalize(data []byte, maxDim int) ([]byte, string, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}

	if cfg.Width <= maxDim && cfg.Height <= maxDim {
		return data, http.DetectContentType(data), nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}

	scale := float64(maxDim) / float64(cfg.Width)
	if s := float64(maxDim) / float64(cfg.Height); s < scale {
		scale = s
	}
	newW := int(float64(cfg.Width) * scale)
	newH := int(float64(cfg.Height) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}

// EncodeBase64 encodes image bytes for embedding in an extraction request.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
