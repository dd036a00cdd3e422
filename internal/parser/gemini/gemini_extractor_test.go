package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/parser"
	"github.com/yufanhao/munch-backend/internal/parser/gemini"
	"github.com/yufanhao/munch-backend/internal/port"
)

func newTestExtractor(t *testing.T, handler http.HandlerFunc) *gemini.Extractor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gemini.NewExtractorWithEndpoint(&config.ParserConfig{APIKey: "test-key"}, srv.URL)
}

func generateResponse(texts ...string) map[string]interface{} {
	parts := make([]map[string]string, 0, len(texts))
	for _, s := range texts {
		parts = append(parts, map[string]string{"text": s})
	}
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": parts}},
		},
	}
}

func TestExtractSendsInlineImage(t *testing.T) {
	var captured map[string]interface{}
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		_ = json.NewEncoder(w).Encode(generateResponse(`{"payment_method": "cash"}`))
	})

	out, err := e.Extract(context.Background(), port.ExtractInput{
		ImageBase64: "aGVsbG8=",
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"payment_method": "cash"}`, out)

	body, _ := json.Marshal(captured)
	assert.Contains(t, string(body), `"mime_type":"image/png"`)
	assert.Contains(t, string(body), `"data":"aGVsbG8="`)
	assert.Contains(t, string(body), `"maxOutputTokens":1000`)
}

func TestExtractConcatenatesParts(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse(`{"payment_`, `method": "cash"}`))
	})

	out, err := e.Extract(context.Background(), port.ExtractInput{ImageBase64: "aGVsbG8=", ContentType: "image/png"})

	require.NoError(t, err)
	assert.Equal(t, `{"payment_method": "cash"}`, out)
}

func TestExtractAPIErrorWrapsExtractionError(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	})

	_, err := e.Extract(context.Background(), port.ExtractInput{ImageBase64: "aGVsbG8=", ContentType: "image/png"})

	require.Error(t, err)
	var extractionErr *parser.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "gemini", extractionErr.Provider)
}

func TestExtractEmptyCandidatesFails(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := e.Extract(context.Background(), port.ExtractInput{ImageBase64: "aGVsbG8=", ContentType: "image/png"})

	require.Error(t, err)
}
