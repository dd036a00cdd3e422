package openai_test

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
	"github.com/yufanhao/munch-backend/internal/parser/openai"
	"github.com/yufanhao/munch-backend/internal/port"
)

func newTestExtractor(t *testing.T, handler http.HandlerFunc) *openai.Extractor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return openai.NewExtractorWithEndpoint(&config.ParserConfig{APIKey: "test-key"}, srv.URL)
}

func chatResponse(content, finishReason string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]string{"content": content},
				"finish_reason": finishReason,
			},
		},
	}
}

func TestExtractSendsImageAndPrompt(t *testing.T) {
	var captured map[string]interface{}
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(chatResponse(`{"payment_method": "cash"}`, "stop"))
	})

	out, err := e.Extract(context.Background(), port.ExtractInput{
		ImageBase64: "aGVsbG8=",
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"payment_method": "cash"}`, out)

	assert.Equal(t, "gpt-4o", captured["model"])
	assert.Equal(t, float64(1000), captured["max_tokens"])

	body, _ := json.Marshal(captured["messages"])
	assert.Contains(t, string(body), "data:image/png;base64,aGVsbG8=")
	assert.Contains(t, string(body), "store_name", "prompt must carry the output schema")
	assert.Contains(t, string(body), "payment_method")
}

func TestExtractAPIErrorWrapsExtractionError(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	})

	_, err := e.Extract(context.Background(), port.ExtractInput{ImageBase64: "aGVsbG8=", ContentType: "image/png"})

	require.Error(t, err)
	var extractionErr *parser.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "openai", extractionErr.Provider)
}

func TestExtractTruncatedOutputFails(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`{"store_name": "Pho`, "length"))
	})

	_, err := e.Extract(context.Background(), port.ExtractInput{ImageBase64: "aGVsbG8=", ContentType: "image/png"})

	require.Error(t, err)
	var extractionErr *parser.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, err.Error(), "truncated")
}

func TestExtractEmptyChoicesFails(t *testing.T) {
	e := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})

	_, err := e.Extract(context.Background(), port.ExtractInput{ImageBase64: "aGVsbG8=", ContentType: "image/png"})

	require.Error(t, err)
	var extractionErr *parser.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}
