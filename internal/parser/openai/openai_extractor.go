package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/parser"
	"github.com/yufanhao/munch-backend/internal/port"
)

const (
	apiURL = "https://api.openai.com/v1/chat/completions"
)

// Extractor implements port.ReceiptExtractor using the OpenAI Chat
// Completions API.
type Extractor struct {
	apiKey    string
	model     string
	maxTokens int
	endpoint  string
	client    *http.Client
}

// NewExtractor creates an OpenAI-based receipt extractor.
func NewExtractor(cfg *config.ParserConfig) *Extractor {
	return newExtractor(cfg, apiURL)
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API
// endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ParserConfig, endpoint string) *Extractor {
	return newExtractor(cfg, endpoint)
}

func newExtractor(cfg *config.ParserConfig, endpoint string) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: timeout},
	}
}

func init() {
	parser.RegisterProvider("openai", func(cfg *config.ParserConfig) (port.ReceiptExtractor, error) {
		return NewExtractor(cfg), nil
	})
}

func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (string, error) {
	prompt := parser.BuildReceiptPrompt()
	dataURI := fmt.Sprintf("data:%s;base64,%s", input.ContentType, input.ImageBase64)

	reqBody := map[string]interface{}{
		"model":      e.model,
		"max_tokens": e.maxTokens,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url": dataURI,
						},
					},
					{
						"type": "text",
						"text": prompt,
					},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", &parser.ExtractionError{Provider: "openai", Err: fmt.Errorf("marshaling request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", &parser.ExtractionError{Provider: "openai", Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", &parser.ExtractionError{Provider: "openai", Err: fmt.Errorf("calling openai API: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &parser.ExtractionError{Provider: "openai", Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &parser.ExtractionError{
			Provider: "openai",
			Err:      fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody)),
		}
	}

	return extractContent(respBody)
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func extractContent(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &parser.ExtractionError{Provider: "openai", Err: fmt.Errorf("unmarshaling response: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return "", &parser.ExtractionError{Provider: "openai", Err: errors.New("empty response from API: no choices")}
	}

	if resp.Choices[0].FinishReason == "length" {
		return "", &parser.ExtractionError{
			Provider: "openai",
			Err:      errors.New("output truncated (finish_reason: length): response exceeded output token limit"),
		}
	}

	return resp.Choices[0].Message.Content, nil
}
