package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/matcher"
	"github.com/yufanhao/munch-backend/internal/port"
)

const (
	apiURL = "https://api.openai.com/v1/chat/completions"
)

// Matcher implements port.Matcher with a deterministic (temperature 0)
// closest-match query against the OpenAI Chat Completions API.
type Matcher struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewMatcher creates an OpenAI-based matcher.
func NewMatcher(cfg *config.MatcherConfig) *Matcher {
	return newMatcher(cfg, apiURL)
}

// NewMatcherWithEndpoint creates a matcher pointing at a custom API endpoint
// (for testing).
func NewMatcherWithEndpoint(cfg *config.MatcherConfig, endpoint string) *Matcher {
	return newMatcher(cfg, endpoint)
}

func newMatcher(cfg *config.MatcherConfig, endpoint string) *Matcher {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Matcher{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func init() {
	matcher.RegisterProvider("openai", func(cfg *config.MatcherConfig) (port.Matcher, error) {
		return NewMatcher(cfg), nil
	})
}

func buildPrompt(target string, candidates []string, hint string) string {
	return fmt.Sprintf(`You are helping identify the best match for a given name from a list.
Given the input: %q, choose the closest matching string from the following list:
%s

Context (if any): %s

Return only the best matching string. Do not include any explanation or extra text.`,
		target, strings.Join(candidates, "\n"), hint)
}

// ClosestMatch returns the candidate the model judges closest to target, or
// empty when the answer is not a byte-exact member of candidates. An empty
// candidate list short-circuits without an API call.
func (m *Matcher) ClosestMatch(ctx context.Context, target string, candidates []string, hint string) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}

	reqBody := map[string]interface{}{
		"model":       m.model,
		"temperature": 0.0,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": "You are a helpful assistant for fuzzy matching.",
			},
			{
				"role":    "user",
				"content": buildPrompt(target, candidates, hint),
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", errors.New("empty response from API: no choices")
	}

	answer := strings.TrimSpace(apiResp.Choices[0].Message.Content)

	// The matcher is a selector, never a generator: only a byte-exact
	// member of the candidate list is an acceptable answer.
	for _, c := range candidates {
		if answer == c {
			return c, nil
		}
	}
	return "", nil
}
