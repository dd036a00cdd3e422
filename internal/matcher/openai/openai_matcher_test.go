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
	"github.com/yufanhao/munch-backend/internal/matcher/openai"
)

func chatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
}

func newTestMatcher(t *testing.T, handler http.HandlerFunc) *openai.Matcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return openai.NewMatcherWithEndpoint(&config.MatcherConfig{APIKey: "test-key"}, srv.URL)
}

func TestClosestMatchReturnsCandidateMember(t *testing.T) {
	var captured map[string]interface{}
	m := newTestMatcher(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(chatResponse("Pho Time"))
	})

	candidates := []string{"Pho Time", "Taco Bell", "Sushi Go"}
	match, err := m.ClosestMatch(context.Background(), "pho tim", candidates, "restaurant names")

	require.NoError(t, err)
	assert.Equal(t, "Pho Time", match)

	assert.Equal(t, "gpt-3.5-turbo", captured["model"])
	assert.Equal(t, 0.0, captured["temperature"])
	prompt, _ := json.Marshal(captured["messages"])
	assert.Contains(t, string(prompt), "pho tim")
	assert.Contains(t, string(prompt), "restaurant names")
}

func TestClosestMatchTrimsAnswerWhitespace(t *testing.T) {
	m := newTestMatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("  Pho Time\n"))
	})

	match, err := m.ClosestMatch(context.Background(), "pho tim", []string{"Pho Time"}, "")

	require.NoError(t, err)
	assert.Equal(t, "Pho Time", match)
}

func TestClosestMatchRejectsNonMemberAnswer(t *testing.T) {
	m := newTestMatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("Pho Palace"))
	})

	match, err := m.ClosestMatch(context.Background(), "pho tim", []string{"Pho Time", "Taco Bell"}, "")

	require.NoError(t, err)
	assert.Equal(t, "", match, "a hallucinated answer must not be trusted")
}

func TestClosestMatchRejectsCaseVariantEcho(t *testing.T) {
	m := newTestMatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("PHO TIME"))
	})

	match, err := m.ClosestMatch(context.Background(), "pho tim", []string{"Pho Time", "Taco Bell"}, "")

	require.NoError(t, err)
	assert.Equal(t, "", match, "membership is byte-exact, case variants do not count")
}

func TestClosestMatchEmptyCandidatesSkipsAPICall(t *testing.T) {
	called := false
	m := newTestMatcher(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		_ = json.NewEncoder(w).Encode(chatResponse("anything"))
	})

	match, err := m.ClosestMatch(context.Background(), "pho tim", nil, "")

	require.NoError(t, err)
	assert.Equal(t, "", match)
	assert.False(t, called, "empty candidate list must not trigger an API call")
}

func TestClosestMatchAPIError(t *testing.T) {
	m := newTestMatcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	})

	_, err := m.ClosestMatch(context.Background(), "pho tim", []string{"Pho Time"}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClosestMatchEmptyChoices(t *testing.T) {
	m := newTestMatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})

	_, err := m.ClosestMatch(context.Background(), "pho tim", []string{"Pho Time"}, "")

	require.Error(t, err)
}
