package levenshtein

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/matcher"
	"github.com/yufanhao/munch-backend/internal/port"
)

// defaultMaxDistance is the largest edit distance still considered a match.
const defaultMaxDistance = 3

// Matcher implements port.Matcher with local case-insensitive edit distance.
// It needs no network and is fully deterministic, which makes it the fallback
// when no LLM matcher is configured.
type Matcher struct {
	maxDistance int
}

// NewMatcher creates an edit-distance matcher.
func NewMatcher(cfg *config.MatcherConfig) *Matcher {
	maxDistance := cfg.MaxDistance
	if maxDistance <= 0 {
		maxDistance = defaultMaxDistance
	}
	return &Matcher{maxDistance: maxDistance}
}

func init() {
	matcher.RegisterProvider("levenshtein", func(cfg *config.MatcherConfig) (port.Matcher, error) {
		return NewMatcher(cfg), nil
	})
}

// ClosestMatch returns the candidate with the smallest edit distance to
// target, comparing case-insensitively, or empty when the best distance
// exceeds the configured bound. Ties resolve to the earlier candidate. The
// hint is unused; edit distance needs no domain bias.
func (m *Matcher) ClosestMatch(_ context.Context, target string, candidates []string, _ string) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}

	normalized := strings.ToLower(strings.TrimSpace(target))

	best := ""
	bestDist := m.maxDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(normalized, strings.ToLower(strings.TrimSpace(c)))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, nil
}
