package port

import "context"

// Matcher selects the candidate closest to target, biased by a free-text
// domain hint (e.g. "restaurant names"). The returned string is always a
// byte-exact member of candidates, or empty when nothing matched acceptably.
// An empty candidate list yields an empty result without any external call.
type Matcher interface {
	ClosestMatch(ctx context.Context, target string, candidates []string, hint string) (string, error)
}
