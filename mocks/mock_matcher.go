package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMatcher is a mock implementation of port.Matcher.
type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) ClosestMatch(ctx context.Context, target string, candidates []string, hint string) (string, error) {
	args := m.Called(ctx, target, candidates, hint)
	return args.String(0), args.Error(1)
}
