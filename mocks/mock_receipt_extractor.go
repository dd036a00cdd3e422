package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yufanhao/munch-backend/internal/port"
)

// MockReceiptExtractor is a mock implementation of port.ReceiptExtractor.
type MockReceiptExtractor struct {
	mock.Mock
}

func (m *MockReceiptExtractor) Extract(ctx context.Context, input port.ExtractInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
