package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// MockReceiptService is a mock implementation of service.ReceiptService.
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) Parse(ctx context.Context, imageBytes []byte) (*domain.ParsedReceipt, error) {
	args := m.Called(ctx, imageBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedReceipt), args.Error(1)
}
