package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// MockReconcileService is a mock implementation of service.ReconcileService.
type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) Resolve(ctx context.Context, restaurantName, itemName string) (*domain.ResolvedPair, error) {
	args := m.Called(ctx, restaurantName, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedPair), args.Error(1)
}
