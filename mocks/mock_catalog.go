package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// MockCatalog is a mock implementation of port.Catalog.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListRestaurantNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalog) ListMenuItemNames(ctx context.Context, restaurantID int64) ([]string, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalog) FindRestaurantByName(ctx context.Context, name string) (*domain.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}
