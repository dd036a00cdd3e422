package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// MockFoodRepo is a mock implementation of port.FoodRepository.
type MockFoodRepo struct {
	mock.Mock
}

func (m *MockFoodRepo) Create(ctx context.Context, f *domain.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFoodRepo) GetByID(ctx context.Context, id int64) (*domain.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockFoodRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Food, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *MockFoodRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
