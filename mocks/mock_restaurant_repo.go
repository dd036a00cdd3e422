package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// MockRestaurantRepo is a mock implementation of port.RestaurantRepository.
type MockRestaurantRepo struct {
	mock.Mock
}

func (m *MockRestaurantRepo) Create(ctx context.Context, r *domain.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepo) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) List(ctx context.Context, offset, limit int) ([]domain.Restaurant, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Restaurant), args.Int(1), args.Error(2)
}

func (m *MockRestaurantRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
