package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// MockPaymentRequestRepo is a mock implementation of port.PaymentRequestRepository.
type MockPaymentRequestRepo struct {
	mock.Mock
}

func (m *MockPaymentRequestRepo) Create(ctx context.Context, p *domain.PaymentRequest) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRequest), args.Error(1)
}

func (m *MockPaymentRequestRepo) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRequest), args.Error(1)
}

func (m *MockPaymentRequestRepo) MarkSettled(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
