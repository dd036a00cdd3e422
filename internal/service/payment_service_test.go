package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/service"
	"github.com/yufanhao/munch-backend/mocks"
)

func TestCreateRequestBuildsPaymentLink(t *testing.T) {
	payments := new(mocks.MockPaymentRequestRepo)
	users := new(mocks.MockUserRepo)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Username: "bob"}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewPaymentService(payments, users)
	req, err := svc.CreateRequest(context.Background(), 1, 2, 18.5, "dinner at Pho Time")

	require.NoError(t, err)
	assert.Contains(t, req.PaymentLink, "venmo://paycharge?")
	assert.Contains(t, req.PaymentLink, "txn=charge")
	assert.Contains(t, req.PaymentLink, "recipients=bob")
	assert.Contains(t, req.PaymentLink, "amount=18.50")
	assert.Equal(t, int64(1), req.FromUserID)
	assert.Equal(t, int64(2), req.ToUserID)
}

func TestCreateRequestOmitsEmptyNote(t *testing.T) {
	payments := new(mocks.MockPaymentRequestRepo)
	users := new(mocks.MockUserRepo)

	users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 2, Username: "bob"}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewPaymentService(payments, users)
	req, err := svc.CreateRequest(context.Background(), 1, 2, 10, "")

	require.NoError(t, err)
	assert.NotContains(t, req.PaymentLink, "note=")
}

func TestCreateRequestRejectsSelfRequest(t *testing.T) {
	payments := new(mocks.MockPaymentRequestRepo)
	users := new(mocks.MockUserRepo)

	svc := service.NewPaymentService(payments, users)
	_, err := svc.CreateRequest(context.Background(), 5, 5, 10, "")

	require.ErrorIs(t, err, domain.ErrSelfPaymentRequest)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequestUnknownRecipient(t *testing.T) {
	payments := new(mocks.MockPaymentRequestRepo)
	users := new(mocks.MockUserRepo)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
	users.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	svc := service.NewPaymentService(payments, users)
	_, err := svc.CreateRequest(context.Background(), 1, 99, 10, "")

	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
