package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

// PaymentService records peer payment requests and builds the deep link a
// client opens in the payment app. No money moves here.
type PaymentService interface {
	CreateRequest(ctx context.Context, fromUserID, toUserID int64, amount float64, note string) (*domain.PaymentRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.PaymentRequest, error)
	ListRequests(ctx context.Context, userID int64) ([]domain.PaymentRequest, error)
	SettleRequest(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	payments port.PaymentRequestRepository
	users    port.UserRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(payments port.PaymentRequestRepository, users port.UserRepository) PaymentService {
	return &paymentService{payments: payments, users: users}
}

func (s *paymentService) CreateRequest(ctx context.Context, fromUserID, toUserID int64, amount float64, note string) (*domain.PaymentRequest, error) {
	if fromUserID == toUserID {
		return nil, domain.ErrSelfPaymentRequest
	}
	if _, err := s.users.GetByID(ctx, fromUserID); err != nil {
		return nil, err
	}
	recipient, err := s.users.GetByID(ctx, toUserID)
	if err != nil {
		return nil, err
	}

	req := &domain.PaymentRequest{
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		Amount:      amount,
		Note:        note,
		PaymentLink: buildPaymentLink(recipient.Username, amount, note),
	}
	if err := s.payments.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *paymentService) GetRequest(ctx context.Context, id uuid.UUID) (*domain.PaymentRequest, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *paymentService) ListRequests(ctx context.Context, userID int64) ([]domain.PaymentRequest, error) {
	return s.payments.ListByUser(ctx, userID)
}

func (s *paymentService) SettleRequest(ctx context.Context, id uuid.UUID) error {
	if _, err := s.payments.GetByID(ctx, id); err != nil {
		return err
	}
	return s.payments.MarkSettled(ctx, id)
}

// buildPaymentLink constructs a venmo-style charge deep link for the
// recipient. The client hands it to the OS; settlement is tracked separately.
func buildPaymentLink(username string, amount float64, note string) string {
	q := url.Values{}
	q.Set("txn", "charge")
	q.Set("recipients", username)
	q.Set("amount", fmt.Sprintf("%.2f", amount))
	if note != "" {
		q.Set("note", note)
	}
	return "venmo://paycharge?" + q.Encode()
}
