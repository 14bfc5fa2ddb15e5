package services

import (
	"context"
	"time"

	"storefront/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutSession is what the provider hands back on creation: an opaque id
// and the URL the customer is redirected to.
type CheckoutSession struct {
	ID          string
	RedirectURL string
}

// PaymentProvider is the narrow interface to the external payment
// processor. The provider's own redirect protocol stays behind it.
type PaymentProvider interface {
	CreateSession(amount int64, currency, description string) (*CheckoutSession, error)
	SessionPaid(sessionID string) (bool, error)
}

// PaymentService drives the redirect flow: create a provider session and a
// pending payment record, then settle the record when the customer lands
// back on the success or cancel URL.
type PaymentService struct {
	provider    PaymentProvider
	paymentRepo IPaymentRepository
	logger      *zap.Logger
}

func NewPaymentService(provider PaymentProvider, pr IPaymentRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		provider:    provider,
		paymentRepo: pr,
		logger:      logger,
	}
}

// CreatePayment opens a provider session and returns the redirect URL.
func (s *PaymentService) CreatePayment(ctx context.Context, amount int64, currency, description string) (string, *ServiceError) {
	session, err := s.provider.CreateSession(amount, currency, description)
	if err != nil {
		s.logger.Error("Failed to create payment session", zap.Error(err))
		return "", errInternal("Failed to create payment")
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		ID:        uuid.New(),
		SessionID: session.ID,
		Amount:    amount,
		Currency:  currency,
		Status:    models.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		s.logger.Error("Failed to save payment record", zap.Error(err), zap.String("session_id", session.ID))
		return "", errInternal("Failed to create payment")
	}

	return session.RedirectURL, nil
}

// ExecutePayment confirms a session with the provider and marks the record
// succeeded.
func (s *PaymentService) ExecutePayment(ctx context.Context, sessionID string) *ServiceError {
	if _, err := s.paymentRepo.FindBySessionID(ctx, sessionID); err != nil {
		return errNotFound("Payment not found")
	}

	paid, err := s.provider.SessionPaid(sessionID)
	if err != nil {
		s.logger.Error("Failed to confirm payment session", zap.Error(err), zap.String("session_id", sessionID))
		return errInternal("Failed to execute payment")
	}
	if !paid {
		return errBadRequest("Payment has not completed")
	}

	if err := s.paymentRepo.UpdateStatus(ctx, sessionID, models.PaymentStatusSucceeded); err != nil {
		s.logger.Error("Failed to update payment status", zap.Error(err), zap.String("session_id", sessionID))
		return errInternal("Failed to execute payment")
	}

	s.logger.Info("Payment succeeded", zap.String("session_id", sessionID))
	return nil
}

// CancelPayment marks a pending record canceled. Unknown sessions are
// ignored; the customer just sees the cancel page.
func (s *PaymentService) CancelPayment(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.paymentRepo.UpdateStatus(ctx, sessionID, models.PaymentStatusCanceled); err != nil {
		s.logger.Warn("Failed to mark payment canceled", zap.Error(err), zap.String("session_id", sessionID))
	}
}
