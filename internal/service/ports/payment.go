package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
)

type PaymentRepo interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	// GetByReference находит платеж и по ссылке вытесненной попытки.
	GetByReference(ctx context.Context, provider, reference string) (*domain.Payment, error)
	AttachReference(ctx context.Context, paymentID, provider, reference string) error
	// MarkPaid возвращает false, если платеж уже был paid.
	MarkPaid(ctx context.Context, paymentID string, c domain.Capture) (bool, error)
	MarkFailed(ctx context.Context, paymentID string, orderStatus domain.OrderStatus) (bool, error)
	MarkRefundedUnbookable(ctx context.Context, paymentID string, c domain.Capture, reason string) error
	FlagDuplicateCapture(ctx context.Context, provider, reference, providerTxnID string) (bool, error)
	ResetForRetry(ctx context.Context, paymentID, provider string) error
	ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Payment, error)
}

type SessionRepo interface {
	Save(ctx context.Context, s *domain.PaymentSession) error
	Get(ctx context.Context, userID, provider string) (*domain.PaymentSession, error)
	Delete(ctx context.Context, userID, provider, reference string) error
}

// PaymentProvider - адаптер внешнего платежного провайдера.
type PaymentProvider interface {
	Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.Handle, error)
	Resolve(ctx context.Context, h domain.Handle) (domain.Outcome, error)
	Finalize(ctx context.Context, h domain.Handle) (domain.Outcome, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, data any) error
}
