package ports

import (
	"context"

	"github.com/stpnv0/EscrowPay/internal/domain"
)

type FraudRepo interface {
	Create(ctx context.Context, alert *domain.FraudAlert) error
	LatestByUserAndType(ctx context.Context, userID string, alertType domain.AlertType) (*domain.FraudAlert, error)
	List(ctx context.Context, status *domain.AlertStatus) ([]*domain.FraudAlert, error)
	UpdateStatus(ctx context.Context, id string, status domain.AlertStatus) error
	RecordLoginFailure(ctx context.Context, userID string) (int, error)
	ResetLoginFailures(ctx context.Context, userID string) error
}

// FraudSignals - хуки, которые дергают checkout и settlement.
type FraudSignals interface {
	OnOrderCreated(ctx context.Context, order *domain.Order)
	OnPaymentPaid(ctx context.Context, order *domain.Order)
}
