package ports

import (
	"context"

	"github.com/stpnv0/EscrowPay/internal/domain"
)

type AlertNotifier interface {
	NotifyFraudAlert(ctx context.Context, alert *domain.FraudAlert)
}
