package ports

import (
	"context"

	"github.com/stpnv0/EscrowPay/internal/domain"
)

type CartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.CartItem, error)
	Add(ctx context.Context, item *domain.CartItem) error
	Remove(ctx context.Context, userID, itemID string) error
}

// Catalog - внешний каталог услуг, только чтение.
type Catalog interface {
	GetService(ctx context.Context, id string) (*domain.ServiceInfo, error)
}
