package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
)

type OrderRepo interface {
	// CreateWithPayment атомарно создает заказ, позиции, платеж и очищает корзину пользователя.
	CreateWithPayment(ctx context.Context, order *domain.Order, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Order, error)
	IsOrderForSeller(ctx context.Context, orderID, sellerID string) (bool, error)
	CountHighValueSince(ctx context.Context, userID string, min decimal.Decimal, since time.Time) (int, string, error)
	Accept(ctx context.Context, orderID string) error
	Complete(ctx context.Context, orderID string) (bool, error)
	Cancel(ctx context.Context, orderID string, kind domain.CancelKind, reason string) (bool, error)
}
