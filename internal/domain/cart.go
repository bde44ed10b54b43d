package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	ServiceID   string          `json:"service_id"`
	SellerID    string          `json:"seller_id"`
	Title       string          `json:"title"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BookingDate *time.Time      `json:"booking_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (c CartItem) LineTotal() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// ServiceInfo - то, что корзине нужно знать об услуге из внешнего каталога.
type ServiceInfo struct {
	ID       string
	SellerID string
	Title    string
	Price    decimal.Decimal
}

type AddCartItemInput struct {
	ServiceID   string
	Quantity    int
	BookingDate *time.Time
}

type CheckoutResult struct {
	OrderID           string          `json:"order_id"`
	PaymentID         string          `json:"payment_id"`
	Total             decimal.Decimal `json:"total"`
	Currency          string          `json:"currency"`
	CooldownRemaining time.Duration   `json:"cooldown_remaining"`
}
