package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// CancellableStatuses - из этих статусов заказ может быть отменен.
var CancellableStatuses = []OrderStatus{
	OrderStatusPendingPayment,
	OrderStatusPending,
	OrderStatusAccepted,
}

// CompletableStatuses - из этих статусов заказ может быть завершен.
var CompletableStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
}

// CancelKind - кто или что отменило заказ.
type CancelKind string

const (
	CancelPaymentFailed CancelKind = "payment_failed"
	CancelExpired       CancelKind = "expired"
	CancelUnbookable    CancelKind = "unbookable"
	CancelBuyer         CancelKind = "buyer"
	CancelAdmin         CancelKind = "admin"
)

// ReopenableCancelKinds - отмены системой из-за неуспешной оплаты, после них заказ можно оплатить заново.
var ReopenableCancelKinds = []CancelKind{CancelPaymentFailed, CancelExpired}

func (k CancelKind) Reopenable() bool {
	return slices.Contains(ReopenableCancelKinds, k)
}

type Order struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	CancelKind   CancelKind      `json:"cancel_kind,omitempty"`
	CancelReason string          `json:"cancel_reason,omitempty"`
	Items        []OrderItem     `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ServiceID   string          `json:"service_id"`
	SellerID    string          `json:"seller_id"`
	Title       string          `json:"title"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BookingDate time.Time       `json:"booking_date"`
}

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Actor - аутентифицированный вызывающий.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage - владелец заказа или админ.
func (a Actor) CanManage(o *Order) bool {
	return a.IsAdmin() || o.UserID == a.UserID
}
