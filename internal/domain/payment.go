package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OpenPaymentStatuses - статусы, из которых провайдер еще может перевести платеж в paid или failed.
var OpenPaymentStatuses = []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPending}

// SettleablePaymentStatuses - статусы, в которых поздний успех провайдера еще применяется:
// платеж мог быть закрыт по тайм-ауту раньше, чем покупатель заплатил.
var SettleablePaymentStatuses = []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPending, PaymentStatusFailed}

// RetryablePaymentStatuses - статусы, из которых платеж можно запустить заново.
var RetryablePaymentStatuses = []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPending, PaymentStatusFailed}

type EscrowStatus string

const (
	EscrowNone     EscrowStatus = "none"
	EscrowHeld     EscrowStatus = "held"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
)

const (
	ProviderNetsQR    = "nets_qr"
	ProviderStripe    = "stripe"
	ProviderPayPal    = "paypal"
	ProviderAirwallex = "airwallex"
)

type Payment struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"order_id"`
	Provider         string          `json:"provider"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Status           PaymentStatus   `json:"status"`
	EscrowStatus     EscrowStatus    `json:"escrow_status"`
	PaymentReference string          `json:"payment_reference"`
	ProviderTxnID    string          `json:"provider_txn_id"`
	RefundReason     string          `json:"refund_reason,omitempty"`
	RefundedAt       *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Capture - списание, подтвержденное провайдером по конкретной попытке оплаты.
type Capture struct {
	Provider      string
	Reference     string
	ProviderTxnID string
}

// PaymentSession - незавершенный платеж пользователя у конкретного провайдера.
type PaymentSession struct {
	UserID    string
	Provider  string
	OrderID   string
	Reference string
	UpdatedAt time.Time
}
