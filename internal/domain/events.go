package domain

const (
	EventPaymentPaid            = "payment.paid"
	EventPaymentFailed          = "payment.failed"
	EventPaymentRefundRequested = "payment.refund_requested"
	EventOrderCompleted         = "order.completed"

	EventLoginFailed    = "auth.login_failed"
	EventLoginSucceeded = "auth.login_succeeded"
)

type PaymentEvent struct {
	OrderID       string `json:"order_id"`
	PaymentID     string `json:"payment_id"`
	UserID        string `json:"user_id"`
	Provider      string `json:"provider"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	ProviderTxnID string `json:"provider_txn_id,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type OrderCompletedEvent struct {
	OrderID        string `json:"order_id"`
	UserID         string `json:"user_id"`
	EscrowReleased bool   `json:"escrow_released"`
}
