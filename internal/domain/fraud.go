package domain

import "time"

type AlertType string

const (
	AlertHighValue      AlertType = "High-value transaction"
	AlertHighValueBurst AlertType = "High-value transactions in short time"
	AlertFailedLogins   AlertType = "Multiple failed login attempts"
)

type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "pending"
	AlertStatusReviewed AlertStatus = "reviewed"
	AlertStatusResolved AlertStatus = "resolved"
)

type FraudAlert struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Type        AlertType   `json:"alert_type"`
	Description string      `json:"description"`
	Status      AlertStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// LoginEvent приходит от внешнего сервиса аутентификации.
type LoginEvent struct {
	UserID     string    `json:"user_id"`
	Succeeded  bool      `json:"succeeded"`
	OccurredAt time.Time `json:"occurred_at"`
}
