package dto

import (
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
)

type CartItemResponse struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"service_id"`
	SellerID    string  `json:"seller_id"`
	Title       string  `json:"title"`
	Quantity    int     `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	LineTotal   string  `json:"line_total"`
	BookingDate *string `json:"booking_date"`
}

type HandleResponse struct {
	Provider     string `json:"provider"`
	OrderID      string `json:"order_id"`
	Reference    string `json:"reference"`
	Kind         string `json:"kind"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	QRCode       string `json:"qr_code,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	StreamURL    string `json:"stream_url,omitempty"`
}

type CheckoutResponse struct {
	OrderID         string          `json:"order_id"`
	PaymentID       string          `json:"payment_id"`
	Total           string          `json:"total"`
	Currency        string          `json:"currency"`
	CooldownSeconds int64           `json:"cooldown_seconds"`
	Payment         *HandleResponse `json:"payment"`
}

type OrderItemResponse struct {
	ServiceID   string `json:"service_id"`
	SellerID    string `json:"seller_id"`
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	BookingDate string `json:"booking_date"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	Total        string              `json:"total"`
	Status       string              `json:"status"`
	CancelKind   string              `json:"cancel_kind,omitempty"`
	CancelReason string              `json:"cancel_reason,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    string              `json:"created_at"`
}

type PaymentResponse struct {
	ID               string  `json:"id"`
	Provider         string  `json:"provider"`
	Amount           string  `json:"amount"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	EscrowStatus     string  `json:"escrow_status"`
	PaymentReference string  `json:"payment_reference,omitempty"`
	ProviderTxnID    string  `json:"provider_txn_id,omitempty"`
	RefundReason     string  `json:"refund_reason,omitempty"`
	RefundedAt       *string `json:"refunded_at,omitempty"`
}

type SettlementResponse struct {
	Outcome string          `json:"outcome"`
	Reason  string          `json:"reason,omitempty"`
	Order   OrderResponse   `json:"order"`
	Payment PaymentResponse `json:"payment"`
}

type AvailabilityResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type FraudAlertResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	AlertType   string `json:"alert_type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type CooldownResponse struct {
	CooldownSeconds int64 `json:"cooldown_seconds"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	OrderID string `json:"order_id,omitempty"`
}

func ToCartItemResponse(c *domain.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ID:        c.ID,
		ServiceID: c.ServiceID,
		SellerID:  c.SellerID,
		Title:     c.Title,
		Quantity:  c.Quantity,
		UnitPrice: c.UnitPrice.StringFixed(2),
		LineTotal: c.LineTotal().StringFixed(2),
	}
	if c.BookingDate != nil {
		d := c.BookingDate.Format(domain.DateLayout)
		resp.BookingDate = &d
	}
	return resp
}

func ToHandleResponse(h *domain.Handle) *HandleResponse {
	resp := &HandleResponse{
		Provider:     h.Provider,
		OrderID:      h.OrderID,
		Reference:    h.Reference,
		Kind:         string(h.Kind),
		RedirectURL:  h.RedirectURL,
		QRCode:       h.QRCode,
		ClientSecret: h.ClientSecret,
	}
	if h.Provider == domain.ProviderNetsQR {
		resp.StreamURL = "/api/payments/" + domain.ProviderNetsQR + "/" + h.Reference + "/stream"
	}
	return resp
}

func ToCheckoutResponse(r *domain.CheckoutResult, h *domain.Handle) CheckoutResponse {
	resp := CheckoutResponse{
		OrderID:         r.OrderID,
		PaymentID:       r.PaymentID,
		Total:           r.Total.StringFixed(2),
		Currency:        r.Currency,
		CooldownSeconds: int64(r.CooldownRemaining / time.Second),
	}
	if h != nil {
		resp.Payment = ToHandleResponse(h)
	}
	return resp
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ServiceID:   it.ServiceID,
			SellerID:    it.SellerID,
			Title:       it.Title,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			BookingDate: it.BookingDate.Format(domain.DateLayout),
		})
	}

	return OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		Total:        o.Total.StringFixed(2),
		Status:       string(o.Status),
		CancelKind:   string(o.CancelKind),
		CancelReason: o.CancelReason,
		Items:        items,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:               p.ID,
		Provider:         p.Provider,
		Amount:           p.Amount.StringFixed(2),
		Currency:         p.Currency,
		Status:           string(p.Status),
		EscrowStatus:     string(p.EscrowStatus),
		PaymentReference: p.PaymentReference,
		ProviderTxnID:    p.ProviderTxnID,
		RefundReason:     p.RefundReason,
	}
	if p.RefundedAt != nil {
		t := p.RefundedAt.Format(time.RFC3339)
		resp.RefundedAt = &t
	}
	return resp
}

func ToSettlementResponse(r *domain.SettlementResult) SettlementResponse {
	return SettlementResponse{
		Outcome: string(r.Outcome.Status),
		Reason:  r.Outcome.Reason,
		Order:   ToOrderResponse(r.Order),
		Payment: ToPaymentResponse(r.Payment),
	}
}

func ToAvailabilityResponse(a domain.SellerAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		Date:   a.Date.Format(domain.DateLayout),
		Status: string(a.Status),
	}
}

func ToFraudAlertResponse(a *domain.FraudAlert) FraudAlertResponse {
	return FraudAlertResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		AlertType:   string(a.Type),
		Description: a.Description,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
