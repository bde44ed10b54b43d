package dto

type AddCartItemRequest struct {
	ServiceID   string `json:"service_id" binding:"required,uuid"`
	Quantity    int    `json:"quantity" binding:"omitempty,gt=0"`
	BookingDate string `json:"booking_date"`
}

type CheckoutRequest struct {
	Provider string `json:"provider" binding:"required"`
	Currency string `json:"currency"`
	Method   string `json:"method"`
}

type PayOrderRequest struct {
	Provider string `json:"provider" binding:"required"`
	Method   string `json:"method"`
}

type CaptureRequest struct {
	ProviderOrderID string `json:"provider_order_id" binding:"required"`
}

type FinalizeRequest struct {
	IntentID string `json:"intent_id" binding:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type SetAvailabilityRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required,oneof=available unavailable"`
}

type ReviewAlertRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed resolved"`
}
