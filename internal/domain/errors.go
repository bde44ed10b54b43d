package domain

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrAlertNotFound    = errors.New("fraud alert not found")
	ErrSessionNotFound  = errors.New("no pending payment in session")
)

var (
	ErrValidation          = errors.New("validation error")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrMissingBookingDate  = errors.New("booking date is required")
	ErrUnknownProvider     = errors.New("unknown payment provider")
)

var (
	ErrBookingUnavailable = errors.New("seller is not available on the selected date")
	ErrBookingTaken       = errors.New("booking slot is already taken")
	ErrPaymentRequired    = errors.New("payment required")
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrInvalidTransition  = errors.New("order status does not allow this action")
	ErrPaymentConflict    = errors.New("payment is in a terminal state")
)

var (
	ErrAccessDenied = errors.New("access denied")
)

var (
	ErrProvider          = errors.New("payment provider error")
	ErrMalformedResponse = errors.New("malformed provider response")
)
