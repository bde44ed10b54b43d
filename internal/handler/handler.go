package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/handler/dto"
	"github.com/stpnv0/EscrowPay/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type CheckoutSvc interface {
	Checkout(ctx context.Context, userID, providerHint, currencyHint string) (*domain.CheckoutResult, error)
	AddToCart(ctx context.Context, userID string, input domain.AddCartItemInput) (*domain.CartItem, error)
	ListCart(ctx context.Context, userID string) ([]*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, itemID string) error
}

type SettlementSvc interface {
	StartPayment(ctx context.Context, actor domain.Actor, in domain.StartPaymentInput) (*domain.Handle, error)
	Resolve(ctx context.Context, actor domain.Actor, in domain.ResolveInput) (*domain.SettlementResult, error)
	PollQR(ctx context.Context, actor domain.Actor, reference string, emit func(domain.PollEvent)) (domain.Outcome, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.SettlementResult, error)
	ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error)
	ListSellerOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error)
	Accept(ctx context.Context, actor domain.Actor, orderID string) error
	Complete(ctx context.Context, actor domain.Actor, orderID string) error
	Cancel(ctx context.Context, actor domain.Actor, orderID, reason string) error
}

type AvailabilitySvc interface {
	Calendar(ctx context.Context, sellerID string) ([]domain.SellerAvailability, error)
	SetAvailability(ctx context.Context, a domain.SellerAvailability) error
}

type FraudSvc interface {
	CooldownRemaining(ctx context.Context, userID string) (time.Duration, error)
	ListAlerts(ctx context.Context, status *domain.AlertStatus) ([]*domain.FraudAlert, error)
	ReviewAlert(ctx context.Context, id string, status domain.AlertStatus) error
}

type Handler struct {
	checkoutService     CheckoutSvc
	settlementService   SettlementSvc
	availabilityService AvailabilitySvc
	fraudService        FraudSvc
	publicURL           string
}

func NewHandler(
	checkoutService CheckoutSvc,
	settlementService SettlementSvc,
	availabilityService AvailabilitySvc,
	fraudService FraudSvc,
	publicURL string,
) *Handler {
	return &Handler{
		checkoutService:     checkoutService,
		settlementService:   settlementService,
		availabilityService: availabilityService,
		fraudService:        fraudService,
		publicURL:           strings.TrimRight(publicURL, "/"),
	}
}

// Cart

func (h *Handler) ListCart(c *ginext.Context) {
	actor := mustActor(c)

	items, err := h.checkoutService.ListCart(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToCartItemResponse(it))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddToCart(c *ginext.Context) {
	actor := mustActor(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.AddCartItemInput{
		ServiceID: req.ServiceID,
		Quantity:  req.Quantity,
	}
	if req.BookingDate != "" {
		date, err := time.Parse(domain.DateLayout, req.BookingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid booking_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.BookingDate = &date
	}

	item, err := h.checkoutService.AddToCart(c.Request.Context(), actor.UserID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCartItemResponse(item))
}

func (h *Handler) RemoveFromCart(c *ginext.Context) {
	actor := mustActor(c)

	itemID := c.Param("id")
	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cart item id"})
		return
	}

	if err := h.checkoutService.RemoveFromCart(c.Request.Context(), actor.UserID, itemID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Orders

func (h *Handler) ListOrders(c *ginext.Context) {
	orders, err := h.settlementService.ListOrders(c.Request.Context(), mustActor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) ListSellerOrders(c *ginext.Context) {
	orders, err := h.settlementService.ListSellerOrders(c.Request.Context(), mustActor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	result, err := h.settlementService.GetOrder(c.Request.Context(), mustActor(c), orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementResponse(result))
}

func (h *Handler) AcceptOrder(c *ginext.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.settlementService.Accept(c.Request.Context(), mustActor(c), orderID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": domain.OrderStatusAccepted})
}

func (h *Handler) CompleteOrder(c *ginext.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.settlementService.Complete(c.Request.Context(), mustActor(c), orderID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": domain.OrderStatusCompleted})
}

func (h *Handler) CancelOrder(c *ginext.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	// Тело необязательное
	var req dto.CancelOrderRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.settlementService.Cancel(c.Request.Context(), mustActor(c), orderID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": domain.OrderStatusCancelled})
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	actor := mustActor(c)

	calendar, err := h.availabilityService.Calendar(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AvailabilityResponse, 0, len(calendar))
	for _, a := range calendar {
		resp = append(resp, dto.ToAvailabilityResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetAvailability(c *ginext.Context) {
	actor := mustActor(c)

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	a := domain.SellerAvailability{
		SellerID: actor.UserID,
		Date:     date,
		Status:   domain.AvailabilityStatus(req.Status),
	}
	if err = h.availabilityService.SetAvailability(c.Request.Context(), a); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(a))
}

// Fraud

func (h *Handler) GetCooldown(c *ginext.Context) {
	actor := mustActor(c)

	remaining, err := h.fraudService.CooldownRemaining(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CooldownResponse{CooldownSeconds: int64(remaining / time.Second)})
}

func (h *Handler) ListFraudAlerts(c *ginext.Context) {
	var status *domain.AlertStatus
	if s := c.Query("status"); s != "" {
		st := domain.AlertStatus(s)
		status = &st
	}

	alerts, err := h.fraudService.ListAlerts(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FraudAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		resp = append(resp, dto.ToFraudAlertResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ReviewFraudAlert(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid alert id"})
		return
	}

	var req dto.ReviewAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.fraudService.ReviewAlert(c.Request.Context(), id, domain.AlertStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	status, msg := errorStatus(err)
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrAlertNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrUnsupportedCurrency),
		errors.Is(err, domain.ErrMissingBookingDate),
		errors.Is(err, domain.ErrUnknownProvider),
		errors.Is(err, domain.ErrBookingUnavailable):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrBookingTaken),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrPaymentConflict):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrPaymentRequired):
		return http.StatusPaymentRequired, err.Error()

	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, err.Error()

	// Ответ провайдера наружу не отдаем
	case errors.Is(err, domain.ErrProvider),
		errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway, "payment provider error"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// mustActor: маршруты /api всегда идут после middleware.Auth.
func mustActor(c *ginext.Context) domain.Actor {
	actor, _ := middleware.ActorFrom(c)
	return actor
}

func orderIDParam(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return "", false
	}
	return id, true
}

func toOrderResponses(orders []*domain.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}
	return resp
}
