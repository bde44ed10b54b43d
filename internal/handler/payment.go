package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Checkout создает заказ из корзины и сразу инициирует оплату у выбранного провайдера.
func (h *Handler) Checkout(c *ginext.Context) {
	actor := mustActor(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), actor.UserID, req.Provider, req.Currency)
	if err != nil {
		h.handleError(c, err)
		return
	}

	handle, err := h.settlementService.StartPayment(c.Request.Context(), actor, h.startInput(c, result.OrderID, req.Provider, req.Method))
	if err != nil {
		// Заказ уже создан, оплату можно повторить через /orders/:id/pay
		c.Set("error", err.Error())
		status, msg := errorStatus(err)
		c.JSON(status, dto.ErrorResponse{Error: msg, OrderID: result.OrderID})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckoutResponse(result, handle))
}

// PayOrder - повторная попытка или оплата существующего заказа.
func (h *Handler) PayOrder(c *ginext.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	handle, err := h.settlementService.StartPayment(c.Request.Context(), mustActor(c), h.startInput(c, orderID, req.Provider, req.Method))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHandleResponse(handle))
}

// ProviderReturn - возврат покупателя с хостовой страницы провайдера.
// Без ref берется незавершенный платеж из сессии.
func (h *Handler) ProviderReturn(c *ginext.Context) {
	h.resolve(c, domain.ResolveInput{
		Provider:  c.Param("provider"),
		Reference: c.Query("ref"),
	})
}

func (h *Handler) CapturePayPal(c *ginext.Context) {
	var req dto.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.resolve(c, domain.ResolveInput{
		Provider:     domain.ProviderPayPal,
		Reference:    req.ProviderOrderID,
		MatchSession: true,
	})
}

func (h *Handler) FinalizeAirwallex(c *ginext.Context) {
	var req dto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.resolve(c, domain.ResolveInput{
		Provider:     domain.ProviderAirwallex,
		Reference:    req.IntentID,
		Finalize:     true,
		MatchSession: true,
	})
}

func (h *Handler) resolve(c *ginext.Context, in domain.ResolveInput) {
	result, err := h.settlementService.Resolve(c.Request.Context(), mustActor(c), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementResponse(result))
}

// StreamQR держит SSE-соединение, пока идет опрос QR-платежа.
// Закрытие соединения клиентом отменяет контекст запроса и останавливает опрос.
func (h *Handler) StreamQR(c *ginext.Context) {
	ref := c.Param("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing payment reference"})
		return
	}

	ctx := c.Request.Context()
	started := false

	emit := func(ev domain.PollEvent) {
		if !started {
			c.Header("Content-Type", "text/event-stream")
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Status(http.StatusOK)
			// WriteTimeout сервера короче опроса
			_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})
			started = true
		}
		c.SSEvent("tick", ev)
		c.Writer.Flush()
	}

	outcome, err := h.settlementService.PollQR(ctx, mustActor(c), ref, emit)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return
	case err != nil && !started:
		h.handleError(c, err)
		return
	case err != nil:
		_, msg := errorStatus(err)
		c.SSEvent("error", dto.ErrorResponse{Error: msg})
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", ginext.H{"status": outcome.Status, "reason": outcome.Reason})
	c.Writer.Flush()
}

func (h *Handler) startInput(c *ginext.Context, orderID, provider, method string) domain.StartPaymentInput {
	return domain.StartPaymentInput{
		OrderID:    orderID,
		Provider:   provider,
		Method:     method,
		CustomerIP: c.ClientIP(),
		ReturnURL:  h.publicURL + "/api/payments/" + provider + "/return",
		CancelURL:  h.publicURL + "/api/orders/" + orderID,
	}
}
