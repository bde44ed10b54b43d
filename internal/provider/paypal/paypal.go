// Package paypal - адаптер PayPal Orders v2: создание заказа и явный capture вторым вызовом.
package paypal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sdk "github.com/plutov/paypal/v4"
	"github.com/stpnv0/EscrowPay/internal/domain"
)

const (
	statusCompleted = "COMPLETED"
	statusApproved  = "APPROVED"
	statusVoided    = "VOIDED"
	statusDeclined  = "DECLINED"

	issueNotApproved     = "ORDER_NOT_APPROVED"
	issueAlreadyCaptured = "ORDER_ALREADY_CAPTURED"

	linkApprove = "approve"
	linkPayer   = "payer-action"
)

// OrdersAPI - часть клиента plutov/paypal, которой пользуется адаптер.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, intent string, units []sdk.PurchaseUnitRequest, payer *sdk.CreateOrderPayer, app *sdk.ApplicationContext) (*sdk.Order, error)
	CaptureOrder(ctx context.Context, orderID string, req sdk.CaptureOrderRequest) (*sdk.CaptureOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*sdk.Order, error)
}

type Adapter struct {
	orders OrdersAPI
}

// New создает клиента; токен запрашивается при первом обращении.
func New(clientID, secret string, live bool) (*Adapter, error) {
	base := sdk.APIBaseSandBox
	if live {
		base = sdk.APIBaseLive
	}

	c, err := sdk.NewClient(clientID, secret, base)
	if err != nil {
		return nil, fmt.Errorf("create paypal client: %w", err)
	}

	return NewWithAPI(&tokenClient{c: c}), nil
}

func NewWithAPI(orders OrdersAPI) *Adapter {
	return &Adapter{orders: orders}
}

func (a *Adapter) Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.Handle, error) {
	units := []sdk.PurchaseUnitRequest{
		{
			ReferenceID: req.Order.ID,
			Amount: &sdk.PurchaseUnitAmount{
				Currency: req.Payment.Currency,
				Value:    req.Payment.Amount.StringFixed(2),
			},
		},
	}
	app := &sdk.ApplicationContext{
		ReturnURL: req.ReturnURL,
		CancelURL: req.CancelURL,
	}

	order, err := a.orders.CreateOrder(ctx, sdk.OrderIntentCapture, units, nil, app)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %w", domain.ErrProvider, err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order without id", domain.ErrMalformedResponse)
	}

	h := &domain.Handle{
		Reference: order.ID,
		Kind:      domain.HandleJSON,
	}
	for _, l := range order.Links {
		if l.Rel == linkApprove || l.Rel == linkPayer {
			h.RedirectURL = l.Href
			break
		}
	}

	return h, nil
}

// Resolve выполняет capture. Заказ, который покупатель еще не одобрил, остается pending.
func (a *Adapter) Resolve(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	resp, err := a.orders.CaptureOrder(ctx, h.Reference, sdk.CaptureOrderRequest{})
	if err != nil {
		switch issueOf(err) {
		case issueNotApproved:
			return domain.Outcome{Status: domain.OutcomePending}, nil
		case issueAlreadyCaptured:
			return a.Finalize(ctx, h)
		}
		return domain.Outcome{}, fmt.Errorf("%w: capture order: %w", domain.ErrProvider, err)
	}

	switch resp.Status {
	case statusCompleted:
		return domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: captureID(resp.PurchaseUnits, h.Reference)}, nil
	case statusDeclined, statusVoided:
		return domain.Outcome{Status: domain.OutcomeFailure, Reason: "capture " + resp.Status}, nil
	default:
		return domain.Outcome{Status: domain.OutcomePending}, nil
	}
}

// Finalize читает заказ и выносит окончательное решение.
func (a *Adapter) Finalize(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	order, err := a.orders.GetOrder(ctx, h.Reference)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("%w: get order: %w", domain.ErrProvider, err)
	}

	switch order.Status {
	case statusCompleted:
		txnID := h.Reference
		for _, u := range order.PurchaseUnits {
			if u.Payments != nil && len(u.Payments.Captures) > 0 {
				txnID = u.Payments.Captures[0].ID
				break
			}
		}
		return domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: txnID}, nil
	case statusApproved:
		return a.Resolve(ctx, h)
	case statusVoided:
		return domain.Outcome{Status: domain.OutcomeFailure, Reason: "order voided"}, nil
	default:
		return domain.Outcome{Status: domain.OutcomeFailure, Reason: "order not approved", Retryable: true}, nil
	}
}

func captureID(units []sdk.CapturedPurchaseUnit, fallback string) string {
	for _, u := range units {
		if u.Payments != nil && len(u.Payments.Captures) > 0 {
			return u.Payments.Captures[0].ID
		}
	}
	return fallback
}

func issueOf(err error) string {
	var resp *sdk.ErrorResponse
	if !errors.As(err, &resp) {
		return ""
	}
	for _, d := range resp.Details {
		if d.Issue != "" {
			return d.Issue
		}
	}
	return ""
}

// tokenClient получает OAuth-токен перед первым запросом; дальше клиент обновляет его сам.
type tokenClient struct {
	c  *sdk.Client
	mu sync.Mutex
}

func (t *tokenClient) ensureToken(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.c.Token != nil {
		return nil
	}
	if _, err := t.c.GetAccessToken(ctx); err != nil {
		return fmt.Errorf("get access token: %w", err)
	}
	return nil
}

func (t *tokenClient) CreateOrder(ctx context.Context, intent string, units []sdk.PurchaseUnitRequest, payer *sdk.CreateOrderPayer, app *sdk.ApplicationContext) (*sdk.Order, error) {
	if err := t.ensureToken(ctx); err != nil {
		return nil, err
	}
	return t.c.CreateOrder(ctx, intent, units, payer, app)
}

func (t *tokenClient) CaptureOrder(ctx context.Context, orderID string, req sdk.CaptureOrderRequest) (*sdk.CaptureOrderResponse, error) {
	if err := t.ensureToken(ctx); err != nil {
		return nil, err
	}
	return t.c.CaptureOrder(ctx, orderID, req)
}

func (t *tokenClient) GetOrder(ctx context.Context, orderID string) (*sdk.Order, error) {
	if err := t.ensureToken(ctx); err != nil {
		return nil, err
	}
	return t.c.GetOrder(ctx, orderID)
}
