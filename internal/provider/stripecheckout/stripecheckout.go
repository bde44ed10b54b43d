// Package stripecheckout - адаптер Stripe Checkout: редирект на хостовую страницу оплаты.
package stripecheckout

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	productName      = "Marketplace services order"
	metaOrderID      = "order_id"
	metaUserID       = "user_id"
	sessionIDPattern = "{CHECKOUT_SESSION_ID}"
)

// SessionAPI - часть клиента stripe-go, которой пользуется адаптер.
type SessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Adapter struct {
	sessions SessionAPI
}

func New(secretKey string) *Adapter {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return NewWithAPI(sc.CheckoutSessions)
}

func NewWithAPI(sessions SessionAPI) *Adapter {
	return &Adapter{sessions: sessions}
}

func (a *Adapter) Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.Handle, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(withSessionRef(req.ReturnURL)),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.Order.ID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(req.Payment.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(productName),
					},
					// Stripe принимает сумму в минимальных единицах валюты
					UnitAmount: stripe.Int64(req.Payment.Amount.Shift(2).Round(0).IntPart()),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata(metaOrderID, req.Order.ID)
	params.AddMetadata(metaUserID, req.Order.UserID)

	sess, err := a.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %w", domain.ErrProvider, err)
	}
	if sess.ID == "" || sess.URL == "" {
		return nil, fmt.Errorf("%w: checkout session without id or url", domain.ErrMalformedResponse)
	}

	return &domain.Handle{
		Reference:   sess.ID,
		Kind:        domain.HandleRedirect,
		RedirectURL: sess.URL,
	}, nil
}

func (a *Adapter) Resolve(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := a.sessions.Get(h.Reference, params)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("%w: retrieve checkout session: %w", domain.ErrProvider, err)
	}

	// Сессия от другого заказа не должна закрыть этот
	if h.OrderID != "" && sess.Metadata[metaOrderID] != h.OrderID {
		return domain.Outcome{}, fmt.Errorf("%w: session %s belongs to order %q",
			domain.ErrMalformedResponse, sess.ID, sess.Metadata[metaOrderID])
	}

	switch {
	case sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		txnID := sess.ID
		if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
			txnID = sess.PaymentIntent.ID
		}
		return domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: txnID}, nil
	case sess.Status == stripe.CheckoutSessionStatusExpired:
		return domain.Outcome{Status: domain.OutcomeFailure, Reason: "checkout session expired", Retryable: true}, nil
	default:
		return domain.Outcome{Status: domain.OutcomePending}, nil
	}
}

// Finalize для редиректа совпадает с Resolve: возврат покупателя и есть финальная проверка.
func (a *Adapter) Finalize(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	return a.Resolve(ctx, h)
}

func withSessionRef(returnURL string) string {
	sep := "?"
	if strings.Contains(returnURL, "?") {
		sep = "&"
	}
	// Плейсхолдер подставляет Stripe, экранировать его нельзя
	return returnURL + sep + "ref=" + sessionIDPattern
}
