// Package airwallex - адаптер Airwallex Payment Acceptance: payment intent с подтверждением
// через редирект, QR кошелька или клиентский SDK.
package airwallex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/provider/qrimage"
)

const (
	loginPath   = "/api/v1/authentication/login"
	createPath  = "/api/v1/pa/payment_intents/create"
	intentsPath = "/api/v1/pa/payment_intents/"

	tokenSafetyWindow = 60 * time.Second
	defaultTokenTTL   = 15 * time.Minute

	nextRedirect = "redirect"
	nextQRCode   = "render_qrcode"
)

// methods - кошельки, которые подтверждаются сервером через QR-флоу.
var methods = map[string]string{
	"wechat": "wechatpay",
	"alipay": "alipaycn",
}

var errUnauthorized = fmt.Errorf("%w: unauthorized", domain.ErrProvider)

type Config struct {
	BaseURL  string
	ClientID string
	APIKey   string
	LoginAs  string
	Timeout  time.Duration
	// MaxRetries - повторы логина и чтения intent при сетевых и 5xx ошибках.
	MaxRetries uint64
}

type Adapter struct {
	cfg    Config
	client *http.Client
	now    func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func New(cfg Config, client *http.Client) *Adapter {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Adapter{cfg: cfg, client: client, now: time.Now}
}

type intent struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ClientSecret      string `json:"client_secret"`
	MerchantOrderID   string `json:"merchant_order_id"`
	LatestTransaction *struct {
		ID string `json:"id"`
	} `json:"latest_transaction"`
	NextAction *struct {
		Type   string `json:"type"`
		URL    string `json:"url"`
		QRCode string `json:"qrcode"`
	} `json:"next_action"`
}

func (a *Adapter) Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.Handle, error) {
	var created intent
	err := a.call(ctx, http.MethodPost, createPath, map[string]any{
		"request_id":        uuid.New().String(),
		"amount":            json.Number(req.Payment.Amount.StringFixed(2)),
		"currency":          req.Payment.Currency,
		"merchant_order_id": "order_" + req.Order.ID,
		"return_url":        req.ReturnURL,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: payment intent without id", domain.ErrMalformedResponse)
	}

	method, ok := methods[strings.ToLower(req.Method)]
	if !ok {
		// Карта: подтверждение на клиенте через SDK по client_secret
		return &domain.Handle{
			Reference:    created.ID,
			Kind:         domain.HandleJSON,
			ClientSecret: created.ClientSecret,
		}, nil
	}

	return a.confirm(ctx, created.ID, method, req.CustomerIP)
}

func (a *Adapter) confirm(ctx context.Context, intentID, method, customerIP string) (*domain.Handle, error) {
	body := map[string]any{
		"request_id": uuid.New().String(),
		"payment_method": map[string]any{
			"type": method,
			method: map[string]string{"flow": "qrcode"},
		},
	}
	if customerIP != "" {
		body["customer_ip"] = customerIP
	}

	var confirmed intent
	if err := a.call(ctx, http.MethodPost, intentsPath+url.PathEscape(intentID)+"/confirm", body, &confirmed); err != nil {
		return nil, fmt.Errorf("confirm payment intent: %w", err)
	}

	h := &domain.Handle{Reference: intentID}

	// Статус синхронного confirm окончательный
	out := outcomeOf(&confirmed, intentID)
	if out.Terminal() {
		h.Kind = domain.HandleJSON
		h.Outcome = &out
		return h, nil
	}

	if confirmed.NextAction == nil {
		return nil, fmt.Errorf("%w: confirm without next_action", domain.ErrMalformedResponse)
	}

	switch strings.ToLower(confirmed.NextAction.Type) {
	case nextRedirect:
		if confirmed.NextAction.URL == "" {
			return nil, fmt.Errorf("%w: redirect without url", domain.ErrMalformedResponse)
		}
		h.Kind = domain.HandleRedirect
		h.RedirectURL = confirmed.NextAction.URL
	case nextQRCode:
		img, err := qrimage.FromText(confirmed.NextAction.QRCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
		}
		h.Kind = domain.HandleQR
		h.QRCode = img
		h.RedirectURL = confirmed.NextAction.URL
	default:
		return nil, fmt.Errorf("%w: unsupported next_action %q", domain.ErrMalformedResponse, confirmed.NextAction.Type)
	}

	return h, nil
}

func (a *Adapter) Resolve(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	var got intent
	err := a.withRetry(ctx, func() error {
		return a.call(ctx, http.MethodGet, intentsPath+url.PathEscape(h.Reference), nil, &got)
	})
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("get payment intent: %w", err)
	}

	if h.OrderID != "" && got.MerchantOrderID != "" && got.MerchantOrderID != "order_"+h.OrderID {
		return domain.Outcome{}, fmt.Errorf("%w: intent %s belongs to %q", domain.ErrMalformedResponse, got.ID, got.MerchantOrderID)
	}

	return outcomeOf(&got, h.Reference), nil
}

// Finalize - повторное чтение intent по возвращении покупателя.
func (a *Adapter) Finalize(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	return a.Resolve(ctx, h)
}

func outcomeOf(in *intent, intentID string) domain.Outcome {
	switch strings.ToUpper(strings.TrimSpace(in.Status)) {
	case "SUCCEEDED", "REQUIRES_CAPTURE":
		txnID := intentID
		if in.LatestTransaction != nil && in.LatestTransaction.ID != "" {
			txnID = in.LatestTransaction.ID
		}
		return domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: txnID}
	case "CANCELLED", "FAILED", "EXPIRED":
		return domain.Outcome{
			Status:    domain.OutcomeFailure,
			Reason:    "payment intent " + strings.ToLower(in.Status),
			Retryable: true,
		}
	default:
		return domain.Outcome{Status: domain.OutcomePending}
	}
}

// transientError - сетевая ошибка или 5xx, запрос можно повторить.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// withRetry повторяет идемпотентный запрос, пока ошибка transient. Create и confirm
// через него не идут.
func (a *Adapter) withRetry(ctx context.Context, op func() error) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), a.cfg.MaxRetries), ctx)
	return backoff.Retry(func() error {
		err := op()
		var te *transientError
		if err != nil && !errors.As(err, &te) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
}

// call выполняет запрос с bearer-токеном; на 401 токен сбрасывается и запрос повторяется один раз.
func (a *Adapter) call(ctx context.Context, method, path string, body, out any) error {
	err := a.do(ctx, method, path, body, out)
	if !errors.Is(err, errUnauthorized) {
		return err
	}

	a.mu.Lock()
	a.token = ""
	a.expiresAt = time.Time{}
	a.mu.Unlock()

	return a.do(ctx, method, path, body, out)
}

func (a *Adapter) do(ctx context.Context, method, path string, body, out any) error {
	token, err := a.accessToken(ctx)
	if err != nil {
		return err
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"x-client-id":   a.cfg.ClientID,
	}
	return a.send(ctx, method, path, headers, body, out)
}

func (a *Adapter) accessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && a.expiresAt.Add(-tokenSafetyWindow).After(a.now()) {
		return a.token, nil
	}

	headers := map[string]string{
		"x-client-id": a.cfg.ClientID,
		"x-api-key":   a.cfg.APIKey,
	}
	if a.cfg.LoginAs != "" {
		headers["x-login-as"] = a.cfg.LoginAs
	}

	var resp struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	}
	err := a.withRetry(ctx, func() error {
		return a.send(ctx, http.MethodPost, loginPath, headers, nil, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: login without token", domain.ErrMalformedResponse)
	}

	expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
	if err != nil {
		expiresAt = a.now().Add(defaultTokenTTL)
	}

	a.token = resp.Token
	a.expiresAt = expiresAt
	return a.token, nil
}

func (a *Adapter) send(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return &transientError{fmt.Errorf("%w: %w", domain.ErrProvider, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transientError{fmt.Errorf("%w: read body: %w", domain.ErrProvider, err)}
	}

	if resp.StatusCode == http.StatusUnauthorized && path != loginPath {
		return errUnauthorized
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		err = fmt.Errorf("%w: status %d: %s %s", domain.ErrProvider, resp.StatusCode, apiErr.Code, apiErr.Message)
		if resp.StatusCode >= http.StatusInternalServerError {
			return &transientError{err}
		}
		return err
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	return nil
}
