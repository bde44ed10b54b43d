package airwallex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	t        *testing.T
	logins   atomic.Int32
	rejectN  atomic.Int32
	confirm  map[string]any
	intent   map[string]any
	lastBody map[string]any
}

func (g *fakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == loginPath {
		assert.Equal(g.t, "cid", r.Header.Get("x-client-id"))
		assert.Equal(g.t, "key", r.Header.Get("x-api-key"))
		n := g.logins.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":      "tok-" + string(rune('0'+n)),
			"expires_at": time.Now().Add(30 * time.Minute).UTC().Format(time.RFC3339),
		})
		return
	}

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer tok-") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if g.rejectN.Load() > 0 {
		g.rejectN.Add(-1)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if r.Body != nil && r.Method == http.MethodPost {
		g.lastBody = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&g.lastBody)
	}

	switch {
	case r.URL.Path == createPath:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":                "int_1",
			"status":            "REQUIRES_PAYMENT_METHOD",
			"client_secret":     "secret_1",
			"merchant_order_id": "order_o1",
		})
	case strings.HasSuffix(r.URL.Path, "/confirm"):
		_ = json.NewEncoder(w).Encode(g.confirm)
	case r.URL.Path == intentsPath+"int_1":
		_ = json.NewEncoder(w).Encode(g.intent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestAdapter(t *testing.T, g *fakeGateway) (*Adapter, func()) {
	g.t = t
	srv := httptest.NewServer(g)
	return New(Config{BaseURL: srv.URL, ClientID: "cid", APIKey: "key"}, srv.Client()), srv.Close
}

func testRequest(method string) domain.InitiateRequest {
	return domain.InitiateRequest{
		Order:      &domain.Order{ID: "o1"},
		Payment:    &domain.Payment{Amount: decimal.RequireFromString("42"), Currency: "SGD"},
		Method:     method,
		CustomerIP: "10.0.0.1",
		ReturnURL:  "https://shop.test/return",
	}
}

func TestAdapter_Initiate_CardReturnsClientSecret(t *testing.T) {
	a, done := newTestAdapter(t, &fakeGateway{})
	defer done()

	h, err := a.Initiate(context.Background(), testRequest("card"))

	require.NoError(t, err)
	assert.Equal(t, "int_1", h.Reference)
	assert.Equal(t, domain.HandleJSON, h.Kind)
	assert.Equal(t, "secret_1", h.ClientSecret)
	assert.Nil(t, h.Outcome)
}

func TestAdapter_Initiate_WalletQR(t *testing.T) {
	g := &fakeGateway{confirm: map[string]any{
		"id":     "int_1",
		"status": "REQUIRES_CUSTOMER_ACTION",
		"next_action": map[string]any{
			"type":   "render_qrcode",
			"qrcode": "weixin://wxpay/bizpayurl?pr=abc",
		},
	}}
	a, done := newTestAdapter(t, g)
	defer done()

	h, err := a.Initiate(context.Background(), testRequest("wechat"))

	require.NoError(t, err)
	assert.Equal(t, domain.HandleQR, h.Kind)
	assert.True(t, strings.HasPrefix(h.QRCode, "data:image/png;base64,"))
	assert.Nil(t, h.Outcome)

	pm := g.lastBody["payment_method"].(map[string]any)
	assert.Equal(t, "wechatpay", pm["type"])
	assert.Equal(t, "10.0.0.1", g.lastBody["customer_ip"])
}

func TestAdapter_Initiate_WalletRedirect(t *testing.T) {
	g := &fakeGateway{confirm: map[string]any{
		"id":          "int_1",
		"status":      "REQUIRES_CUSTOMER_ACTION",
		"next_action": map[string]any{"type": "redirect", "url": "https://alipay.test/pay"},
	}}
	a, done := newTestAdapter(t, g)
	defer done()

	h, err := a.Initiate(context.Background(), testRequest("alipay"))

	require.NoError(t, err)
	assert.Equal(t, domain.HandleRedirect, h.Kind)
	assert.Equal(t, "https://alipay.test/pay", h.RedirectURL)
}

func TestAdapter_Initiate_ConfirmStatusIsAuthoritative(t *testing.T) {
	g := &fakeGateway{confirm: map[string]any{
		"id":                 "int_1",
		"status":             "SUCCEEDED",
		"latest_transaction": map[string]any{"id": "txn_9"},
	}}
	a, done := newTestAdapter(t, g)
	defer done()

	h, err := a.Initiate(context.Background(), testRequest("wechat"))

	require.NoError(t, err)
	require.NotNil(t, h.Outcome)
	assert.Equal(t, domain.OutcomeSuccess, h.Outcome.Status)
	assert.Equal(t, "txn_9", h.Outcome.ProviderTxnID)
}

func TestAdapter_Resolve_StatusMapping(t *testing.T) {
	tests := []struct {
		status string
		want   domain.OutcomeStatus
	}{
		{"SUCCEEDED", domain.OutcomeSuccess},
		{"REQUIRES_CAPTURE", domain.OutcomeSuccess},
		{"CANCELLED", domain.OutcomeFailure},
		{"FAILED", domain.OutcomeFailure},
		{"EXPIRED", domain.OutcomeFailure},
		{"REQUIRES_CUSTOMER_ACTION", domain.OutcomePending},
		{"", domain.OutcomePending},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			a, done := newTestAdapter(t, &fakeGateway{intent: map[string]any{
				"id": "int_1", "status": tt.status, "merchant_order_id": "order_o1",
			}})
			defer done()

			out, err := a.Resolve(context.Background(), domain.Handle{OrderID: "o1", Reference: "int_1"})

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Status)
			if tt.want == domain.OutcomeFailure {
				assert.True(t, out.Retryable)
			}
		})
	}
}

func TestAdapter_TokenCachedAndRefreshedOn401(t *testing.T) {
	g := &fakeGateway{intent: map[string]any{"id": "int_1", "status": "SUCCEEDED"}}
	a, done := newTestAdapter(t, g)
	defer done()

	_, err := a.Resolve(context.Background(), domain.Handle{Reference: "int_1"})
	require.NoError(t, err)
	_, err = a.Resolve(context.Background(), domain.Handle{Reference: "int_1"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), g.logins.Load())

	g.rejectN.Store(1)
	out, err := a.Resolve(context.Background(), domain.Handle{Reference: "int_1"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, out.Status)
	assert.Equal(t, int32(2), g.logins.Load())
}

func TestAdapter_ProviderErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := New(Config{BaseURL: srv.URL, ClientID: "cid", APIKey: "key"}, srv.Client())
	_, err := a.Resolve(context.Background(), domain.Handle{Reference: "int_1"})

	assert.ErrorIs(t, err, domain.ErrProvider)
}

func TestAdapter_Resolve_RetriesServerErrors(t *testing.T) {
	var logins, reads atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case loginPath:
			if logins.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok-1"})
		case intentsPath + "int_1":
			if reads.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "int_1", "status": "SUCCEEDED"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := New(Config{BaseURL: srv.URL, ClientID: "cid", APIKey: "key", MaxRetries: 2}, srv.Client())
	out, err := a.Resolve(context.Background(), domain.Handle{Reference: "int_1"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, out.Status)
	assert.Equal(t, int32(2), logins.Load())
	assert.Equal(t, int32(2), reads.Load())
}

func TestAdapter_ClientErrorAndCreateNotRetried(t *testing.T) {
	var reads, creates atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case loginPath:
			_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok-1"})
		case createPath:
			creates.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		default:
			reads.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := New(Config{BaseURL: srv.URL, ClientID: "cid", APIKey: "key", MaxRetries: 3}, srv.Client())

	_, err := a.Resolve(context.Background(), domain.Handle{Reference: "int_missing"})
	assert.ErrorIs(t, err, domain.ErrProvider)
	assert.Equal(t, int32(1), reads.Load())

	// Повтор create без ответа мог бы открыть второй intent
	_, err = a.Initiate(context.Background(), testRequest("card"))
	assert.ErrorIs(t, err, domain.ErrProvider)
	assert.Equal(t, int32(1), creates.Load())
}
