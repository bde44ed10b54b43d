// Package netsqr - адаптер QR-шлюза NETS: запрос QR и опрос статуса по retrieval ref.
package netsqr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/provider/qrimage"
)

const (
	requestPath = "/api/v1/common/payments/nets-qr/request"
	queryPath   = "/api/v1/common/payments/nets-qr/query"

	codeOK        = "00"
	txnSucceeded  = 1
	txnFailed     = 2
	timeoutQuery  = 1
	regularQuery  = 0
	defaultTxnID  = "sandbox_nets|m|8ff8e5b6-d43e-4786-8ac5-7accf8c5bd9b"
	clientTimeout = 15 * time.Second
)

type Config struct {
	BaseURL   string
	APIKey    string
	ProjectID string
	TxnID     string
	// MaxRetries - повторы идемпотентных запросов статуса при сетевых и 5xx ошибках.
	MaxRetries uint64
}

type Adapter struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config, client *http.Client) *Adapter {
	if client == nil {
		client = &http.Client{Timeout: clientTimeout}
	}
	if cfg.TxnID == "" {
		cfg.TxnID = defaultTxnID
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Adapter{cfg: cfg, client: client}
}

type qrRequest struct {
	TxnID        string      `json:"txn_id"`
	AmtInDollars json.Number `json:"amt_in_dollars"`
	NotifyMobile int         `json:"notify_mobile"`
}

type queryRequest struct {
	TxnRetrievalRef       string `json:"txn_retrieval_ref"`
	FrontendTimeoutStatus int    `json:"frontend_timeout_status"`
}

type qrData struct {
	ResponseCode    string `json:"response_code"`
	TxnStatus       int    `json:"txn_status"`
	QRCode          string `json:"qr_code"`
	TxnRetrievalRef string `json:"txn_retrieval_ref"`
	NetworkStatus   int    `json:"network_status"`
}

type envelope struct {
	Result struct {
		Data qrData `json:"data"`
	} `json:"result"`
}

func (a *Adapter) Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.Handle, error) {
	body := qrRequest{
		TxnID:        a.cfg.TxnID,
		AmtInDollars: json.Number(req.Payment.Amount.StringFixed(2)),
		NotifyMobile: 0,
	}

	// Запрос QR не идемпотентен, без повторов
	data, err := a.post(ctx, requestPath, body)
	if err != nil {
		return nil, fmt.Errorf("request qr: %w", err)
	}

	if data.ResponseCode != codeOK || data.QRCode == "" || data.TxnRetrievalRef == "" {
		return nil, fmt.Errorf("%w: qr request declined, response code %q", domain.ErrProvider, data.ResponseCode)
	}

	return &domain.Handle{
		Reference: data.TxnRetrievalRef,
		Kind:      domain.HandleQR,
		QRCode:    qrimage.FromBase64(data.QRCode),
	}, nil
}

// Resolve - обычный опрос статуса. Ответ без явного успеха или отказа считается pending.
func (a *Adapter) Resolve(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	data, err := a.query(ctx, h.Reference, regularQuery)
	if err != nil {
		return domain.Outcome{}, err
	}

	switch {
	case succeeded(data):
		return domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: h.Reference}, nil
	case data.ResponseCode == codeOK && data.TxnStatus == txnFailed:
		return domain.Outcome{Status: domain.OutcomeFailure, Reason: "qr payment declined"}, nil
	default:
		return domain.Outcome{Status: domain.OutcomePending}, nil
	}
}

// Finalize - запрос с флагом тайм-аута фронтенда: все, кроме успеха, окончательный отказ.
func (a *Adapter) Finalize(ctx context.Context, h domain.Handle) (domain.Outcome, error) {
	data, err := a.query(ctx, h.Reference, timeoutQuery)
	if err != nil {
		return domain.Outcome{}, err
	}

	if succeeded(data) {
		return domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: h.Reference}, nil
	}

	return domain.Outcome{
		Status: domain.OutcomeFailure,
		Reason: fmt.Sprintf("qr payment timed out, response code %q", data.ResponseCode),
	}, nil
}

func succeeded(d *qrData) bool {
	return d.ResponseCode == codeOK && d.TxnStatus == txnSucceeded
}

func (a *Adapter) query(ctx context.Context, ref string, timeoutFlag int) (*qrData, error) {
	body := queryRequest{TxnRetrievalRef: ref, FrontendTimeoutStatus: timeoutFlag}

	var data *qrData
	op := func() error {
		var err error
		data, err = a.post(ctx, queryPath, body)
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), a.cfg.MaxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, fmt.Errorf("query qr status: %w", err)
	}

	return data, nil
}

func (a *Adapter) post(ctx context.Context, path string, body any) (*qrData, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", a.cfg.APIKey)
	req.Header.Set("project-id", a.cfg.ProjectID)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrProvider, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProvider, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, backoff.Permanent(fmt.Errorf("%w: status %d: %s", domain.ErrProvider, resp.StatusCode, raw))
	}

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err))
	}

	return &env.Result.Data, nil
}
