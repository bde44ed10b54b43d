package domain

type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomePending OutcomeStatus = "pending"
	OutcomeFailure OutcomeStatus = "failure"
)

// Outcome - интерпретированный ответ провайдера.
type Outcome struct {
	Status        OutcomeStatus
	ProviderTxnID string
	Reason        string
	// Retryable: после неудачи заказ возвращается в pending_payment, а не отменяется.
	Retryable bool
}

func (o Outcome) Terminal() bool {
	return o.Status == OutcomeSuccess || o.Status == OutcomeFailure
}

type HandleKind string

const (
	HandleRedirect HandleKind = "redirect"
	HandleQR       HandleKind = "qr"
	HandleJSON     HandleKind = "json"
)

// Handle - результат инициации платежа у провайдера.
type Handle struct {
	Provider     string     `json:"provider"`
	OrderID      string     `json:"order_id"`
	Reference    string     `json:"reference"`
	Kind         HandleKind `json:"kind"`
	RedirectURL  string     `json:"redirect_url,omitempty"`
	QRCode       string     `json:"qr_code,omitempty"`
	ClientSecret string     `json:"client_secret,omitempty"`
	// Outcome заполняется, когда ответ провайдера на инициацию уже окончательный.
	Outcome *Outcome `json:"-"`
}

type InitiateRequest struct {
	Order      *Order
	Payment    *Payment
	Method     string
	CustomerIP string
	ReturnURL  string
	CancelURL  string
}

type PollEvent struct {
	Tick    int           `json:"tick"`
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message,omitempty"`
}

type SettlementResult struct {
	Order   *Order   `json:"order"`
	Payment *Payment `json:"payment"`
	Outcome Outcome  `json:"-"`
}

type StartPaymentInput struct {
	OrderID    string
	Provider   string
	Method     string
	CustomerIP string
	ReturnURL  string
	CancelURL  string
}

type ResolveInput struct {
	Provider  string
	Reference string
	Finalize  bool

	// MatchSession: ссылка из запроса должна совпасть с незавершенным платежом в сессии.
	MatchSession bool
}
