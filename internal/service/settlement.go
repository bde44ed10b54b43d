package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type SettlementOptions struct {
	PollInterval time.Duration
	MaxPolls     int
	PendingTTL   time.Duration
}

func DefaultSettlementOptions() SettlementOptions {
	return SettlementOptions{
		PollInterval: 5 * time.Second,
		MaxPolls:     60,
		PendingTTL:   30 * time.Minute,
	}
}

// SettlementService ведет автомат состояний Order x Payment x Escrow.
// Провайдеры подключаются через ports.PaymentProvider и различаются только по имени в реестре.
type SettlementService struct {
	orderRepo   ports.OrderRepo
	paymentRepo ports.PaymentRepo
	sessionRepo ports.SessionRepo
	booking     ports.BookingChecker
	fraud       ports.FraudSignals
	publisher   ports.EventPublisher
	providers   map[string]ports.PaymentProvider
	opts        SettlementOptions
	tracer      trace.Tracer
	logger      logger.Logger
}

func NewSettlementService(
	orderRepo ports.OrderRepo,
	paymentRepo ports.PaymentRepo,
	sessionRepo ports.SessionRepo,
	booking ports.BookingChecker,
	fraud ports.FraudSignals,
	publisher ports.EventPublisher,
	providers map[string]ports.PaymentProvider,
	opts SettlementOptions,
	logger logger.Logger,
) *SettlementService {
	return &SettlementService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		sessionRepo: sessionRepo,
		booking:     booking,
		fraud:       fraud,
		publisher:   publisher,
		providers:   providers,
		opts:        opts,
		tracer:      otel.Tracer("escrowpay/settlement"),
		logger:      logger,
	}
}

// Providers возвращает имена подключенных провайдеров.
func (s *SettlementService) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *SettlementService) provider(name string) (ports.PaymentProvider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, name)
	}
	return p, nil
}

// StartPayment инициирует оплату заказа у провайдера. Неуспешный платеж перед повторной
// попыткой открывается заново, слоты при этом проверяются еще раз.
func (s *SettlementService) StartPayment(ctx context.Context, actor domain.Actor, in domain.StartPaymentInput) (*domain.Handle, error) {
	adapter, err := s.provider(in.Provider)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.UserID != actor.UserID {
		return nil, domain.ErrAccessDenied
	}

	payment, err := s.paymentRepo.GetByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	switch payment.Status {
	case domain.PaymentStatusPaid:
		return nil, domain.ErrAlreadyPaid
	case domain.PaymentStatusRefunded:
		return nil, domain.ErrPaymentConflict
	}

	if err = s.recheckSlots(ctx, order); err != nil {
		return nil, err
	}

	if payment.Status == domain.PaymentStatusFailed ||
		payment.Provider != in.Provider ||
		order.Status != domain.OrderStatusPendingPayment {
		if err = s.paymentRepo.ResetForRetry(ctx, payment.ID, in.Provider); err != nil {
			return nil, fmt.Errorf("reset payment: %w", err)
		}
		payment.Status = domain.PaymentStatusPending
		payment.Provider = in.Provider
		order.Status = domain.OrderStatusPendingPayment
	}

	spanCtx, span := s.tracer.Start(ctx, "provider.initiate", trace.WithAttributes(
		attribute.String("provider", in.Provider),
		attribute.String("order_id", order.ID),
	))
	handle, err := adapter.Initiate(spanCtx, domain.InitiateRequest{
		Order:      order,
		Payment:    payment,
		Method:     in.Method,
		CustomerIP: in.CustomerIP,
		ReturnURL:  in.ReturnURL,
		CancelURL:  in.CancelURL,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "initiate failed")
		span.End()

		// Заказ возвращается в pending_payment, оплату можно начать заново
		failure := domain.Outcome{Status: domain.OutcomeFailure, Reason: err.Error(), Retryable: true}
		if applyErr := s.applyOutcome(ctx, order, payment, domain.Handle{Provider: in.Provider}, failure); applyErr != nil {
			s.logger.Error("failed to record initiate failure",
				logger.String("payment_id", payment.ID),
				logger.String("error", applyErr.Error()),
			)
		}
		return nil, fmt.Errorf("initiate payment: %w", err)
	}
	span.End()

	handle.Provider = in.Provider
	handle.OrderID = order.ID

	if err = s.paymentRepo.AttachReference(ctx, payment.ID, in.Provider, handle.Reference); err != nil {
		return nil, fmt.Errorf("attach reference: %w", err)
	}
	payment.PaymentReference = handle.Reference

	if err = s.sessionRepo.Save(ctx, &domain.PaymentSession{
		UserID:    actor.UserID,
		Provider:  in.Provider,
		OrderID:   order.ID,
		Reference: handle.Reference,
		UpdatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("save payment session: %w", err)
	}

	s.logger.Info("payment initiated",
		logger.String("order_id", order.ID),
		logger.String("payment_id", payment.ID),
		logger.String("provider", in.Provider),
		logger.String("reference", handle.Reference),
	)

	// Синхронный ответ провайдера (confirm с QR) считается окончательным
	if handle.Outcome != nil {
		if err = s.applyOutcome(ctx, order, payment, *handle, *handle.Outcome); err != nil {
			return nil, err
		}
		if handle.Outcome.Terminal() {
			s.dropSession(ctx, actor.UserID, *handle)
		}
	}

	return handle, nil
}

// Resolve применяет текущий ответ провайдера к платежу. Пустая ссылка означает
// "взять незавершенный платеж из сессии пользователя".
func (s *SettlementService) Resolve(ctx context.Context, actor domain.Actor, in domain.ResolveInput) (*domain.SettlementResult, error) {
	adapter, err := s.provider(in.Provider)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.Get(ctx, actor.UserID, in.Provider)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, fmt.Errorf("get payment session: %w", err)
	}

	reference := in.Reference
	switch {
	case session == nil && (reference == "" || in.MatchSession):
		return nil, domain.ErrSessionNotFound
	case reference == "":
		reference = session.Reference
	case in.MatchSession && session.Reference != reference:
		return nil, fmt.Errorf("%w: reference does not match the pending payment", domain.ErrValidation)
	}

	payment, err := s.paymentRepo.GetByReference(ctx, in.Provider, reference)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	order, err := s.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !actor.CanManage(order) {
		return nil, domain.ErrAccessDenied
	}

	handle := domain.Handle{Provider: in.Provider, OrderID: order.ID, Reference: reference}

	// Оплаченный или возвращенный платеж повторно не резолвится. Провайдера спрашиваем
	// только про вытесненную попытку: списание по ней надо вернуть
	if !slices.Contains(domain.SettleablePaymentStatuses, payment.Status) {
		if superseded(payment, handle) {
			s.checkSuperseded(ctx, adapter, order, payment, handle)
		}
		return &domain.SettlementResult{Order: order, Payment: payment, Outcome: outcomeFor(payment)}, nil
	}

	spanCtx, span := s.tracer.Start(ctx, "provider.resolve", trace.WithAttributes(
		attribute.String("provider", in.Provider),
		attribute.String("order_id", order.ID),
		attribute.Bool("finalize", in.Finalize),
	))
	var outcome domain.Outcome
	if in.Finalize {
		outcome, err = adapter.Finalize(spanCtx, handle)
	} else {
		outcome, err = adapter.Resolve(spanCtx, handle)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve failed")
		s.logger.Warn("provider resolve failed",
			logger.String("order_id", order.ID),
			logger.String("provider", in.Provider),
			logger.String("error", err.Error()),
		)
		outcome = domain.Outcome{Status: domain.OutcomeFailure, Reason: err.Error(), Retryable: true}
	}
	span.SetAttributes(attribute.String("outcome", string(outcome.Status)))
	span.End()

	if err = s.applyOutcome(ctx, order, payment, handle, outcome); err != nil {
		return nil, err
	}
	if outcome.Terminal() {
		s.dropSession(ctx, actor.UserID, handle)
	}

	return s.snapshot(ctx, order.ID, outcome)
}

// applyOutcome - единственное место, где ответ провайдера превращается в переходы состояний.
// h - попытка, к которой относится ответ. Пустая ссылка означает текущую попытку.
func (s *SettlementService) applyOutcome(
	ctx context.Context,
	order *domain.Order,
	payment *domain.Payment,
	h domain.Handle,
	outcome domain.Outcome,
) error {
	switch outcome.Status {
	case domain.OutcomeSuccess:
		return s.settlePaid(ctx, order, payment, domain.Capture{
			Provider:      h.Provider,
			Reference:     h.Reference,
			ProviderTxnID: outcome.ProviderTxnID,
		})

	case domain.OutcomeFailure:
		// Отказ по старой попытке не закрывает новую
		if h.Reference != "" && superseded(payment, h) {
			s.logger.Debug("failure on superseded attempt ignored",
				logger.String("order_id", order.ID),
				logger.String("provider", h.Provider),
				logger.String("reference", h.Reference),
			)
			return nil
		}

		target := domain.OrderStatusCancelled
		if outcome.Retryable {
			target = domain.OrderStatusPendingPayment
		}

		applied, err := s.paymentRepo.MarkFailed(ctx, payment.ID, target)
		if err != nil {
			return fmt.Errorf("mark payment failed: %w", err)
		}
		if !applied {
			return nil
		}

		s.logger.Info("payment failed",
			logger.String("order_id", order.ID),
			logger.String("payment_id", payment.ID),
			logger.String("provider", payment.Provider),
			logger.String("order_status", string(target)),
			logger.String("reason", outcome.Reason),
		)
		s.publish(ctx, domain.EventPaymentFailed, paymentEvent(order, payment, outcome.ProviderTxnID, outcome.Reason))

	case domain.OutcomePending:
		s.logger.Debug("payment still pending",
			logger.String("order_id", order.ID),
			logger.String("provider", payment.Provider),
		)
	}

	return nil
}

func (s *SettlementService) settlePaid(ctx context.Context, order *domain.Order, payment *domain.Payment, c domain.Capture) error {
	applied, err := s.paymentRepo.MarkPaid(ctx, payment.ID, c)
	switch {
	case errors.Is(err, domain.ErrBookingTaken), errors.Is(err, domain.ErrInvalidTransition):
		// Деньги списаны, а заказ уже не может быть оплачен: фиксируем возврат
		reason := "booking slot was taken before payment settled"
		if errors.Is(err, domain.ErrInvalidTransition) {
			reason = "order was no longer awaiting payment"
		}
		if rerr := s.paymentRepo.MarkRefundedUnbookable(ctx, payment.ID, c, reason); rerr != nil {
			return fmt.Errorf("refund unbookable payment: %w", rerr)
		}
		s.logger.Warn("captured payment refunded",
			logger.String("order_id", order.ID),
			logger.String("payment_id", payment.ID),
			logger.String("previous_status", string(payment.Status)),
			logger.String("reason", reason),
		)
		s.publish(ctx, domain.EventPaymentRefundRequested, captureEvent(order, payment, c, reason))
		return fmt.Errorf("settle payment: %w", err)

	case errors.Is(err, domain.ErrPaymentConflict):
		s.logger.Warn("provider reported success for a closed payment",
			logger.String("order_id", order.ID),
			logger.String("payment_id", payment.ID),
			logger.String("provider_txn_id", c.ProviderTxnID),
		)
		return fmt.Errorf("settle payment: %w", err)

	case err != nil:
		return fmt.Errorf("mark payment paid: %w", err)
	}

	if !applied {
		return nil
	}

	s.logger.Info("payment settled, escrow held",
		logger.String("order_id", order.ID),
		logger.String("payment_id", payment.ID),
		logger.String("provider", c.Provider),
		logger.String("provider_txn_id", c.ProviderTxnID),
		logger.String("previous_status", string(payment.Status)),
	)
	s.publish(ctx, domain.EventPaymentPaid, captureEvent(order, payment, c, ""))
	s.fraud.OnPaymentPaid(ctx, order)

	return nil
}

// checkSuperseded спрашивает провайдера о вытесненной попытке уже закрытого платежа.
// Если по ней тоже прошло списание, попытка помечается и публикуется запрос на возврат.
func (s *SettlementService) checkSuperseded(
	ctx context.Context,
	adapter ports.PaymentProvider,
	order *domain.Order,
	payment *domain.Payment,
	h domain.Handle,
) {
	outcome, err := adapter.Resolve(ctx, h)
	if err != nil {
		s.logger.Warn("superseded attempt query failed",
			logger.String("order_id", order.ID),
			logger.String("reference", h.Reference),
			logger.String("error", err.Error()),
		)
		return
	}
	if outcome.Status != domain.OutcomeSuccess {
		return
	}
	if h.Provider == payment.Provider && outcome.ProviderTxnID == payment.ProviderTxnID {
		return
	}

	flagged, err := s.paymentRepo.FlagDuplicateCapture(ctx, h.Provider, h.Reference, outcome.ProviderTxnID)
	if err != nil {
		s.logger.Error("failed to flag duplicate capture",
			logger.String("order_id", order.ID),
			logger.String("reference", h.Reference),
			logger.String("error", err.Error()),
		)
		return
	}
	if !flagged {
		return
	}

	reason := "duplicate capture on superseded attempt"
	s.logger.Warn("duplicate capture, refund requested",
		logger.String("order_id", order.ID),
		logger.String("payment_id", payment.ID),
		logger.String("provider", h.Provider),
		logger.String("reference", h.Reference),
		logger.String("provider_txn_id", outcome.ProviderTxnID),
	)
	s.publish(ctx, domain.EventPaymentRefundRequested, captureEvent(order, payment, domain.Capture{
		Provider:      h.Provider,
		Reference:     h.Reference,
		ProviderTxnID: outcome.ProviderTxnID,
	}, reason))
}

// ExpireStale закрывает платежи, по которым провайдер так и не ответил.
func (s *SettlementService) ExpireStale(ctx context.Context) ([]*domain.Payment, error) {
	expired, err := s.paymentRepo.ExpireStale(ctx, s.opts.PendingTTL)
	if err != nil {
		return nil, fmt.Errorf("expire stale payments: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale payments expired",
			logger.Int("count", len(expired)),
		)
	}

	for _, p := range expired {
		s.publish(ctx, domain.EventPaymentFailed, domain.PaymentEvent{
			OrderID:   p.OrderID,
			PaymentID: p.ID,
			Provider:  p.Provider,
			Amount:    p.Amount.StringFixed(2),
			Currency:  p.Currency,
			Reason:    "payment timed out",
		})
	}

	return expired, nil
}

func (s *SettlementService) recheckSlots(ctx context.Context, order *domain.Order) error {
	for _, it := range order.Items {
		taken, err := s.booking.HasPaidBooking(ctx, it.ServiceID, it.BookingDate)
		if err != nil {
			return fmt.Errorf("check double booking: %w", err)
		}
		if taken {
			return fmt.Errorf("%w: service %s on %s",
				domain.ErrBookingTaken, it.ServiceID, it.BookingDate.Format(domain.DateLayout))
		}
	}
	return nil
}

func (s *SettlementService) snapshot(ctx context.Context, orderID string, outcome domain.Outcome) (*domain.SettlementResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}
	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reload payment: %w", err)
	}
	return &domain.SettlementResult{Order: order, Payment: payment, Outcome: outcome}, nil
}

func (s *SettlementService) dropSession(ctx context.Context, userID string, h domain.Handle) {
	if err := s.sessionRepo.Delete(ctx, userID, h.Provider, h.Reference); err != nil {
		s.logger.Error("failed to clear payment session",
			logger.String("user_id", userID),
			logger.String("provider", h.Provider),
			logger.String("error", err.Error()),
		)
	}
}

func (s *SettlementService) publish(ctx context.Context, key string, data any) {
	if err := s.publisher.Publish(ctx, key, data); err != nil {
		s.logger.Error("failed to publish event",
			logger.String("event", key),
			logger.String("error", err.Error()),
		)
	}
}

func paymentEvent(order *domain.Order, payment *domain.Payment, txnID, reason string) domain.PaymentEvent {
	return domain.PaymentEvent{
		OrderID:       order.ID,
		PaymentID:     payment.ID,
		UserID:        order.UserID,
		Provider:      payment.Provider,
		Amount:        payment.Amount.StringFixed(2),
		Currency:      payment.Currency,
		ProviderTxnID: txnID,
		Reason:        reason,
	}
}

// captureEvent - событие по конкретному списанию, провайдер берется из попытки.
func captureEvent(order *domain.Order, payment *domain.Payment, c domain.Capture, reason string) domain.PaymentEvent {
	ev := paymentEvent(order, payment, c.ProviderTxnID, reason)
	if c.Provider != "" {
		ev.Provider = c.Provider
	}
	return ev
}

// superseded - ответ относится не к текущей попытке платежа.
func superseded(p *domain.Payment, h domain.Handle) bool {
	return p.Provider != h.Provider || p.PaymentReference != h.Reference
}

func outcomeFor(p *domain.Payment) domain.Outcome {
	switch p.Status {
	case domain.PaymentStatusPaid:
		return domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: p.ProviderTxnID}
	case domain.PaymentStatusFailed, domain.PaymentStatusRefunded:
		return domain.Outcome{Status: domain.OutcomeFailure}
	default:
		return domain.Outcome{Status: domain.OutcomePending}
	}
}
