package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// PollQR опрашивает QR-провайдера, пока платеж не станет окончательным, не истечет лимит
// опросов или не отвалится клиент (ctx). На каждом тике вызывается emit.
// После лимита делается финальный запрос с флагом тайм-аута, pending в нем считается отказом.
func (s *SettlementService) PollQR(
	ctx context.Context,
	actor domain.Actor,
	reference string,
	emit func(domain.PollEvent),
) (domain.Outcome, error) {
	adapter, err := s.provider(domain.ProviderNetsQR)
	if err != nil {
		return domain.Outcome{}, err
	}

	payment, err := s.paymentRepo.GetByReference(ctx, domain.ProviderNetsQR, reference)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("get payment: %w", err)
	}

	order, err := s.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("get order: %w", err)
	}
	if !actor.CanManage(order) {
		return domain.Outcome{}, domain.ErrAccessDenied
	}

	handle := domain.Handle{Provider: domain.ProviderNetsQR, OrderID: order.ID, Reference: reference}

	// failed еще опрашивается: оплата могла пройти после тайм-аута
	if !slices.Contains(domain.SettleablePaymentStatuses, payment.Status) {
		if superseded(payment, handle) {
			s.checkSuperseded(ctx, adapter, order, payment, handle)
		}
		outcome := outcomeFor(payment)
		emit(domain.PollEvent{Status: outcome.Status, Message: string(payment.Status)})
		return outcome, nil
	}

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for tick := 1; tick <= s.opts.MaxPolls; tick++ {
		select {
		case <-ctx.Done():
			s.logger.Info("qr polling stopped, client disconnected",
				logger.String("order_id", order.ID),
				logger.Int("tick", tick),
			)
			return domain.Outcome{Status: domain.OutcomePending}, ctx.Err()
		case <-ticker.C:
		}

		outcome, err := adapter.Resolve(ctx, handle)
		if err != nil {
			// Единичный сбой запроса не завершает опрос, его ограничивает лимит тиков
			s.logger.Warn("qr status query failed",
				logger.String("order_id", order.ID),
				logger.Int("tick", tick),
				logger.String("error", err.Error()),
			)
			outcome = domain.Outcome{Status: domain.OutcomePending}
		}

		emit(domain.PollEvent{Tick: tick, Status: outcome.Status})

		if outcome.Terminal() {
			return outcome, s.finishPoll(ctx, actor, order, payment, handle, outcome)
		}
	}

	outcome, err := adapter.Finalize(ctx, handle)
	if err != nil {
		outcome = domain.Outcome{Status: domain.OutcomeFailure, Reason: err.Error()}
	}
	if outcome.Status == domain.OutcomePending {
		outcome = domain.Outcome{Status: domain.OutcomeFailure, Reason: "payment timed out"}
	}

	s.logger.Info("qr polling timed out",
		logger.String("order_id", order.ID),
		logger.String("outcome", string(outcome.Status)),
	)
	emit(domain.PollEvent{Tick: s.opts.MaxPolls + 1, Status: outcome.Status, Message: "timeout"})

	return outcome, s.finishPoll(ctx, actor, order, payment, handle, outcome)
}

func (s *SettlementService) finishPoll(
	ctx context.Context,
	actor domain.Actor,
	order *domain.Order,
	payment *domain.Payment,
	h domain.Handle,
	outcome domain.Outcome,
) error {
	if err := s.applyOutcome(ctx, order, payment, h, outcome); err != nil {
		return err
	}
	s.dropSession(ctx, actor.UserID, h)
	return nil
}
