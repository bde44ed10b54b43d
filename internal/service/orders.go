package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func (s *SettlementService) GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.SettlementResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !actor.CanManage(order) {
		isSeller, err := s.orderRepo.IsOrderForSeller(ctx, orderID, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("check seller: %w", err)
		}
		if !isSeller {
			return nil, domain.ErrAccessDenied
		}
	}

	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &domain.SettlementResult{Order: order, Payment: payment, Outcome: outcomeFor(payment)}, nil
}

func (s *SettlementService) ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, actor.UserID)
}

func (s *SettlementService) ListSellerOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error) {
	return s.orderRepo.ListBySeller(ctx, actor.UserID)
}

// Accept - продавец подтверждает оплаченный заказ.
func (s *SettlementService) Accept(ctx context.Context, actor domain.Actor, orderID string) error {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if !actor.IsAdmin() {
		isSeller, err := s.orderRepo.IsOrderForSeller(ctx, orderID, actor.UserID)
		if err != nil {
			return fmt.Errorf("check seller: %w", err)
		}
		if !isSeller {
			return domain.ErrAccessDenied
		}
	}

	if err := s.orderRepo.Accept(ctx, orderID); err != nil {
		return fmt.Errorf("accept order: %w", err)
	}

	s.logger.Info("order accepted",
		logger.String("order_id", orderID),
		logger.String("seller_id", actor.UserID),
	)

	return nil
}

// Complete завершает заказ; удержанное эскроу освобождается продавцу.
func (s *SettlementService) Complete(ctx context.Context, actor domain.Actor, orderID string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !actor.CanManage(order) {
		return domain.ErrAccessDenied
	}

	released, err := s.orderRepo.Complete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("complete order: %w", err)
	}

	s.logger.Info("order completed",
		logger.String("order_id", orderID),
		logger.Any("escrow_released", released),
	)
	s.publish(ctx, domain.EventOrderCompleted, domain.OrderCompletedEvent{
		OrderID:        orderID,
		UserID:         order.UserID,
		EscrowReleased: released,
	})

	return nil
}

// Cancel отменяет заказ покупателем или админом. Если деньги в эскроу, оформляется возврат.
func (s *SettlementService) Cancel(ctx context.Context, actor domain.Actor, orderID, reason string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !actor.CanManage(order) {
		return domain.ErrAccessDenied
	}

	kind := domain.CancelBuyer
	if actor.IsAdmin() && order.UserID != actor.UserID {
		kind = domain.CancelAdmin
	}
	if reason == "" {
		reason = "cancelled by " + string(kind)
	}

	refunded, err := s.orderRepo.Cancel(ctx, orderID, kind, reason)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	s.logger.Info("order cancelled",
		logger.String("order_id", orderID),
		logger.String("actor_id", actor.UserID),
		logger.String("cancel_kind", string(kind)),
		logger.Any("refunded", refunded),
	)

	if refunded {
		payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
		if err != nil {
			s.logger.Error("failed to load refunded payment",
				logger.String("order_id", orderID),
				logger.String("error", err.Error()),
			)
			return nil
		}
		s.publish(ctx, domain.EventPaymentRefundRequested, paymentEvent(order, payment, payment.ProviderTxnID, reason))
	}

	return nil
}
