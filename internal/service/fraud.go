package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type FraudRules struct {
	// SingleThreshold: заказ строго дороже порога сразу дает алерт.
	SingleThreshold decimal.Decimal
	// BurstThreshold: заказы не дешевле порога считаются в окне Window.
	BurstThreshold decimal.Decimal
	BurstCount     int
	Window         time.Duration
	LoginLimit     int
}

func DefaultFraudRules() FraudRules {
	return FraudRules{
		SingleThreshold: decimal.NewFromInt(2000),
		BurstThreshold:  decimal.NewFromInt(2000),
		BurstCount:      3,
		Window:          5 * time.Minute,
		LoginLimit:      5,
	}
}

type FraudService struct {
	fraudRepo ports.FraudRepo
	orderRepo ports.OrderRepo
	notifier  ports.AlertNotifier
	rules     FraudRules
	logger    logger.Logger
	now       func() time.Time
}

func NewFraudService(
	fraudRepo ports.FraudRepo,
	orderRepo ports.OrderRepo,
	notifier ports.AlertNotifier,
	rules FraudRules,
	logger logger.Logger,
) *FraudService {
	return &FraudService{
		fraudRepo: fraudRepo,
		orderRepo: orderRepo,
		notifier:  notifier,
		rules:     rules,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// OnOrderCreated - проверка одиночного дорогого заказа.
func (s *FraudService) OnOrderCreated(ctx context.Context, order *domain.Order) {
	if !order.Total.GreaterThan(s.rules.SingleThreshold) {
		return
	}

	s.raise(ctx, order.UserID, domain.AlertHighValue, fmt.Sprintf(
		"Order %s total %s exceeds %s", order.ID, order.Total.StringFixed(2), s.rules.SingleThreshold.String(),
	))
}

// OnPaymentPaid - проверка серии дорогих заказов за окно.
func (s *FraudService) OnPaymentPaid(ctx context.Context, order *domain.Order) {
	since := s.now().Add(-s.rules.Window)

	count, latestID, err := s.orderRepo.CountHighValueSince(ctx, order.UserID, s.rules.BurstThreshold, since)
	if err != nil {
		s.logger.Error("failed to count high value orders",
			logger.String("user_id", order.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	if count < s.rules.BurstCount {
		return
	}

	s.raise(ctx, order.UserID, domain.AlertHighValueBurst, fmt.Sprintf(
		"%d orders of at least %s within %s, latest order %s",
		count, s.rules.BurstThreshold.String(), s.rules.Window, latestID,
	))
}

// OnLoginEvent считает подряд идущие неудачные входы; успешный вход сбрасывает счетчик.
func (s *FraudService) OnLoginEvent(ctx context.Context, ev domain.LoginEvent) error {
	if ev.UserID == "" {
		return fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}

	if ev.Succeeded {
		if err := s.fraudRepo.ResetLoginFailures(ctx, ev.UserID); err != nil {
			return fmt.Errorf("reset login failures: %w", err)
		}
		return nil
	}

	attempts, err := s.fraudRepo.RecordLoginFailure(ctx, ev.UserID)
	if err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}

	if attempts < s.rules.LoginLimit {
		return nil
	}

	s.raise(ctx, ev.UserID, domain.AlertFailedLogins, fmt.Sprintf(
		"%d consecutive failed login attempts", attempts,
	))

	if err = s.fraudRepo.ResetLoginFailures(ctx, ev.UserID); err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}

	return nil
}

// CooldownRemaining - сколько осталось до конца окна после последнего алерта о серии заказов.
func (s *FraudService) CooldownRemaining(ctx context.Context, userID string) (time.Duration, error) {
	alert, err := s.fraudRepo.LatestByUserAndType(ctx, userID, domain.AlertHighValueBurst)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get latest burst alert: %w", err)
	}

	elapsed := s.now().Sub(alert.CreatedAt)
	remaining := s.rules.Window - elapsed
	if remaining < 0 {
		return 0, nil
	}

	return remaining.Truncate(time.Second), nil
}

func (s *FraudService) ListAlerts(ctx context.Context, status *domain.AlertStatus) ([]*domain.FraudAlert, error) {
	return s.fraudRepo.List(ctx, status)
}

func (s *FraudService) ReviewAlert(ctx context.Context, id string, status domain.AlertStatus) error {
	if status != domain.AlertStatusReviewed && status != domain.AlertStatusResolved {
		return fmt.Errorf("%w: status must be reviewed or resolved", domain.ErrValidation)
	}

	if err := s.fraudRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update alert: %w", err)
	}

	s.logger.Info("fraud alert reviewed",
		logger.String("alert_id", id),
		logger.String("status", string(status)),
	)

	return nil
}

// raise сохраняет алерт. Ошибки только логируются: платежный поток не должен падать из-за алертов.
func (s *FraudService) raise(ctx context.Context, userID string, alertType domain.AlertType, description string) {
	alert := &domain.FraudAlert{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        alertType,
		Description: description,
		Status:      domain.AlertStatusPending,
		CreatedAt:   s.now(),
	}

	if err := s.fraudRepo.Create(ctx, alert); err != nil {
		s.logger.Error("failed to create fraud alert",
			logger.String("user_id", userID),
			logger.String("alert_type", string(alertType)),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Warn("fraud alert raised",
		logger.String("alert_id", alert.ID),
		logger.String("user_id", userID),
		logger.String("alert_type", string(alertType)),
	)

	go s.notifier.NotifyFraudAlert(context.WithoutCancel(ctx), alert)
}
