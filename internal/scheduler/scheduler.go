package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type paymentExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Payment, error)
}

// sessionLifetimes - сколько у провайдера живет сессия оплаты. 0 - до явной отмены.
// Платеж, истекший у нас раньше сессии, провайдер еще может провести: такой успех
// применяется при Resolve или PollQR, а заказ после отмены по expired открывается заново.
var sessionLifetimes = map[string]time.Duration{
	domain.ProviderStripe:    24 * time.Hour,
	domain.ProviderPayPal:    3 * time.Hour,
	domain.ProviderAirwallex: 0,
	domain.ProviderNetsQR:    5 * time.Minute,
}

// Scheduler периодически закрывает платежи, зависшие в pending дольше TTL.
type Scheduler struct {
	settlementService paymentExpirer
	interval          time.Duration
	pendingTTL        time.Duration
	logger            logger.Logger
}

func New(
	settlementService paymentExpirer,
	interval time.Duration,
	pendingTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		settlementService: settlementService,
		interval:          interval,
		pendingTTL:        pendingTTL,
		logger:            logger,
	}
}

// Start делает первый проход сразу: за время простоя могли накопиться зависшие платежи.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("pending_ttl", s.pendingTTL),
	)
	for provider, lifetime := range sessionLifetimes {
		if s.outlivesTTL(provider) {
			s.logger.Info("provider session outlives pending ttl, late captures settle on resolve",
				logger.String("provider", provider),
				logger.Duration("session_lifetime", lifetime),
			)
		}
	}

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	// Проход не должен наложиться на следующий тик
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	expired, err := s.settlementService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale payments",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, p := range expired {
		fields := []any{
			logger.String("payment_id", p.ID),
			logger.String("order_id", p.OrderID),
			logger.String("provider", p.Provider),
		}
		if s.outlivesTTL(p.Provider) {
			s.logger.Warn("payment expired while provider session may still be open", fields...)
			continue
		}
		s.logger.Info("payment expired", fields...)
	}
}

// outlivesTTL - сессия провайдера может пережить истечение платежа у нас.
func (s *Scheduler) outlivesTTL(provider string) bool {
	lifetime, ok := sessionLifetimes[provider]
	if !ok {
		return false
	}
	return lifetime == 0 || lifetime > s.pendingTTL
}
