package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

const testTTL = 30 * time.Minute

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresStale(t *testing.T) {
	expirer := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, testTTL, log)

	expired := []*domain.Payment{
		{ID: "p1", OrderID: "o1", Provider: domain.ProviderNetsQR},
		{ID: "p2", OrderID: "o2", Provider: domain.ProviderStripe},
	}
	expirer.EXPECT().ExpireStale(mock.Anything).Return(expired, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 2)
}

func TestScheduler_Start_SweepsImmediately(t *testing.T) {
	expirer := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Hour, testTTL, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_Tick_BoundedByInterval(t *testing.T) {
	expirer := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Hour, testTTL, log)

	expirer.EXPECT().ExpireStale(mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= time.Hour
	})).Return(nil, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, testTTL, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, testTTL, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 30*time.Millisecond, testTTL, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 3)
}

func TestScheduler_OutlivesTTL(t *testing.T) {
	tests := []struct {
		name     string
		ttl      time.Duration
		provider string
		want     bool
	}{
		{name: "stripe checkout outlives default ttl", ttl: testTTL, provider: domain.ProviderStripe, want: true},
		{name: "paypal order outlives default ttl", ttl: testTTL, provider: domain.ProviderPayPal, want: true},
		{name: "airwallex intent lives until cancelled", ttl: 48 * time.Hour, provider: domain.ProviderAirwallex, want: true},
		{name: "nets qr expires first", ttl: testTTL, provider: domain.ProviderNetsQR, want: false},
		{name: "ttl longer than stripe session", ttl: 48 * time.Hour, provider: domain.ProviderStripe, want: false},
		{name: "unknown provider", ttl: testTTL, provider: "cash", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, time.Minute, tt.ttl, newTestLogger(t))
			assert.Equal(t, tt.want, s.outlivesTTL(tt.provider))
		})
	}
}
