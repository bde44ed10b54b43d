package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fraudNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type fraudDeps struct {
	fraud    *mocks.MockFraudRepo
	orders   *mocks.MockOrderRepo
	notifier *mocks.MockAlertNotifier
}

func newFraudService(t *testing.T) (*FraudService, fraudDeps) {
	t.Helper()
	d := fraudDeps{
		fraud:    mocks.NewMockFraudRepo(t),
		orders:   mocks.NewMockOrderRepo(t),
		notifier: mocks.NewMockAlertNotifier(t),
	}
	svc := NewFraudService(d.fraud, d.orders, d.notifier, DefaultFraudRules(), newTestLogger(t))
	svc.now = func() time.Time { return fraudNow }
	return svc, d
}

// expectNotify ждет асинхронное уведомление, иначе проверка моков в Cleanup может опередить горутину.
func expectNotify(t *testing.T, n *mocks.MockAlertNotifier, alertType domain.AlertType) func() {
	t.Helper()
	done := make(chan struct{})
	n.EXPECT().
		NotifyFraudAlert(mock.Anything, mock.MatchedBy(func(a *domain.FraudAlert) bool { return a.Type == alertType })).
		Run(func(context.Context, *domain.FraudAlert) { close(done) }).
		Return()

	return func() {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("fraud alert was not sent")
		}
	}
}

func TestFraudService_OnOrderCreated_SingleHighValue(t *testing.T) {
	svc, d := newFraudService(t)

	var saved *domain.FraudAlert
	d.fraud.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.FraudAlert) { saved = a }).
		Return(nil)
	wait := expectNotify(t, d.notifier, domain.AlertHighValue)

	svc.OnOrderCreated(context.Background(), &domain.Order{ID: "o1", UserID: "u1", Total: decimal.RequireFromString("2000.01")})
	wait()

	require.NotNil(t, saved)
	assert.Equal(t, domain.AlertHighValue, saved.Type)
	assert.Equal(t, domain.AlertStatusPending, saved.Status)
	assert.Contains(t, saved.Description, "o1")
}

func TestFraudService_OnOrderCreated_ThresholdIsStrict(t *testing.T) {
	svc, _ := newFraudService(t)

	svc.OnOrderCreated(context.Background(), &domain.Order{ID: "o1", UserID: "u1", Total: decimal.RequireFromString("2000")})
}

func TestFraudService_OnOrderCreated_StoreErrorSwallowed(t *testing.T) {
	svc, d := newFraudService(t)

	d.fraud.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	assert.NotPanics(t, func() {
		svc.OnOrderCreated(context.Background(), &domain.Order{ID: "o1", UserID: "u1", Total: decimal.RequireFromString("5000")})
	})
}

func TestFraudService_OnPaymentPaid_Burst(t *testing.T) {
	svc, d := newFraudService(t)

	d.orders.EXPECT().
		CountHighValueSince(mock.Anything, "u1", decimal.NewFromInt(2000), fraudNow.Add(-5*time.Minute)).
		Return(3, "o3", nil)
	d.fraud.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.FraudAlert) bool {
		return a.Type == domain.AlertHighValueBurst && a.UserID == "u1"
	})).Return(nil)
	wait := expectNotify(t, d.notifier, domain.AlertHighValueBurst)

	svc.OnPaymentPaid(context.Background(), &domain.Order{ID: "o3", UserID: "u1"})
	wait()
}

func TestFraudService_OnPaymentPaid_BelowCount(t *testing.T) {
	svc, d := newFraudService(t)

	d.orders.EXPECT().CountHighValueSince(mock.Anything, "u1", mock.Anything, mock.Anything).Return(2, "o2", nil)

	svc.OnPaymentPaid(context.Background(), &domain.Order{ID: "o2", UserID: "u1"})
}

func TestFraudService_OnPaymentPaid_CountErrorSwallowed(t *testing.T) {
	svc, d := newFraudService(t)

	d.orders.EXPECT().CountHighValueSince(mock.Anything, "u1", mock.Anything, mock.Anything).Return(0, "", errors.New("db error"))

	assert.NotPanics(t, func() {
		svc.OnPaymentPaid(context.Background(), &domain.Order{ID: "o1", UserID: "u1"})
	})
}

func TestFraudService_OnLoginEvent_BelowLimit(t *testing.T) {
	svc, d := newFraudService(t)

	d.fraud.EXPECT().RecordLoginFailure(mock.Anything, "u1").Return(4, nil)

	require.NoError(t, svc.OnLoginEvent(context.Background(), domain.LoginEvent{UserID: "u1"}))
}

func TestFraudService_OnLoginEvent_LimitRaisesAndResets(t *testing.T) {
	svc, d := newFraudService(t)

	d.fraud.EXPECT().RecordLoginFailure(mock.Anything, "u1").Return(5, nil)
	d.fraud.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.FraudAlert) bool {
		return a.Type == domain.AlertFailedLogins
	})).Return(nil)
	d.fraud.EXPECT().ResetLoginFailures(mock.Anything, "u1").Return(nil)
	wait := expectNotify(t, d.notifier, domain.AlertFailedLogins)

	require.NoError(t, svc.OnLoginEvent(context.Background(), domain.LoginEvent{UserID: "u1"}))
	wait()
}

func TestFraudService_OnLoginEvent_SuccessResets(t *testing.T) {
	svc, d := newFraudService(t)

	d.fraud.EXPECT().ResetLoginFailures(mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.OnLoginEvent(context.Background(), domain.LoginEvent{UserID: "u1", Succeeded: true}))
}

func TestFraudService_OnLoginEvent_MissingUser(t *testing.T) {
	svc, _ := newFraudService(t)

	err := svc.OnLoginEvent(context.Background(), domain.LoginEvent{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFraudService_OnLoginEvent_StoreError(t *testing.T) {
	svc, d := newFraudService(t)

	d.fraud.EXPECT().RecordLoginFailure(mock.Anything, "u1").Return(0, errors.New("db error"))

	err := svc.OnLoginEvent(context.Background(), domain.LoginEvent{UserID: "u1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestFraudService_CooldownRemaining(t *testing.T) {
	tests := []struct {
		name    string
		alertAt time.Time
		repoErr error
		want    time.Duration
	}{
		{name: "no burst alert", repoErr: domain.ErrAlertNotFound, want: 0},
		{name: "inside window", alertAt: fraudNow.Add(-90 * time.Second), want: 210 * time.Second},
		{name: "window passed", alertAt: fraudNow.Add(-6 * time.Minute), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newFraudService(t)

			var alert *domain.FraudAlert
			if tt.repoErr == nil {
				alert = &domain.FraudAlert{ID: "f1", Type: domain.AlertHighValueBurst, CreatedAt: tt.alertAt}
			}
			d.fraud.EXPECT().LatestByUserAndType(mock.Anything, "u1", domain.AlertHighValueBurst).Return(alert, tt.repoErr)

			got, err := svc.CooldownRemaining(context.Background(), "u1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFraudService_ReviewAlert(t *testing.T) {
	svc, d := newFraudService(t)

	err := svc.ReviewAlert(context.Background(), "f1", domain.AlertStatusPending)
	assert.ErrorIs(t, err, domain.ErrValidation)

	d.fraud.EXPECT().UpdateStatus(mock.Anything, "f1", domain.AlertStatusReviewed).Return(nil)
	require.NoError(t, svc.ReviewAlert(context.Background(), "f1", domain.AlertStatusReviewed))

	d.fraud.EXPECT().UpdateStatus(mock.Anything, "missing", domain.AlertStatusResolved).Return(domain.ErrAlertNotFound)
	err = svc.ReviewAlert(context.Background(), "missing", domain.AlertStatusResolved)
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)
}
