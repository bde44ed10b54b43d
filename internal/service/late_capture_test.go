package service

import (
	"context"
	"testing"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func resolveByRef(svc *SettlementService, ref string) (*domain.SettlementResult, error) {
	return svc.Resolve(context.Background(), owner, domain.ResolveInput{Provider: domain.ProviderStripe, Reference: ref})
}

func expectNoSession(d settlementDeps) {
	d.sessions.EXPECT().Get(mock.Anything, "u1", domain.ProviderStripe).Return(nil, domain.ErrSessionNotFound)
}

// --- Late captures ---

func TestSettlementService_Resolve_FailedPaymentLateSuccessSettles(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	order := testOrder(domain.OrderStatusCancelled)
	order.CancelKind = domain.CancelExpired
	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusFailed)

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, order)
	d.provider.EXPECT().Resolve(mock.Anything, domain.Handle{Provider: domain.ProviderStripe, OrderID: "o1", Reference: "ref-1"}).
		Return(domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: "pi_late"}, nil)
	d.payments.EXPECT().MarkPaid(mock.Anything, "p1", capture(domain.ProviderStripe, "pi_late")).Return(true, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.EventPaymentPaid, mock.MatchedBy(func(ev domain.PaymentEvent) bool {
		return ev.ProviderTxnID == "pi_late" && ev.Provider == domain.ProviderStripe
	})).Return(nil)
	d.fraud.EXPECT().OnPaymentPaid(mock.Anything, order).Return()
	d.sessions.EXPECT().Delete(mock.Anything, "u1", domain.ProviderStripe, "ref-1").Return(nil)
	d.payments.EXPECT().GetByOrderID(mock.Anything, "o1").Return(testPayment(domain.ProviderStripe, domain.PaymentStatusPaid), nil)

	res, err := resolveByRef(svc, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome.Status)
	assert.Equal(t, domain.PaymentStatusPaid, res.Payment.Status)
}

func TestSettlementService_Resolve_FailedPaymentOnCancelledOrderRefunds(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	order := testOrder(domain.OrderStatusCancelled)
	order.CancelKind = domain.CancelBuyer
	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusFailed)

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, order)
	d.provider.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: "pi_late"}, nil)
	d.payments.EXPECT().MarkPaid(mock.Anything, "p1", capture(domain.ProviderStripe, "pi_late")).
		Return(false, domain.ErrInvalidTransition)
	d.payments.EXPECT().
		MarkRefundedUnbookable(mock.Anything, "p1", capture(domain.ProviderStripe, "pi_late"), "order was no longer awaiting payment").
		Return(nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.EventPaymentRefundRequested, mock.MatchedBy(func(ev domain.PaymentEvent) bool {
		return ev.ProviderTxnID == "pi_late" && ev.PaymentID == "p1"
	})).Return(nil)

	_, err := resolveByRef(svc, "ref-1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSettlementService_Resolve_FailedPaymentStillDeclined(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusFailed)

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, testOrder(domain.OrderStatusCancelled))
	d.provider.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(domain.Outcome{Status: domain.OutcomeFailure, Reason: "expired"}, nil)
	// Платеж уже failed: повторного события нет
	d.payments.EXPECT().MarkFailed(mock.Anything, "p1", domain.OrderStatusCancelled).Return(false, nil)
	d.sessions.EXPECT().Delete(mock.Anything, "u1", domain.ProviderStripe, "ref-1").Return(nil)
	d.payments.EXPECT().GetByOrderID(mock.Anything, "o1").Return(payment, nil)

	res, err := resolveByRef(svc, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome.Status)
}

func TestSettlementService_PollQR_FailedPaymentLateSuccess(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderNetsQR, pollOptions())

	expectPollLookup(d, testPayment(domain.ProviderNetsQR, domain.PaymentStatusFailed))
	d.provider.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: "nets-late"}, nil).Once()
	d.payments.EXPECT().MarkPaid(mock.Anything, "p1", capture(domain.ProviderNetsQR, "nets-late")).Return(true, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.EventPaymentPaid, mock.Anything).Return(nil)
	d.fraud.EXPECT().OnPaymentPaid(mock.Anything, mock.Anything).Return()
	d.sessions.EXPECT().Delete(mock.Anything, "u1", domain.ProviderNetsQR, "ref-1").Return(nil)

	var log eventLog
	outcome, err := svc.PollQR(context.Background(), owner, "ref-1", log.emit)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, outcome.Status)
	require.Len(t, log.events, 1)
}

// --- Superseded attempts ---

func TestSettlementService_Resolve_SupersededAttemptLateSuccessSettles(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	order := testOrder(domain.OrderStatusPendingPayment)
	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusPending)
	payment.PaymentReference = "ref-2"

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, order)
	d.provider.EXPECT().Resolve(mock.Anything, domain.Handle{Provider: domain.ProviderStripe, OrderID: "o1", Reference: "ref-1"}).
		Return(domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: "pi_1"}, nil)
	// Списание фиксируется по той попытке, которая его принесла
	d.payments.EXPECT().MarkPaid(mock.Anything, "p1", capture(domain.ProviderStripe, "pi_1")).Return(true, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.EventPaymentPaid, mock.Anything).Return(nil)
	d.fraud.EXPECT().OnPaymentPaid(mock.Anything, order).Return()
	d.sessions.EXPECT().Delete(mock.Anything, "u1", domain.ProviderStripe, "ref-1").Return(nil)
	d.payments.EXPECT().GetByOrderID(mock.Anything, "o1").Return(testPayment(domain.ProviderStripe, domain.PaymentStatusPaid), nil)

	res, err := resolveByRef(svc, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome.Status)
}

func TestSettlementService_Resolve_SupersededAttemptFailureKeepsCurrentAttempt(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusPending)
	payment.PaymentReference = "ref-2"

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, testOrder(domain.OrderStatusPendingPayment))
	d.provider.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(domain.Outcome{Status: domain.OutcomeFailure, Reason: "session expired"}, nil)
	// MarkFailed не вызывается: платеж ждет ref-2
	d.sessions.EXPECT().Delete(mock.Anything, "u1", domain.ProviderStripe, "ref-1").Return(nil)
	d.payments.EXPECT().GetByOrderID(mock.Anything, "o1").Return(payment, nil)

	res, err := resolveByRef(svc, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, res.Payment.Status)
}

func TestSettlementService_Resolve_SupersededAttemptDuplicateCapture(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusPaid)
	payment.PaymentReference = "ref-2"
	payment.ProviderTxnID = "pi_2"

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, testOrder(domain.OrderStatusPending))
	d.provider.EXPECT().Resolve(mock.Anything, domain.Handle{Provider: domain.ProviderStripe, OrderID: "o1", Reference: "ref-1"}).
		Return(domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: "pi_1"}, nil)
	d.payments.EXPECT().FlagDuplicateCapture(mock.Anything, domain.ProviderStripe, "ref-1", "pi_1").Return(true, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.EventPaymentRefundRequested, mock.MatchedBy(func(ev domain.PaymentEvent) bool {
		return ev.ProviderTxnID == "pi_1" && ev.Reason == "duplicate capture on superseded attempt"
	})).Return(nil)

	res, err := resolveByRef(svc, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome.Status)
	assert.Equal(t, "pi_2", res.Outcome.ProviderTxnID)
}

func TestSettlementService_Resolve_SupersededAttemptAlreadyFlagged(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusPaid)
	payment.PaymentReference = "ref-2"
	payment.ProviderTxnID = "pi_2"

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, testOrder(domain.OrderStatusPending))
	d.provider.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(domain.Outcome{Status: domain.OutcomeSuccess, ProviderTxnID: "pi_1"}, nil)
	d.payments.EXPECT().FlagDuplicateCapture(mock.Anything, domain.ProviderStripe, "ref-1", "pi_1").Return(false, nil)

	_, err := resolveByRef(svc, "ref-1")

	require.NoError(t, err)
}

func TestSettlementService_Resolve_SupersededAttemptNotPaid(t *testing.T) {
	svc, d := newSettlementService(t, domain.ProviderStripe, DefaultSettlementOptions())

	payment := testPayment(domain.ProviderStripe, domain.PaymentStatusRefunded)
	payment.PaymentReference = "ref-2"

	expectNoSession(d)
	expectResolveLookup(d, domain.ProviderStripe, payment, testOrder(domain.OrderStatusCancelled))
	d.provider.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.Outcome{Status: domain.OutcomePending}, nil)

	res, err := resolveByRef(svc, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome.Status)
}
