package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return &dbpg.DB{Master: sqlDB}, mock
}

// Одна попытка: ошибки в тестах не должны ждать задержек ретрая.
var noRetry = retry.Strategy{Attempts: 1}

func newMockPaymentRepo(t *testing.T) (*PaymentRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)
	repo.strategy = noRetry
	return repo, mock
}

func expectLockPayment(mock sqlmock.Sqlmock, status domain.PaymentStatus, orderStatus domain.OrderStatus, kind domain.CancelKind) {
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE OF p, o")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "order_id", "order_status", "cancel_kind"}).
			AddRow(string(status), "o1", string(orderStatus), string(kind)))
}

var stripeCapture = domain.Capture{Provider: domain.ProviderStripe, Reference: "cs_1", ProviderTxnID: "pi_1"}

func TestPaymentRepository_MarkPaid_ClaimsSlotAndHoldsEscrow(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	expectLockPayment(mock, domain.PaymentStatusPending, domain.OrderStatusPendingPayment, "")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_slots")).
		WithArgs("o1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WithArgs("p1", domain.PaymentStatusPaid, domain.EscrowHeld, "pi_1", domain.ProviderStripe, "cs_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $2, cancel_kind = NULL")).
		WithArgs("o1", domain.OrderStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := repo.MarkPaid(context.Background(), "p1", stripeCapture)

	require.NoError(t, err)
	assert.True(t, applied)
}

func TestPaymentRepository_MarkPaid_AlreadyPaidIsNoop(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	expectLockPayment(mock, domain.PaymentStatusPaid, domain.OrderStatusPending, "")
	mock.ExpectRollback()

	applied, err := repo.MarkPaid(context.Background(), "p1", stripeCapture)

	require.NoError(t, err)
	assert.False(t, applied)
}

func TestPaymentRepository_MarkPaid_SlotTaken(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	expectLockPayment(mock, domain.PaymentStatusPending, domain.OrderStatusPendingPayment, "")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_slots")).
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "booking_slots_pkey"})
	mock.ExpectRollback()

	applied, err := repo.MarkPaid(context.Background(), "p1", stripeCapture)

	assert.ErrorIs(t, err, domain.ErrBookingTaken)
	assert.False(t, applied)
}

func TestPaymentRepository_MarkPaid_OrderState(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.PaymentStatus
		orderStatus domain.OrderStatus
		kind        domain.CancelKind
		wantErr     error
	}{
		{name: "refunded payment", status: domain.PaymentStatusRefunded, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelBuyer, wantErr: domain.ErrPaymentConflict},
		{name: "cancelled by buyer", status: domain.PaymentStatusFailed, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelBuyer, wantErr: domain.ErrInvalidTransition},
		{name: "cancelled by admin", status: domain.PaymentStatusFailed, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelAdmin, wantErr: domain.ErrInvalidTransition},
		{name: "slot lost earlier", status: domain.PaymentStatusFailed, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelUnbookable, wantErr: domain.ErrInvalidTransition},
		{name: "completed order", status: domain.PaymentStatusPending, orderStatus: domain.OrderStatusCompleted, wantErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockPaymentRepo(t)

			mock.ExpectBegin()
			expectLockPayment(mock, tt.status, tt.orderStatus, tt.kind)
			mock.ExpectRollback()

			_, err := repo.MarkPaid(context.Background(), "p1", stripeCapture)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentRepository_MarkPaid_FailedPaymentOnExpiredOrder(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	expectLockPayment(mock, domain.PaymentStatusFailed, domain.OrderStatusCancelled, domain.CancelExpired)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_slots")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs("o1", domain.OrderStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := repo.MarkPaid(context.Background(), "p1", stripeCapture)

	require.NoError(t, err)
	assert.True(t, applied)
}

func TestPaymentRepository_MarkFailed_ClosedPaymentIsNoop(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	expectLockPayment(mock, domain.PaymentStatusFailed, domain.OrderStatusCancelled, domain.CancelPaymentFailed)
	mock.ExpectRollback()

	applied, err := repo.MarkFailed(context.Background(), "p1", domain.OrderStatusCancelled)

	require.NoError(t, err)
	assert.False(t, applied)
}

func TestPaymentRepository_MarkFailed_RecordsCancelKind(t *testing.T) {
	tests := []struct {
		name   string
		target domain.OrderStatus
		kind   sql.NullString
	}{
		{name: "declined", target: domain.OrderStatusCancelled, kind: sql.NullString{String: string(domain.CancelPaymentFailed), Valid: true}},
		{name: "retryable", target: domain.OrderStatusPendingPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockPaymentRepo(t)

			mock.ExpectBegin()
			expectLockPayment(mock, domain.PaymentStatusPending, domain.OrderStatusPendingPayment, "")
			mock.ExpectExec(regexp.QuoteMeta("UPDATE payments SET status")).
				WithArgs("p1", domain.PaymentStatusFailed, domain.EscrowNone).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $2, cancel_kind = $4")).
				WithArgs("o1", tt.target, domain.OrderStatusPendingPayment, tt.kind).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			applied, err := repo.MarkFailed(context.Background(), "p1", tt.target)

			require.NoError(t, err)
			assert.True(t, applied)
		})
	}
}

func TestPaymentRepository_MarkRefundedUnbookable(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("RETURNING order_id")).
		WithArgs("p1", domain.PaymentStatusRefunded, domain.EscrowNone, "pi_1", domain.ProviderStripe, "cs_1", "slot taken", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow("o1"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $2, cancel_kind = $3")).
		WithArgs("o1", domain.OrderStatusCancelled, domain.CancelUnbookable, "slot taken", domain.OrderStatusPendingPayment, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.MarkRefundedUnbookable(context.Background(), "p1", stripeCapture, "slot taken"))
}

func TestPaymentRepository_MarkRefundedUnbookable_AlreadyClosed(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("RETURNING order_id")).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}))
	mock.ExpectRollback()

	err := repo.MarkRefundedUnbookable(context.Background(), "p1", stripeCapture, "slot taken")

	assert.ErrorIs(t, err, domain.ErrPaymentConflict)
}

func TestPaymentRepository_ResetForRetry(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.PaymentStatus
		orderStatus domain.OrderStatus
		kind        domain.CancelKind
		wantErr     error
	}{
		{name: "open payment", status: domain.PaymentStatusPending, orderStatus: domain.OrderStatusPendingPayment},
		{name: "declined by provider", status: domain.PaymentStatusFailed, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelPaymentFailed},
		{name: "expired", status: domain.PaymentStatusFailed, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelExpired},
		{name: "cancelled by buyer", status: domain.PaymentStatusFailed, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelBuyer, wantErr: domain.ErrInvalidTransition},
		{name: "cancelled by admin", status: domain.PaymentStatusFailed, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelAdmin, wantErr: domain.ErrInvalidTransition},
		{name: "already paid", status: domain.PaymentStatusPaid, orderStatus: domain.OrderStatusPending, wantErr: domain.ErrAlreadyPaid},
		{name: "refunded", status: domain.PaymentStatusRefunded, orderStatus: domain.OrderStatusCancelled, kind: domain.CancelUnbookable, wantErr: domain.ErrPaymentConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockPaymentRepo(t)

			mock.ExpectBegin()
			expectLockPayment(mock, tt.status, tt.orderStatus, tt.kind)
			if tt.wantErr == nil {
				mock.ExpectExec(regexp.QuoteMeta("payment_reference = NULL")).
					WithArgs("p1", domain.PaymentStatusPending, domain.EscrowNone, domain.ProviderPayPal).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $2, cancel_kind = NULL")).
					WithArgs("o1", domain.OrderStatusPendingPayment).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			err := repo.ResetForRetry(context.Background(), "p1", domain.ProviderPayPal)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPaymentRepository_AttachReference_RecordsAttempt(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET provider = $2, payment_reference = $3")).
		WithArgs("p1", domain.ProviderStripe, "cs_2", domain.PaymentStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_attempts")).
		WithArgs(domain.ProviderStripe, "cs_2", "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.AttachReference(context.Background(), "p1", domain.ProviderStripe, "cs_2"))
}

func TestPaymentRepository_AttachReference_ClosedPayment(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET provider = $2, payment_reference = $3")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AttachReference(context.Background(), "p1", domain.ProviderStripe, "cs_2")

	assert.ErrorIs(t, err, domain.ErrPaymentConflict)
}

func paymentRow(status domain.PaymentStatus, ref string) *sqlmock.Rows {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "order_id", "provider", "amount", "currency", "status", "escrow_status",
		"payment_reference", "provider_txn_id", "refund_reason", "refunded_at", "created_at", "updated_at",
	}).AddRow("p1", "o1", domain.ProviderStripe, "150.00", "SGD", string(status), string(domain.EscrowNone),
		ref, "", "", nil, now, now)
}

func TestPaymentRepository_GetByReference_LooksUpAttempts(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	// Платеж уже перешел на cs_2, но cs_1 все еще находит его
	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_attempts WHERE provider = $1 AND reference = $2")).
		WithArgs(domain.ProviderStripe, "cs_1").
		WillReturnRows(paymentRow(domain.PaymentStatusPending, "cs_2"))

	p, err := repo.GetByReference(context.Background(), domain.ProviderStripe, "cs_1")

	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "cs_2", p.PaymentReference)
	assert.Equal(t, "150.00", p.Amount.StringFixed(2))
	assert.Nil(t, p.RefundedAt)
}

func TestPaymentRepository_GetByReference_NotFound(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_attempts")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByReference(context.Background(), domain.ProviderStripe, "cs_x")

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentRepository_FlagDuplicateCapture(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("refund_requested_at IS NULL")).
		WithArgs(domain.ProviderStripe, "cs_1", "pi_dup").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("refund_requested_at IS NULL")).
		WithArgs(domain.ProviderStripe, "cs_1", "pi_dup").
		WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := repo.FlagDuplicateCapture(context.Background(), domain.ProviderStripe, "cs_1", "pi_dup")
	require.NoError(t, err)
	second, err := repo.FlagDuplicateCapture(context.Background(), domain.ProviderStripe, "cs_1", "pi_dup")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestPaymentRepository_ExpireStale(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WITH expired AS")).
		WithArgs(
			domain.PaymentStatusFailed, domain.EscrowNone, sqlmock.AnyArg(), domain.OrderStatusPendingPayment,
			float64(1800), domain.OrderStatusCancelled, domain.CancelExpired,
		).
		WillReturnRows(paymentRow(domain.PaymentStatusFailed, "cs_1"))

	expired, err := repo.ExpireStale(context.Background(), 30*time.Minute)

	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, domain.PaymentStatusFailed, expired[0].Status)
}
