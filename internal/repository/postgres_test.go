package repository

import (
	"context"
	"database/sql"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
)

const checkViolation = "23514"

type pgFixture struct {
	db       *dbpg.DB
	orders   *OrderRepository
	payments *PaymentRepository
}

func startPostgres(t *testing.T) *pgFixture {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres tests need docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("escrowpay"),
		postgres.WithUsername("escrowpay"),
		postgres.WithPassword("escrowpay"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, ctr.Terminate(context.Background()))
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrateDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer migrateDB.Close()
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(migrateDB, "../../migrations"))

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return &pgFixture{
		db:       db,
		orders:   NewOrderRepo(db),
		payments: NewPaymentRepo(db),
	}
}

// seedOrder создает заказ из одной позиции на слот (serviceID, date) с открытым платежом.
func (f *pgFixture) seedOrder(t *testing.T, serviceID string, date time.Time) (*domain.Order, *domain.Payment) {
	t.Helper()

	now := time.Now().UTC()
	o := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		Total:     decimal.NewFromInt(120),
		Status:    domain.OrderStatusPendingPayment,
		CreatedAt: now,
		UpdatedAt: now,
		Items: []domain.OrderItem{{
			ID:          uuid.NewString(),
			ServiceID:   serviceID,
			SellerID:    uuid.NewString(),
			Title:       "Deep cleaning",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(120),
			BookingDate: date,
		}},
	}
	p := &domain.Payment{
		ID:           uuid.NewString(),
		OrderID:      o.ID,
		Provider:     domain.ProviderStripe,
		Amount:       o.Total,
		Currency:     "SGD",
		Status:       domain.PaymentStatusPending,
		EscrowStatus: domain.EscrowNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.orders.CreateWithPayment(context.Background(), o, p))

	return o, p
}

func (f *pgFixture) count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, f.db.Master.QueryRowContext(context.Background(), query, args...).Scan(&n))
	return n
}

func TestPostgres(t *testing.T) {
	f := startPostgres(t)
	date := time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)

	t.Run("concurrent captures on one slot", func(t *testing.T) {
		ctx := context.Background()
		serviceID := uuid.NewString()
		_, p1 := f.seedOrder(t, serviceID, date)
		_, p2 := f.seedOrder(t, serviceID, date)

		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			ok    [2]bool
			errs  [2]error
		)
		for i, p := range []*domain.Payment{p1, p2} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				ok[i], errs[i] = f.payments.MarkPaid(ctx, p.ID, domain.Capture{ProviderTxnID: "pi_" + p.ID})
			}()
		}
		close(start)
		wg.Wait()

		winners := 0
		for i := range ok {
			if ok[i] {
				winners++
				require.NoError(t, errs[i])
				continue
			}
			assert.ErrorIs(t, errs[i], domain.ErrBookingTaken)
		}
		assert.Equal(t, 1, winners)
		assert.Equal(t, 1, f.count(t, `SELECT count(*) FROM booking_slots WHERE service_id = $1`, serviceID))
	})

	t.Run("repeated capture is a no-op", func(t *testing.T) {
		ctx := context.Background()
		o, p := f.seedOrder(t, uuid.NewString(), date)

		first, err := f.payments.MarkPaid(ctx, p.ID, domain.Capture{ProviderTxnID: "pi_1"})
		require.NoError(t, err)
		second, err := f.payments.MarkPaid(ctx, p.ID, domain.Capture{ProviderTxnID: "pi_2"})
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)

		got, err := f.payments.GetByOrderID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "pi_1", got.ProviderTxnID)
		assert.Equal(t, domain.EscrowHeld, got.EscrowStatus)
	})

	t.Run("cancel refunds held escrow and frees the slot", func(t *testing.T) {
		ctx := context.Background()
		serviceID := uuid.NewString()
		o, p := f.seedOrder(t, serviceID, date)
		_, next := f.seedOrder(t, serviceID, date)

		_, err := f.payments.MarkPaid(ctx, p.ID, domain.Capture{ProviderTxnID: "pi_1"})
		require.NoError(t, err)

		refunded, err := f.orders.Cancel(ctx, o.ID, domain.CancelBuyer, "plans changed")
		require.NoError(t, err)
		assert.True(t, refunded)

		got, err := f.payments.GetByOrderID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, got.Status)
		assert.Equal(t, domain.EscrowRefunded, got.EscrowStatus)

		applied, err := f.payments.MarkPaid(ctx, next.ID, domain.Capture{ProviderTxnID: "pi_2"})
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("buyer cancel is final", func(t *testing.T) {
		ctx := context.Background()
		o, p := f.seedOrder(t, uuid.NewString(), date)

		_, err := f.orders.Cancel(ctx, o.ID, domain.CancelBuyer, "")
		require.NoError(t, err)

		got, err := f.payments.GetByOrderID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, got.Status)

		assert.ErrorIs(t, f.payments.ResetForRetry(ctx, p.ID, domain.ProviderPayPal), domain.ErrInvalidTransition)
		_, err = f.payments.MarkPaid(ctx, p.ID, domain.Capture{ProviderTxnID: "pi_late"})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		// Поздний успех уходит в возврат, отмена покупателем остается
		require.NoError(t, f.payments.MarkRefundedUnbookable(ctx, p.ID, domain.Capture{ProviderTxnID: "pi_late"}, "order cancelled"))
		order, err := f.orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.CancelBuyer, order.CancelKind)
	})

	t.Run("expired order settles on late capture", func(t *testing.T) {
		ctx := context.Background()
		o, p := f.seedOrder(t, uuid.NewString(), date)

		expired, err := f.payments.ExpireStale(ctx, 0)
		require.NoError(t, err)
		ids := make([]string, 0, len(expired))
		for _, e := range expired {
			ids = append(ids, e.ID)
		}
		require.Contains(t, ids, p.ID)

		order, err := f.orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, domain.CancelExpired, order.CancelKind)

		applied, err := f.payments.MarkPaid(ctx, p.ID, domain.Capture{ProviderTxnID: "pi_late"})
		require.NoError(t, err)
		assert.True(t, applied)

		order, err = f.orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Empty(t, order.CancelKind)
	})

	t.Run("superseded reference still resolves", func(t *testing.T) {
		ctx := context.Background()
		_, p := f.seedOrder(t, uuid.NewString(), date)
		first := "cs_" + uuid.NewString()
		second := "cs_" + uuid.NewString()

		require.NoError(t, f.payments.AttachReference(ctx, p.ID, domain.ProviderStripe, first))
		require.NoError(t, f.payments.ResetForRetry(ctx, p.ID, domain.ProviderStripe))
		require.NoError(t, f.payments.AttachReference(ctx, p.ID, domain.ProviderStripe, second))

		got, err := f.payments.GetByReference(ctx, domain.ProviderStripe, first)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, second, got.PaymentReference)

		flagged, err := f.payments.FlagDuplicateCapture(ctx, domain.ProviderStripe, first, "pi_dup")
		require.NoError(t, err)
		assert.True(t, flagged)
		flagged, err = f.payments.FlagDuplicateCapture(ctx, domain.ProviderStripe, first, "pi_dup")
		require.NoError(t, err)
		assert.False(t, flagged)
	})

	t.Run("held escrow requires a paid payment", func(t *testing.T) {
		_, p := f.seedOrder(t, uuid.NewString(), date)

		_, err := f.db.Master.ExecContext(context.Background(),
			`UPDATE payments SET escrow_status = 'held' WHERE id = $1`, p.ID)

		var pgErr *pq.Error
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, checkViolation, string(pgErr.Code))
		assert.Equal(t, "payments_held_requires_paid", pgErr.Constraint)
	})

	t.Run("random transitions keep escrow consistent", func(t *testing.T) {
		ctx := context.Background()
		rnd := rand.New(rand.NewPCG(7, 42))
		services := []string{uuid.NewString(), uuid.NewString()}

		type pair struct {
			order   *domain.Order
			payment *domain.Payment
		}
		var pairs []pair
		for i := 0; i < 6; i++ {
			o, p := f.seedOrder(t, services[i%len(services)], date)
			pairs = append(pairs, pair{o, p})
		}

		expected := []error{
			domain.ErrBookingTaken, domain.ErrInvalidTransition, domain.ErrPaymentConflict,
			domain.ErrAlreadyPaid, domain.ErrPaymentRequired,
		}
		ops := []func(pair) error{
			func(x pair) error {
				_, err := f.payments.MarkPaid(ctx, x.payment.ID, domain.Capture{ProviderTxnID: uuid.NewString()})
				return err
			},
			func(x pair) error {
				_, err := f.payments.MarkFailed(ctx, x.payment.ID, domain.OrderStatusCancelled)
				return err
			},
			func(x pair) error {
				_, err := f.payments.MarkFailed(ctx, x.payment.ID, domain.OrderStatusPendingPayment)
				return err
			},
			func(x pair) error {
				return f.payments.ResetForRetry(ctx, x.payment.ID, domain.ProviderStripe)
			},
			func(x pair) error {
				return f.payments.MarkRefundedUnbookable(ctx, x.payment.ID, domain.Capture{ProviderTxnID: uuid.NewString()}, "slot taken")
			},
			func(x pair) error {
				_, err := f.orders.Cancel(ctx, x.order.ID, domain.CancelBuyer, "")
				return err
			},
			func(x pair) error {
				_, err := f.orders.Cancel(ctx, x.order.ID, domain.CancelAdmin, "")
				return err
			},
			func(x pair) error { return f.orders.Accept(ctx, x.order.ID) },
			func(x pair) error {
				_, err := f.orders.Complete(ctx, x.order.ID)
				return err
			},
			func(pair) error {
				_, err := f.payments.ExpireStale(ctx, 0)
				return err
			},
		}

		for step := 0; step < 300; step++ {
			x := pairs[rnd.IntN(len(pairs))]
			op := rnd.IntN(len(ops))

			if err := ops[op](x); err != nil {
				known := false
				for _, e := range expected {
					known = known || errors.Is(err, e)
				}
				require.Truef(t, known, "step %d op %d: %v", step, op, err)
			}

			require.Zero(t, f.count(t,
				`SELECT count(*) FROM payments WHERE escrow_status = 'held' AND status <> 'paid'`), "step %d", step)
			require.Zero(t, f.count(t,
				`SELECT count(*) FROM payments p JOIN orders o ON o.id = p.order_id
				 WHERE p.escrow_status = 'held' AND o.status NOT IN ('pending', 'accepted')`), "step %d", step)
			require.Zero(t, f.count(t,
				`SELECT count(*) FROM booking_slots b
				 JOIN orders o ON o.id = b.order_id
				 JOIN payments p ON p.order_id = o.id
				 WHERE p.status <> 'paid' OR o.status = 'cancelled'`), "step %d", step)
		}
	})
}
