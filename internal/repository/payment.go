package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

const paymentColumns = `id, order_id, provider, amount, currency, status, escrow_status,
	COALESCE(payment_reference, ''), COALESCE(provider_txn_id, ''), COALESCE(refund_reason, ''),
	refunded_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var (
		p          domain.Payment
		refundedAt sql.NullTime
	)
	if err := row.Scan(
		&p.ID, &p.OrderID, &p.Provider, &p.Amount, &p.Currency, &p.Status, &p.EscrowStatus,
		&p.PaymentReference, &p.ProviderTxnID, &p.RefundReason,
		&refundedAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if refundedAt.Valid {
		t := refundedAt.Time
		p.RefundedAt = &t
	}
	return &p, nil
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1`
	return r.get(ctx, query, orderID)
}

// GetByReference ищет платеж по любой его попытке у провайдера, не только по последней.
func (r *PaymentRepository) GetByReference(ctx context.Context, provider, reference string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE id = (SELECT payment_id FROM payment_attempts WHERE provider = $1 AND reference = $2)`
	return r.get(ctx, query, provider, reference)
}

func (r *PaymentRepository) get(ctx context.Context, query string, args ...any) (*domain.Payment, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

// AttachReference делает reference текущей попыткой платежа и сохраняет ее в истории попыток.
func (r *PaymentRepository) AttachReference(ctx context.Context, paymentID, provider, reference string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE payments
			 SET provider = $2, payment_reference = $3, status = $4, updated_at = now()
			 WHERE id = $1 AND status = ANY($5)`,
			paymentID, provider, reference, domain.PaymentStatusPending,
			pq.Array(domain.OpenPaymentStatuses),
		)
		if err != nil {
			return fmt.Errorf("attach payment reference: %w", err)
		}
		if err = affected(res, domain.ErrPaymentConflict); err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx,
			`INSERT INTO payment_attempts (provider, reference, payment_id)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (provider, reference) DO NOTHING`,
			provider, reference, paymentID,
		); err != nil {
			return fmt.Errorf("record payment attempt: %w", err)
		}
		return nil
	})
}

// MarkPaid переводит платеж в paid/held, заказ в pending и занимает слоты позиций.
// Успех принимается и для failed-платежа, если заказ ждет оплаты или был отменен самой системой.
// Повторный вызов для уже оплаченного платежа ничего не меняет и возвращает false.
func (r *PaymentRepository) MarkPaid(ctx context.Context, paymentID string, c domain.Capture) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lock, err := lockPayment(ctx, tx, paymentID)
	if err != nil {
		return false, err
	}
	if lock.status == domain.PaymentStatusPaid {
		return false, nil
	}
	if !slices.Contains(domain.SettleablePaymentStatuses, lock.status) {
		return false, domain.ErrPaymentConflict
	}
	if !lock.awaitsPayment() {
		return false, domain.ErrInvalidTransition
	}

	// Уникальный ключ booking_slots не даст двум оплаченным заказам занять один слот
	slotQuery := `INSERT INTO booking_slots (service_id, booking_date, order_id)
				  SELECT service_id, booking_date, order_id
				  FROM order_items
				  WHERE order_id = $1`
	if _, err = tx.ExecContext(ctx, slotQuery, lock.orderID); err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrBookingTaken
		}
		return false, fmt.Errorf("claim booking slots: %w", err)
	}

	paymentQuery := `UPDATE payments
					 SET status = $2, escrow_status = $3, provider_txn_id = $4,
					     provider = COALESCE($5, provider), payment_reference = COALESCE($6, payment_reference),
					     updated_at = now()
					 WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, paymentQuery, paymentID,
		domain.PaymentStatusPaid, domain.EscrowHeld, nullString(c.ProviderTxnID),
		nullString(c.Provider), nullString(c.Reference),
	); err != nil {
		return false, fmt.Errorf("mark payment paid: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, cancel_kind = NULL, cancel_reason = NULL, updated_at = now() WHERE id = $1`,
		lock.orderID, domain.OrderStatusPending,
	); err != nil {
		return false, fmt.Errorf("mark order pending: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	return true, nil
}

// MarkFailed переводит открытый платеж в failed, а заказ из pending_payment в orderStatus.
// Для уже закрытого платежа ничего не делает и возвращает false.
func (r *PaymentRepository) MarkFailed(ctx context.Context, paymentID string, orderStatus domain.OrderStatus) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lock, err := lockPayment(ctx, tx, paymentID)
	if err != nil {
		return false, err
	}
	if !slices.Contains(domain.OpenPaymentStatuses, lock.status) {
		return false, nil
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE payments SET status = $2, escrow_status = $3, updated_at = now() WHERE id = $1`,
		paymentID, domain.PaymentStatusFailed, domain.EscrowNone,
	); err != nil {
		return false, fmt.Errorf("mark payment failed: %w", err)
	}

	var kind sql.NullString
	if orderStatus == domain.OrderStatusCancelled {
		kind = sql.NullString{String: string(domain.CancelPaymentFailed), Valid: true}
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, cancel_kind = $4, updated_at = now() WHERE id = $1 AND status = $3`,
		lock.orderID, orderStatus, domain.OrderStatusPendingPayment, kind,
	); err != nil {
		return false, fmt.Errorf("revert order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	return true, nil
}

// MarkRefundedUnbookable фиксирует возврат денег, списанных провайдером за заказ,
// который уже нельзя оплатить: слот занят или заказ отменен.
func (r *PaymentRepository) MarkRefundedUnbookable(ctx context.Context, paymentID string, c domain.Capture, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE payments
			  SET status = $2, escrow_status = $3, provider_txn_id = $4,
			      provider = COALESCE($5, provider), payment_reference = COALESCE($6, payment_reference),
			      refund_reason = $7, refunded_at = now(), updated_at = now()
			  WHERE id = $1 AND status = ANY($8)
			  RETURNING order_id`

	var orderID string
	if err = tx.QueryRowContext(
		ctx, query, paymentID,
		domain.PaymentStatusRefunded, domain.EscrowNone, nullString(c.ProviderTxnID),
		nullString(c.Provider), nullString(c.Reference), reason,
		pq.Array(domain.SettleablePaymentStatuses),
	).Scan(&orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPaymentConflict
		}
		return fmt.Errorf("refund unbookable payment: %w", err)
	}

	// Отмену покупателем или админом не перезаписываем
	if _, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, cancel_kind = $3, cancel_reason = $4, updated_at = now()
		 WHERE id = $1 AND (status = $5 OR (status = $2 AND cancel_kind = ANY($6)))`,
		orderID, domain.OrderStatusCancelled, domain.CancelUnbookable, reason,
		domain.OrderStatusPendingPayment, pq.Array(domain.ReopenableCancelKinds),
	); err != nil {
		return fmt.Errorf("cancel unbookable order: %w", err)
	}

	return tx.Commit()
}

// FlagDuplicateCapture помечает списание по вытесненной попытке, которое надо вернуть.
// Возвращает false, если по этой попытке возврат уже запрошен.
func (r *PaymentRepository) FlagDuplicateCapture(ctx context.Context, provider, reference, providerTxnID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payment_attempts
		 SET duplicate_txn_id = $3, refund_requested_at = now()
		 WHERE provider = $1 AND reference = $2 AND refund_requested_at IS NULL`,
		provider, reference, nullString(providerTxnID),
	)
	if err != nil {
		return false, fmt.Errorf("flag duplicate capture: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("attempt rows affected: %w", err)
	}

	return rows > 0, nil
}

// ResetForRetry открывает платеж заново у выбранного провайдера. Заказ, отмененный
// покупателем или админом, заново не открывается.
func (r *PaymentRepository) ResetForRetry(ctx context.Context, paymentID, provider string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lock, err := lockPayment(ctx, tx, paymentID)
	if err != nil {
		return err
	}

	switch {
	case lock.status == domain.PaymentStatusPaid:
		return domain.ErrAlreadyPaid
	case !slices.Contains(domain.RetryablePaymentStatuses, lock.status):
		return domain.ErrPaymentConflict
	case lock.orderStatus == domain.OrderStatusPendingPayment:
	case lock.orderStatus == domain.OrderStatusCancelled &&
		lock.status == domain.PaymentStatusFailed &&
		lock.cancelKind.Reopenable():
	default:
		return domain.ErrInvalidTransition
	}

	// Прежние ссылки остаются в payment_attempts
	query := `UPDATE payments
			  SET status = $2, escrow_status = $3, provider = $4,
			      payment_reference = NULL, provider_txn_id = NULL, updated_at = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, query, paymentID,
		domain.PaymentStatusPending, domain.EscrowNone, provider,
	); err != nil {
		return fmt.Errorf("reset payment: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, cancel_kind = NULL, cancel_reason = NULL, updated_at = now() WHERE id = $1`,
		lock.orderID, domain.OrderStatusPendingPayment,
	); err != nil {
		return fmt.Errorf("reopen order: %w", err)
	}

	return tx.Commit()
}

// ExpireStale закрывает платежи, которые висят в pending дольше ttl, и отменяет их заказы.
func (r *PaymentRepository) ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Payment, error) {
	query := `
		WITH expired AS (
			UPDATE payments p
			SET status = $1, escrow_status = $2, updated_at = now()
			FROM orders o
			WHERE p.order_id = o.id
			  AND p.status = ANY($3)
			  AND o.status = $4
			  AND p.updated_at < now() - make_interval(secs => $5)
			RETURNING p.*
		), cancelled AS (
			UPDATE orders
			SET status = $6, cancel_kind = $7, updated_at = now()
			WHERE id IN (SELECT order_id FROM expired) AND status = $4
		)
		SELECT ` + paymentColumns + ` FROM expired`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.PaymentStatusFailed, domain.EscrowNone,
		pq.Array(domain.OpenPaymentStatuses), domain.OrderStatusPendingPayment,
		ttl.Seconds(), domain.OrderStatusCancelled, domain.CancelExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("expire stale payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

type paymentLock struct {
	status      domain.PaymentStatus
	orderID     string
	orderStatus domain.OrderStatus
	cancelKind  domain.CancelKind
}

// awaitsPayment - заказ ждет оплаты или отменен из-за неуспешной оплаты.
func (l paymentLock) awaitsPayment() bool {
	return l.orderStatus == domain.OrderStatusPendingPayment ||
		(l.orderStatus == domain.OrderStatusCancelled && l.cancelKind.Reopenable())
}

func lockPayment(ctx context.Context, tx *sql.Tx, paymentID string) (paymentLock, error) {
	query := `SELECT p.status, p.order_id, o.status, COALESCE(o.cancel_kind, '')
			  FROM payments p
			  JOIN orders o ON o.id = p.order_id
			  WHERE p.id = $1
			  FOR UPDATE OF p, o`

	var l paymentLock
	if err := tx.QueryRowContext(ctx, query, paymentID).Scan(&l.status, &l.orderID, &l.orderStatus, &l.cancelKind); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return paymentLock{}, domain.ErrPaymentNotFound
		}
		return paymentLock{}, fmt.Errorf("lock payment: %w", err)
	}

	return l, nil
}
