package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

const orderColumns = `id, user_id, total, status,
	COALESCE(cancel_kind, ''), COALESCE(cancel_reason, ''), created_at, updated_at`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID, &o.UserID, &o.Total, &o.Status,
		&o.CancelKind, &o.CancelReason, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CreateWithPayment(ctx context.Context, o *domain.Order, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `INSERT INTO orders (id, user_id, total, status, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, orderQuery,
		o.ID, o.UserID, o.Total, o.Status, o.CreatedAt, o.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (id, order_id, service_id, seller_id, title, quantity, unit_price, booking_date)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date)`
	for _, it := range o.Items {
		if _, err = tx.ExecContext(
			ctx, itemQuery,
			it.ID, o.ID, it.ServiceID, it.SellerID, it.Title,
			it.Quantity, it.UnitPrice, it.BookingDate.Format(domain.DateLayout),
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	paymentQuery := `INSERT INTO payments (id, order_id, provider, amount, currency, status, escrow_status, created_at, updated_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, paymentQuery,
		p.ID, o.ID, p.Provider, p.Amount, p.Currency,
		p.Status, p.EscrowStatus, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, o.UserID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	if err = r.loadItems(ctx, []*domain.Order{o}); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
			  FROM orders
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *OrderRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
			  FROM orders o
			  WHERE EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.seller_id = $1)
			  ORDER BY created_at DESC`

	return r.list(ctx, query, sellerID)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.loadItems(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query := `SELECT id, order_id, service_id, seller_id, title, quantity, unit_price, booking_date
			  FROM order_items
			  WHERE order_id = ANY($1)
			  ORDER BY booking_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err = rows.Scan(
			&it.ID, &it.OrderID, &it.ServiceID, &it.SellerID, &it.Title,
			&it.Quantity, &it.UnitPrice, &it.BookingDate,
		); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}

	return rows.Err()
}

func (r *OrderRepository) IsOrderForSeller(ctx context.Context, orderID, sellerID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM order_items WHERE order_id = $1 AND seller_id = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, orderID, sellerID)
	if err != nil {
		return false, fmt.Errorf("check seller order: %w", err)
	}

	var ok bool
	if err = row.Scan(&ok); err != nil {
		return false, fmt.Errorf("scan seller order: %w", err)
	}

	return ok, nil
}

// CountHighValueSince считает заказы пользователя с суммой >= min, созданные после since,
// и возвращает id самого свежего из них.
func (r *OrderRepository) CountHighValueSince(
	ctx context.Context,
	userID string,
	min decimal.Decimal,
	since time.Time,
) (int, string, error) {
	query := `SELECT COUNT(*),
					 COALESCE((array_agg(id::text ORDER BY created_at DESC))[1], '')
			  FROM orders
			  WHERE user_id = $1 AND total >= $2 AND created_at >= $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, min, since)
	if err != nil {
		return 0, "", fmt.Errorf("count high value orders: %w", err)
	}

	var (
		count  int
		latest string
	)
	if err = row.Scan(&count, &latest); err != nil {
		return 0, "", fmt.Errorf("scan high value orders: %w", err)
	}

	return count, latest, nil
}

func (r *OrderRepository) Accept(ctx context.Context, orderID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Атомарно проверяем статус заказа и оплату
	query := `UPDATE orders o
			  SET status = $2, updated_at = now()
			  FROM payments p
			  WHERE p.order_id = o.id
			    AND o.id = $1
			    AND o.status = $3
			    AND p.status = $4`
	res, err := tx.ExecContext(
		ctx, query, orderID,
		domain.OrderStatusAccepted, domain.OrderStatusPending, domain.PaymentStatusPaid,
	)
	if err != nil {
		return fmt.Errorf("accept order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: заказа нет, не оплачен или не в pending
		orderStatus, paymentStatus, _, err := lockOrderState(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if paymentStatus != domain.PaymentStatusPaid {
			return domain.ErrPaymentRequired
		}
		if orderStatus != domain.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		return domain.ErrOrderNotFound
	}

	return tx.Commit()
}

// Complete завершает оплаченный заказ и освобождает эскроу. Возвращает true, если эскроу было released.
func (r *OrderRepository) Complete(ctx context.Context, orderID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	orderStatus, paymentStatus, escrow, err := lockOrderState(ctx, tx, orderID)
	if err != nil {
		return false, err
	}
	if paymentStatus != domain.PaymentStatusPaid {
		return false, domain.ErrPaymentRequired
	}
	if !slices.Contains(domain.CompletableStatuses, orderStatus) {
		return false, domain.ErrInvalidTransition
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		orderID, domain.OrderStatusCompleted,
	); err != nil {
		return false, fmt.Errorf("complete order: %w", err)
	}

	released := false
	if escrow == domain.EscrowHeld {
		if _, err = tx.ExecContext(ctx,
			`UPDATE payments SET escrow_status = $2, updated_at = now()
			 WHERE order_id = $1 AND escrow_status = $3`,
			orderID, domain.EscrowReleased, domain.EscrowHeld,
		); err != nil {
			return false, fmt.Errorf("release escrow: %w", err)
		}
		released = true
	}

	return released, tx.Commit()
}

// Cancel отменяет заказ и записывает, кто его отменил. Оплаченный платеж с удержанным эскроу
// переводится в refunded, незавершенный платеж закрывается как failed.
// Возвращает true, если был оформлен возврат.
func (r *OrderRepository) Cancel(ctx context.Context, orderID string, kind domain.CancelKind, reason string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	orderStatus, paymentStatus, escrow, err := lockOrderState(ctx, tx, orderID)
	if err != nil {
		return false, err
	}
	if !slices.Contains(domain.CancellableStatuses, orderStatus) {
		return false, domain.ErrInvalidTransition
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, cancel_kind = $3, cancel_reason = $4, updated_at = now() WHERE id = $1`,
		orderID, domain.OrderStatusCancelled, kind, nullString(reason),
	); err != nil {
		return false, fmt.Errorf("cancel order: %w", err)
	}

	refunded := false
	switch {
	case paymentStatus == domain.PaymentStatusPaid && escrow == domain.EscrowHeld:
		query := `UPDATE payments
				  SET status = $2, escrow_status = $3, refund_reason = $4, refunded_at = now(), updated_at = now()
				  WHERE order_id = $1 AND status = $5 AND escrow_status = $6`
		if _, err = tx.ExecContext(
			ctx, query, orderID,
			domain.PaymentStatusRefunded, domain.EscrowRefunded, nullString(reason),
			domain.PaymentStatusPaid, domain.EscrowHeld,
		); err != nil {
			return false, fmt.Errorf("refund payment: %w", err)
		}
		refunded = true

	case slices.Contains(domain.OpenPaymentStatuses, paymentStatus):
		// Поздний успех по такому платежу уйдет в возврат, заказ уже не откроется
		if _, err = tx.ExecContext(ctx,
			`UPDATE payments SET status = $2, escrow_status = $3, updated_at = now()
			 WHERE order_id = $1 AND status = ANY($4)`,
			orderID, domain.PaymentStatusFailed, domain.EscrowNone, pq.Array(domain.OpenPaymentStatuses),
		); err != nil {
			return false, fmt.Errorf("close open payment: %w", err)
		}
	}

	// Слот освобождается вместе с отменой
	if _, err = tx.ExecContext(ctx, `DELETE FROM booking_slots WHERE order_id = $1`, orderID); err != nil {
		return false, fmt.Errorf("release booking slots: %w", err)
	}

	return refunded, tx.Commit()
}

func lockOrderState(ctx context.Context, tx *sql.Tx, orderID string) (domain.OrderStatus, domain.PaymentStatus, domain.EscrowStatus, error) {
	query := `SELECT o.status, p.status, p.escrow_status
			  FROM orders o
			  JOIN payments p ON p.order_id = o.id
			  WHERE o.id = $1
			  FOR UPDATE OF o, p`

	var (
		orderStatus   domain.OrderStatus
		paymentStatus domain.PaymentStatus
		escrow        domain.EscrowStatus
	)
	if err := tx.QueryRowContext(ctx, query, orderID).Scan(&orderStatus, &paymentStatus, &escrow); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", "", domain.ErrOrderNotFound
		}
		return "", "", "", fmt.Errorf("lock order: %w", err)
	}

	return orderStatus, paymentStatus, escrow, nil
}
