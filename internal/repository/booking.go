package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

func (r *BookingRepository) SellerCalendar(ctx context.Context, sellerID string) ([]domain.SellerAvailability, error) {
	query := `SELECT seller_id, date, status
			  FROM seller_availability
			  WHERE seller_id = $1
			  ORDER BY date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller availability: %w", err)
	}
	defer rows.Close()

	var res []domain.SellerAvailability
	for rows.Next() {
		var a domain.SellerAvailability
		if err = rows.Scan(&a.SellerID, &a.Date, &a.Status); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *BookingRepository) SetAvailability(ctx context.Context, a domain.SellerAvailability) error {
	query := `INSERT INTO seller_availability (seller_id, date, status)
			  VALUES ($1, $2::date, $3)
			  ON CONFLICT (seller_id, date) DO UPDATE SET status = EXCLUDED.status`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.SellerID, a.Date.Format(domain.DateLayout), a.Status)
	if err != nil {
		return fmt.Errorf("upsert availability: %w", err)
	}

	return nil
}

// HasPaidBooking - есть ли неотмененный заказ с оплаченным платежом на этот слот.
func (r *BookingRepository) HasPaidBooking(ctx context.Context, serviceID string, date time.Time) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1
				FROM order_items oi
				JOIN orders o   ON o.id = oi.order_id
				JOIN payments p ON p.order_id = o.id
				WHERE oi.service_id = $1
				  AND oi.booking_date = $2::date
				  AND o.status <> $3
				  AND p.status = $4
			  )`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		serviceID, date.Format(domain.DateLayout),
		domain.OrderStatusCancelled, domain.PaymentStatusPaid,
	)
	if err != nil {
		return false, fmt.Errorf("check paid booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan paid booking: %w", err)
	}

	return exists, nil
}
