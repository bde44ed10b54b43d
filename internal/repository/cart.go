package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CartRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCartRepo(db *dbpg.DB) *CartRepository {
	return &CartRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CartItem, error) {
	query := `SELECT id, user_id, service_id, seller_id, title, quantity, unit_price, booking_date, created_at
			  FROM cart_items
			  WHERE user_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var res []*domain.CartItem
	for rows.Next() {
		var (
			c    domain.CartItem
			date sql.NullTime
		)
		if err = rows.Scan(
			&c.ID, &c.UserID, &c.ServiceID, &c.SellerID, &c.Title,
			&c.Quantity, &c.UnitPrice, &date, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		if date.Valid {
			d := date.Time
			c.BookingDate = &d
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

// Add добавляет строку в корзину; повторное добавление того же слота увеличивает количество.
func (r *CartRepository) Add(ctx context.Context, item *domain.CartItem) error {
	query := `INSERT INTO cart_items (id, user_id, service_id, seller_id, title, quantity, unit_price, booking_date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9)
			  ON CONFLICT (user_id, service_id, COALESCE(booking_date, '-infinity'::date))
			  DO UPDATE SET quantity   = cart_items.quantity + EXCLUDED.quantity,
			                unit_price = EXCLUDED.unit_price
			  RETURNING id, quantity`

	var date *string
	if item.BookingDate != nil {
		d := item.BookingDate.Format(domain.DateLayout)
		date = &d
	}

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		item.ID, item.UserID, item.ServiceID, item.SellerID, item.Title,
		item.Quantity, item.UnitPrice, date, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}

	if err = row.Scan(&item.ID, &item.Quantity); err != nil {
		return fmt.Errorf("scan cart item: %w", err)
	}

	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, itemID string) error {
	query := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, itemID, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	return affected(res, domain.ErrCartItemNotFound)
}

type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

func (r *CatalogRepository) GetService(ctx context.Context, id string) (*domain.ServiceInfo, error) {
	query := `SELECT id, seller_id, title, price FROM catalog_services WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.ServiceInfo
	if err = row.Scan(&s.ID, &s.SellerID, &s.Title, &s.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}
