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

// SessionRepository хранит незавершенные платежи пользователя по провайдерам.
type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.PaymentSession) error {
	query := `INSERT INTO payment_sessions (user_id, provider, order_id, reference, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (user_id, provider) DO UPDATE
			  SET order_id = EXCLUDED.order_id, reference = EXCLUDED.reference, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.UserID, s.Provider, s.OrderID, s.Reference, s.UpdatedAt,
	); err != nil {
		return fmt.Errorf("save payment session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Get(ctx context.Context, userID, provider string) (*domain.PaymentSession, error) {
	query := `SELECT user_id, provider, order_id, reference, updated_at
			  FROM payment_sessions
			  WHERE user_id = $1 AND provider = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("get payment session: %w", err)
	}

	var s domain.PaymentSession
	if err = row.Scan(&s.UserID, &s.Provider, &s.OrderID, &s.Reference, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan payment session: %w", err)
	}

	return &s, nil
}

// Delete убирает сессию, только если она все еще указывает на reference:
// более новую попытку того же провайдера не трогаем.
func (r *SessionRepository) Delete(ctx context.Context, userID, provider, reference string) error {
	if _, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM payment_sessions WHERE user_id = $1 AND provider = $2 AND reference = $3`,
		userID, provider, reference,
	); err != nil {
		return fmt.Errorf("delete payment session: %w", err)
	}

	return nil
}
