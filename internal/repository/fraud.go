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

type FraudRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFraudRepo(db *dbpg.DB) *FraudRepository {
	return &FraudRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

func (r *FraudRepository) Create(ctx context.Context, a *domain.FraudAlert) error {
	query := `INSERT INTO fraud_alerts (id, user_id, alert_type, description, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.UserID, a.Type, a.Description, a.Status, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fraud alert: %w", err)
	}

	return nil
}

func (r *FraudRepository) LatestByUserAndType(ctx context.Context, userID string, alertType domain.AlertType) (*domain.FraudAlert, error) {
	query := `SELECT id, user_id, alert_type, description, status, created_at
			  FROM fraud_alerts
			  WHERE user_id = $1 AND alert_type = $2
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, alertType)
	if err != nil {
		return nil, fmt.Errorf("get latest alert: %w", err)
	}

	var a domain.FraudAlert
	if err = row.Scan(&a.ID, &a.UserID, &a.Type, &a.Description, &a.Status, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("scan alert: %w", err)
	}

	return &a, nil
}

// List возвращает алерты, при status != nil только в этом статусе.
func (r *FraudRepository) List(ctx context.Context, status *domain.AlertStatus) ([]*domain.FraudAlert, error) {
	query := `SELECT id, user_id, alert_type, description, status, created_at
			  FROM fraud_alerts
			  WHERE $1::text IS NULL OR status = $1
			  ORDER BY created_at DESC`

	var filter sql.NullString
	if status != nil {
		filter = sql.NullString{String: string(*status), Valid: true}
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var res []*domain.FraudAlert
	for rows.Next() {
		var a domain.FraudAlert
		if err = rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Description, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *FraudRepository) UpdateStatus(ctx context.Context, id string, status domain.AlertStatus) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE fraud_alerts SET status = $2 WHERE id = $1`, id, status,
	)
	if err != nil {
		return fmt.Errorf("update alert status: %w", err)
	}

	return affected(res, domain.ErrAlertNotFound)
}

// RecordLoginFailure увеличивает счетчик неудачных входов и возвращает новое значение.
func (r *FraudRepository) RecordLoginFailure(ctx context.Context, userID string) (int, error) {
	query := `INSERT INTO login_failures (user_id, attempts, updated_at)
			  VALUES ($1, 1, now())
			  ON CONFLICT (user_id) DO UPDATE
			  SET attempts = login_failures.attempts + 1, updated_at = now()
			  RETURNING attempts`

	// Без повтора: при потерянном ответе повтор засчитал бы попытку дважды.
	// QueryRowContext у dbpg читает с реплики, upsert идет на мастер
	var attempts int
	if err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("record login failure: %w", err)
	}

	return attempts, nil
}

func (r *FraudRepository) ResetLoginFailures(ctx context.Context, userID string) error {
	if _, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM login_failures WHERE user_id = $1`, userID,
	); err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}

	return nil
}
