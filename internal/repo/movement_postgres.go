package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/stockpile-io/stockpile/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

func (r *PostgresMovementRepository) Log(productID string, delta int) error {
	query := `INSERT INTO movements (product_id, delta, created_at) VALUES ($1, $2, now())`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, productID, delta)
	return err
}

func (r *PostgresMovementRepository) GetByProductID(productID string, mf MovementFilter) ([]models.Movement, int, error) {
	conds := []string{"product_id = $1"}
	args := []any{productID}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if mf.Since != nil {
		conds = append(conds, "created_at >= "+arg(*mf.Since))
	}
	if mf.Until != nil {
		conds = append(conds, "created_at <= "+arg(*mf.Until))
	}
	where := " WHERE " + strings.Join(conds, " AND ")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM movements`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, product_id, delta, created_at FROM movements` + where + ` ORDER BY created_at, id`
	if mf.Limit != nil && *mf.Limit > 0 {
		query += " LIMIT " + arg(*mf.Limit)
	}
	if mf.Offset != nil {
		query += " OFFSET " + arg(*mf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var movements []models.Movement
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		movements = append(movements, m)
	}
	return movements, total, rows.Err()
}
