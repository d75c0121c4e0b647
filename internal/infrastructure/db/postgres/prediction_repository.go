package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

type PredictionRepository struct {
	db *sql.DB
}

func NewPredictionRepository(db *sql.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Insert stores one prediction row. A nil UserID is persisted as NULL — no
// existence check against users is performed.
func (r *PredictionRepository) Insert(ctx context.Context, p *domain.Prediction) error {
	query := `INSERT INTO predictions (user_id, class_name, confidence, image_path)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, p.UserID, p.ClassName, p.Confidence, p.ImagePath).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}

	return nil
}

// ListByUser returns the user's predictions, most recent first. The id
// tiebreak keeps the order deterministic for rows sharing a timestamp.
func (r *PredictionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Prediction, error) {
	query := `SELECT id, user_id, class_name, confidence, image_path, created_at
	          FROM predictions
	          WHERE user_id = $1
	          ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var out []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		if err := rows.Scan(&p.ID, &p.UserID, &p.ClassName, &p.Confidence, &p.ImagePath, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	return out, nil
}
