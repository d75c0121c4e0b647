package ports

import (
	"context"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

// PredictionRepository defines the interface for the prediction log.
type PredictionRepository interface {
	// Insert stores one prediction row and fills in its ID and CreatedAt.
	Insert(ctx context.Context, p *domain.Prediction) error

	// ListByUser returns the predictions linked to userID ordered by
	// created_at descending (most recent first). Anonymous rows are never
	// returned.
	ListByUser(ctx context.Context, userID int64) ([]domain.Prediction, error)
}
