package ports

import (
	"context"
	"time"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

// PredictInput carries one uploaded image into the prediction pipeline.
type PredictInput struct {
	// UserID links the resulting prediction to an account; nil records an
	// anonymous prediction.
	UserID *int64
	// Filename is the client-supplied name, used only for its extension.
	Filename string
	// Data is the raw image payload.
	Data []byte
}

// PredictResult is the outcome of a stored classification.
type PredictResult struct {
	PredictionID int64
	ClassName    string
	Confidence   float64
	CreatedAt    time.Time
}

type PredictionService interface {
	// Predict persists the image, classifies it, and records the result.
	// Fails with domain.ErrNotAnImage when the payload cannot be decoded.
	Predict(ctx context.Context, in PredictInput) (*PredictResult, error)

	// History returns the caller's predictions, most recent first. Fails with
	// domain.ErrInvalidInput unless userID is a positive integer.
	History(ctx context.Context, userID int64) ([]domain.Prediction, error)
}
