package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plantvision/plantvision-api/internal/core/domain"
	"github.com/plantvision/plantvision-api/internal/core/ports"
)

// ImageStore persists uploaded image bytes and returns the stored path.
type ImageStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// ResultCache caches classification results keyed by content hash (Redis).
// Classification is deterministic over immutable weights, so a hit is always
// valid. Get returns (nil, nil) on a miss.
type ResultCache interface {
	Get(ctx context.Context, key string) (*domain.Classification, error)
	Set(ctx context.Context, key string, c domain.Classification) error
}

type predictionService struct {
	repo       ports.PredictionRepository
	classifier ports.Classifier
	store      ImageStore
	cache      ResultCache
	log        zerolog.Logger
}

// NewPredictionService returns a PredictionService implementation.
func NewPredictionService(
	repo ports.PredictionRepository,
	classifier ports.Classifier,
	store ImageStore,
	cache ResultCache,
	log zerolog.Logger,
) ports.PredictionService {
	return &predictionService{
		repo:       repo,
		classifier: classifier,
		store:      store,
		cache:      cache,
		log:        log,
	}
}

// Predict stores the image, classifies it, and records one prediction row.
// The row is written even on a cache hit — the log tracks requests, not
// distinct images.
func (s *predictionService) Predict(ctx context.Context, in ports.PredictInput) (*ports.PredictResult, error) {
	if len(in.Data) == 0 {
		return nil, domain.ErrInvalidInput
	}

	path, err := s.store.Save(ctx, in.Filename, in.Data)
	if err != nil {
		return nil, fmt.Errorf("predict: store image: %w", err)
	}

	result, err := s.classify(ctx, path, in.Data)
	if err != nil {
		return nil, err
	}

	p := &domain.Prediction{
		UserID:     in.UserID,
		ClassName:  result.ClassName,
		Confidence: result.Confidence,
		ImagePath:  path,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("predict: record result: %w", err)
	}

	s.log.Info().
		Int64("prediction_id", p.ID).
		Str("class_name", p.ClassName).
		Float64("confidence", p.Confidence).
		Msg("prediction recorded")

	return &ports.PredictResult{
		PredictionID: p.ID,
		ClassName:    p.ClassName,
		Confidence:   p.Confidence,
		CreatedAt:    p.CreatedAt,
	}, nil
}

// classify consults the result cache before running the model. Cache failures
// are non-fatal; the forward pass is the fallback.
func (s *predictionService) classify(ctx context.Context, path string, data []byte) (domain.Classification, error) {
	key := contentKey(data)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("result cache lookup failed, classifying anyway")
	} else if cached != nil {
		s.log.Debug().Str("class_name", cached.ClassName).Msg("classification served from cache")
		return *cached, nil
	}

	result, err := s.classifier.Classify(ctx, path)
	if err != nil {
		return domain.Classification{}, err
	}

	if err := s.cache.Set(ctx, key, result); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache classification result")
	}

	return result, nil
}

func (s *predictionService) History(ctx context.Context, userID int64) ([]domain.Prediction, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

// contentKey derives the cache key from the uploaded bytes.
func contentKey(data []byte) string {
	sum := sha256.Sum256(data)
	return "classify:" + hex.EncodeToString(sum[:])
}
