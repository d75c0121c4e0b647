package ports

import (
	"context"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

// Classifier wraps the preloaded image-classification model. Implementations
// hold the model weights as immutable process-wide state and must be safe for
// concurrent use.
type Classifier interface {
	// Classify decodes the image at path, runs a single forward pass, and
	// returns the arg-max class with its probability. Fails with
	// domain.ErrNotAnImage when the file cannot be decoded.
	Classify(ctx context.Context, path string) (domain.Classification, error)

	// Labels returns the fixed closed set of class names the model can output.
	Labels() []string
}
