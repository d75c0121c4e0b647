// Package inference wraps the pretrained ONNX classification model.
package inference

import (
	"context"
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

const defaultImageSize = 224

// Config locates the model artifacts.
type Config struct {
	ModelPath  string
	LabelsPath string
	// ImageSize is the square input resolution the model expects.
	ImageSize int
}

// Classifier runs inference against a preloaded ONNX model. The session and
// label set are created once at startup and read-only afterwards; each
// Classify call uses its own tensors, so the classifier is safe for
// concurrent use.
type Classifier struct {
	session   *ort.DynamicAdvancedSession
	labels    []string
	imageSize int
}

// NewClassifier loads the label mapping and the model. Any failure here is a
// fatal startup condition for the caller.
func NewClassifier(cfg Config) (*Classifier, error) {
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = defaultImageSize
	}

	labels, err := LoadLabels(cfg.LabelsPath)
	if err != nil {
		return nil, err
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx runtime: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{"input"}, []string{"output"}, nil)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", cfg.ModelPath, err)
	}

	return &Classifier{
		session:   session,
		labels:    labels,
		imageSize: cfg.ImageSize,
	}, nil
}

// Classify decodes the image at path, runs one forward pass, and returns the
// arg-max class with its probability.
func (c *Classifier) Classify(_ context.Context, path string) (domain.Classification, error) {
	img, err := decodeImage(path)
	if err != nil {
		return domain.Classification{}, err
	}

	input := preprocess(img, c.imageSize)
	size := int64(c.imageSize)

	inputTensor, err := ort.NewTensor(ort.NewShape(1, size, size, 3), input)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(c.labels))))
	if err != nil {
		return domain.Classification{}, fmt.Errorf("create output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	err = c.session.Run(
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
	)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("inference failed: %w", err)
	}

	probs := outputTensor.GetData()
	idx := argMax(probs)

	return domain.Classification{
		ClassName:  c.labels[idx],
		Confidence: float64(probs[idx]),
	}, nil
}

// Labels returns a copy of the class name set.
func (c *Classifier) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Close releases the session and the ONNX runtime environment.
func (c *Classifier) Close() {
	if c.session != nil {
		c.session.Destroy()
	}
	_ = ort.DestroyEnvironment()
}
