package inference

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

// decodeImage opens and decodes the image at path. Undecodable files fail
// with domain.ErrNotAnImage.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotAnImage, err)
	}
	return img, nil
}

// preprocess resizes img to a size×size square and returns interleaved NHWC
// float32 pixels scaled to [-1, 1], the MobileNetV2 input transform.
func preprocess(img image.Image, size int) []float32 {
	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	data := make([]float32, size*size*3)
	bounds := resized.Bounds()

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			// RGBA components are 16-bit; map [0, 65535] onto [-1, 1].
			data[i] = float32(r)/32767.5 - 1
			data[i+1] = float32(g)/32767.5 - 1
			data[i+2] = float32(b)/32767.5 - 1
			i += 3
		}
	}

	return data
}

// argMax returns the index of the largest value. The first occurrence wins on
// exact ties.
func argMax(vals []float32) int {
	best := 0
	for i, v := range vals {
		if v > vals[best] {
			best = i
		}
	}
	return best
}
