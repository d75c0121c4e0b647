package inference

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

func TestArgMax(t *testing.T) {
	tests := []struct {
		name string
		vals []float32
		want int
	}{
		{"single", []float32{0.3}, 0},
		{"max in middle", []float32{0.1, 0.7, 0.2}, 1},
		{"max at end", []float32{0.1, 0.2, 0.7}, 2},
		{"tie keeps lowest index", []float32{0.5, 0.5, 0.4}, 0},
		{"all equal", []float32{0.25, 0.25, 0.25, 0.25}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := argMax(tt.vals); got != tt.want {
				t.Fatalf("argMax(%v) = %d, want %d", tt.vals, got, tt.want)
			}
		})
	}
}

func uniformImage(c color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPreprocess_ShapeAndRange(t *testing.T) {
	const size = 32
	data := preprocess(uniformImage(color.RGBA{R: 120, G: 64, B: 200, A: 255}, 50, 80), size)

	if len(data) != size*size*3 {
		t.Fatalf("expected %d values, got %d", size*size*3, len(data))
	}
	for i, v := range data {
		if v < -1 || v > 1 {
			t.Fatalf("value %d out of [-1,1]: %f", i, v)
		}
	}
}

func TestPreprocess_NormalizesExtremes(t *testing.T) {
	const size = 8

	white := preprocess(uniformImage(color.RGBA{R: 255, G: 255, B: 255, A: 255}, size, size), size)
	for i, v := range white {
		if math.Abs(float64(v)-1) > 1e-3 {
			t.Fatalf("white pixel %d: expected ~1, got %f", i, v)
		}
	}

	black := preprocess(uniformImage(color.RGBA{A: 255}, size, size), size)
	for i, v := range black {
		if math.Abs(float64(v)+1) > 1e-3 {
			t.Fatalf("black pixel %d: expected ~-1, got %f", i, v)
		}
	}
}

func TestDecodeImage_ValidPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaf.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if err := png.Encode(f, uniformImage(color.RGBA{G: 180, A: 255}, 12, 12)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	_ = f.Close()

	img, err := decodeImage(path)
	if err != nil {
		t.Fatalf("decodeImage returned error: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 12 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestDecodeImage_Undecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.jpg")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := decodeImage(path)
	if !errors.Is(err, domain.ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestDecodeImage_MissingFile(t *testing.T) {
	_, err := decodeImage(filepath.Join(t.TempDir(), "missing.jpg"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if errors.Is(err, domain.ErrNotAnImage) {
		t.Fatalf("a missing file is not a decode failure: %v", err)
	}
}
