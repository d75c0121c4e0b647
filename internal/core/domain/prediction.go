package domain

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrNotAnImage = errors.New("file is not a decodable image")

// Prediction is one recorded classification run. UserID is nil for anonymous
// uploads; the link is advisory only — no foreign-key check is enforced at
// write time.
type Prediction struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	ClassName  string    `json:"class_name"`
	Confidence float64   `json:"confidence"`
	ImagePath  string    `json:"image_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// Classification is the outcome of a single model forward pass. Confidence is
// the probability mass assigned to the winning class, in [0,1].
type Classification struct {
	ClassName  string
	Confidence float64
}
