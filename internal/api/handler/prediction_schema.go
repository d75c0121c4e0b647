package handler

import "time"

// errorResponse documents the error envelope rendered by the central HTTP
// error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type predictResponse struct {
	ClassName    string    `json:"class_name"`
	Confidence   float64   `json:"confidence"`
	PredictionID int64     `json:"prediction_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type historyItemResponse struct {
	ID         int64     `json:"id"`
	ClassName  string    `json:"class_name"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
