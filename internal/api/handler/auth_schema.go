package handler

import "time"

type registerRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// loginResponse extends the register shape with a bearer token. Clients that
// only track user_id can ignore it.
type loginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Token   string `json:"token"`
}

type profileResponse struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
