package models

// TokenRequest is the identity payload posted to /jwt.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}
