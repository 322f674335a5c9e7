// Package api defines the shared wire-level response envelopes.
package api

// ErrorResponse is the envelope for every non-2xx response body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// SignupResponse is the body returned on successful signup.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// TokenResponse is the body returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
