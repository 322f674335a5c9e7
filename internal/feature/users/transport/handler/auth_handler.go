// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/feature/users/transport/http/dto"
	"todo_backend/internal/feature/users/usecase"
)

// AuthUsecase defines the account operations the auth endpoints need.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the created record.
	Signup(ctx context.Context, username, password, email string) (*entity.User, error)
	// Login authenticates a user and returns a signed bearer token on success.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/signup.
// - binds the request JSON into SignupReq, 400 on validation failure
// - 409 when the username is already taken
// - 201 with the new user's ID on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			slog.Warn("signup rejected", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{
				Message: fmt.Sprintf("Username '%s' already exists", req.Username),
			})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	slog.Info("user signup successful", "username", req.Username, "user_id", user.ID)
	c.JSON(http.StatusCreated, api.SignupResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

// Login handles POST /auth/login.
// - binds the request JSON into LoginReq, 400 on validation failure
// - 401 with a generic message on bad credentials (unknown user and wrong
//   password are indistinguishable)
// - 200 with an access token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid username or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	slog.Info("user login successful", "username", req.Username)
	c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token})
}
