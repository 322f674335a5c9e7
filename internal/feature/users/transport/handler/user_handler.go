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
	jwtmw "todo_backend/internal/platform/jwt"
)

// UserUsecase defines the profile operations the user endpoints need.
type UserUsecase interface {
	GetProfile(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id string, username, email *string) (*entity.User, error)
	DeleteProfile(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]entity.User, error)
}

// UserHandler handles HTTP requests for the /users routes.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// requireOwnPath compares the authenticated subject against the path ID.
// Profile routes reject a mismatch with 403 before any service call; this is
// the one place the API distinguishes "not yours" from "missing".
func requireOwnPath(c *gin.Context, action string) (string, bool) {
	id := c.Param("id")
	subject := c.GetString(jwtmw.ContextUserID)
	if subject != id {
		slog.Warn("profile access denied", "subject", subject, "target", id)
		c.JSON(http.StatusForbidden, api.ErrorResponse{
			Message: "Forbidden: You can only " + action + " your own profile",
		})
		return "", false
	}
	return id, true
}

// List handles GET /users/. It requires no authentication and returns every
// user without pagination; password hashes are excluded from the response.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRespList(users))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := requireOwnPath(c, "access")
	if !ok {
		return
	}

	user, err := h.users.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			return
		}
		slog.Error("profile read failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResp(user))
}

// Update handles PUT /users/:id with partial-update semantics.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := requireOwnPath(c, "update")
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "user_id", id)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), id, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			return
		}
		if errors.Is(err, usecase.ErrUsernameTaken) {
			taken := ""
			if req.Username != nil {
				taken = *req.Username
			}
			slog.Warn("profile update conflict", "user_id", id, "username", taken)
			c.JSON(http.StatusConflict, api.ErrorResponse{
				Message: fmt.Sprintf("Username '%s' already exists", taken),
			})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	slog.Info("profile updated", "user_id", id)
	c.JSON(http.StatusOK, dto.NewUserResp(user))
}

// Delete handles DELETE /users/:id, cascading to the user's todos.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := requireOwnPath(c, "delete")
	if !ok {
		return
	}

	if err := h.users.DeleteProfile(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			return
		}
		slog.Error("profile delete failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	slog.Info("profile deleted", "user_id", id)
	c.Status(http.StatusNoContent)
}
