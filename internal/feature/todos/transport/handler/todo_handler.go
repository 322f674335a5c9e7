// Package handler provides the HTTP handlers for the todos feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/transport/http/dto"
	"todo_backend/internal/feature/todos/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TodoUsecase defines the operations the todo endpoints need.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type TodoUsecase interface {
	Create(ctx context.Context, ownerID, description, status string) (*entity.Todo, error)
	ListForOwner(ctx context.Context, ownerID string) ([]entity.Todo, error)
	GetForOwner(ctx context.Context, id, ownerID string) (*entity.Todo, error)
	Update(ctx context.Context, id, ownerID string, description, status *string) (*entity.Todo, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// TodoHandler handles HTTP requests for the /todos routes.
// Every route is owner-scoped: the subject comes from the auth middleware and
// a todo that is missing or owned by someone else uniformly reads as 404.
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler creates a new TodoHandler instance.
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// List handles GET /todos/ and returns the caller's todos.
func (h *TodoHandler) List(c *gin.Context) {
	owner := c.GetString(jwtmw.ContextUserID)

	todos, err := h.todos.ListForOwner(c.Request.Context(), owner)
	if err != nil {
		slog.Error("todo list failed", "error", err, "owner", owner)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewTodoRespList(todos))
}

// Create handles POST /todos/.
func (h *TodoHandler) Create(c *gin.Context) {
	owner := c.GetString(jwtmw.ContextUserID)

	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("todo create validation failed", "error", err, "owner", owner)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), owner, req.Description, req.Status)
	if err != nil {
		slog.Error("todo create failed", "error", err, "owner", owner)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	slog.Info("todo created", "todo_id", todo.ID, "owner", owner)
	c.JSON(http.StatusCreated, dto.NewTodoResp(todo))
}

// Get handles GET /todos/:id.
func (h *TodoHandler) Get(c *gin.Context) {
	owner := c.GetString(jwtmw.ContextUserID)
	id := c.Param("id")

	todo, err := h.todos.GetForOwner(c.Request.Context(), id, owner)
	if err != nil {
		h.renderError(c, err, id, owner)
		return
	}
	c.JSON(http.StatusOK, dto.NewTodoResp(todo))
}

// Update handles PUT /todos/:id with partial-update semantics.
func (h *TodoHandler) Update(c *gin.Context) {
	owner := c.GetString(jwtmw.ContextUserID)
	id := c.Param("id")

	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("todo update validation failed", "error", err, "todo_id", id)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), id, owner, req.Description, req.Status)
	if err != nil {
		h.renderError(c, err, id, owner)
		return
	}

	slog.Info("todo updated", "todo_id", id, "owner", owner)
	c.JSON(http.StatusOK, dto.NewTodoResp(todo))
}

// Delete handles DELETE /todos/:id.
func (h *TodoHandler) Delete(c *gin.Context) {
	owner := c.GetString(jwtmw.ContextUserID)
	id := c.Param("id")

	if err := h.todos.Delete(c.Request.Context(), id, owner); err != nil {
		h.renderError(c, err, id, owner)
		return
	}

	slog.Info("todo deleted", "todo_id", id, "owner", owner)
	c.Status(http.StatusNoContent)
}

// renderError maps usecase errors onto the wire. ErrTodoNotFound covers both a
// missing record and a record owned by someone else.
func (h *TodoHandler) renderError(c *gin.Context, err error, id, owner string) {
	if errors.Is(err, usecase.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Todo not found"})
		return
	}
	slog.Error("todo operation failed", "error", err, "todo_id", id, "owner", owner)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
}
