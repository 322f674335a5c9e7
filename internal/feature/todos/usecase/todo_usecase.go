package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoRepository abstracts the persistence layer for todo entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type TodoRepository interface {
	// Create persists a new todo.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByID retrieves a todo by ID. It returns ErrTodoNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.Todo, error)

	// FindByUser retrieves every todo owned by the given user.
	FindByUser(ctx context.Context, userID string) ([]entity.Todo, error)

	// Update overwrites an existing todo record.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo by ID. It returns ErrTodoNotFound if absent.
	Delete(ctx context.Context, id string) error

	// DeleteByUser removes every todo owned by the given user.
	DeleteByUser(ctx context.Context, userID string) error
}

// todoUsecase implements owner-scoped todo management.
type todoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase creates a new todoUsecase instance.
func NewTodoUsecase(todos TodoRepository) *todoUsecase {
	return &todoUsecase{todos: todos}
}

// Create stores a new todo owned by ownerID. An empty status defaults to "pending".
func (u *todoUsecase) Create(ctx context.Context, ownerID, description, status string) (*entity.Todo, error) {
	if status == "" {
		status = entity.DefaultStatus
	}

	now := time.Now()
	todo := &entity.Todo{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// ListForOwner returns every todo owned by ownerID. Order follows the
// underlying store and is not guaranteed to be stable across backends.
func (u *todoUsecase) ListForOwner(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	return u.todos.FindByUser(ctx, ownerID)
}

// GetForOwner returns the todo only when it exists and belongs to ownerID.
// A todo owned by someone else reads as ErrTodoNotFound.
func (u *todoUsecase) GetForOwner(ctx context.Context, id, ownerID string) (*entity.Todo, error) {
	todo, err := u.todos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo.UserID != ownerID {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// Update applies a partial update to an owned todo. Nil fields keep their prior
// value; UpdatedAt is refreshed on success.
func (u *todoUsecase) Update(ctx context.Context, id, ownerID string, description, status *string) (*entity.Todo, error) {
	todo, err := u.GetForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if description != nil {
		todo.Description = *description
	}
	if status != nil {
		todo.Status = *status
	}
	todo.UpdatedAt = time.Now()

	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes an owned todo.
func (u *todoUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := u.GetForOwner(ctx, id, ownerID); err != nil {
		return err
	}
	return u.todos.Delete(ctx, id)
}
