package dto

import (
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoResp is the outward representation of a todo.
type TodoResp struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTodoResp converts a todo entity into its outward representation.
func NewTodoResp(t *entity.Todo) TodoResp {
	return TodoResp{
		ID:          t.ID,
		UserID:      t.UserID,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTodoRespList converts a slice of todo entities.
func NewTodoRespList(todos []entity.Todo) []TodoResp {
	out := make([]TodoResp, 0, len(todos))
	for i := range todos {
		out = append(out, NewTodoResp(&todos[i]))
	}
	return out
}
