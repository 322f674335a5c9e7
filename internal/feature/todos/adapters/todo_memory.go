package adapters

import (
	"context"
	"sync"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoMemory is a mutex-guarded in-process implementation of TodoRepository.
// It is intended for development and tests; it holds no state across restarts.
type todoMemory struct {
	mu    sync.Mutex
	todos map[string]entity.Todo
}

var _ usecase.TodoRepository = (*todoMemory)(nil)

// NewTodoMemory creates an empty in-memory todo repository.
func NewTodoMemory() *todoMemory {
	return &todoMemory{todos: make(map[string]entity.Todo)}
}

func (r *todoMemory) Create(_ context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos[t.ID] = *t
	return nil
}

func (r *todoMemory) FindByID(_ context.Context, id string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok {
		return nil, usecase.ErrTodoNotFound
	}
	return &t, nil
}

func (r *todoMemory) FindByUser(_ context.Context, userID string) ([]entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos := make([]entity.Todo, 0)
	for _, t := range r.todos {
		if t.UserID == userID {
			todos = append(todos, t)
		}
	}
	return todos, nil
}

func (r *todoMemory) Update(_ context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[t.ID]; !ok {
		return usecase.ErrTodoNotFound
	}
	r.todos[t.ID] = *t
	return nil
}

func (r *todoMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return usecase.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

func (r *todoMemory) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.todos {
		if t.UserID == userID {
			delete(r.todos, id)
		}
	}
	return nil
}
