package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

// mockTodoRepository simulates the persistence layer during testing.
type mockTodoRepository struct {
	CreateFunc       func(ctx context.Context, todo *entity.Todo) error
	FindByIDFunc     func(ctx context.Context, id string) (*entity.Todo, error)
	FindByUserFunc   func(ctx context.Context, userID string) ([]entity.Todo, error)
	UpdateFunc       func(ctx context.Context, todo *entity.Todo) error
	DeleteFunc       func(ctx context.Context, id string) error
	DeleteByUserFunc func(ctx context.Context, userID string) error
}

func (m *mockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, todo)
	}
	return nil
}

func (m *mockTodoRepository) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrTodoNotFound
}

func (m *mockTodoRepository) FindByUser(ctx context.Context, userID string) ([]entity.Todo, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, todo)
	}
	return nil
}

func (m *mockTodoRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTodoRepository) DeleteByUser(ctx context.Context, userID string) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	return nil
}

func TestTodoUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty status defaults to pending", func(t *testing.T) {
		uc := NewTodoUsecase(&mockTodoRepository{})
		todo, err := uc.Create(ctx, "u1", "buy milk", "")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if todo.Status != entity.DefaultStatus {
			t.Errorf("expected default status %q, got %q", entity.DefaultStatus, todo.Status)
		}
		if todo.UserID != "u1" {
			t.Errorf("expected owner u1, got %q", todo.UserID)
		}
		if todo.ID == "" {
			t.Error("expected a generated ID")
		}
		if todo.CreatedAt.IsZero() || todo.UpdatedAt.IsZero() {
			t.Error("timestamps are not set")
		}
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		uc := NewTodoUsecase(&mockTodoRepository{})
		todo, err := uc.Create(ctx, "u1", "buy milk", "done")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if todo.Status != "done" {
			t.Errorf("expected status done, got %q", todo.Status)
		}
	})
}

func TestTodoUsecase_GetForOwner(t *testing.T) {
	ctx := context.Background()
	repo := &mockTodoRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Todo, error) {
			if id == "t1" {
				return &entity.Todo{ID: "t1", UserID: "u1"}, nil
			}
			return nil, ErrTodoNotFound
		},
	}
	uc := NewTodoUsecase(repo)

	t.Run("owner can read", func(t *testing.T) {
		todo, err := uc.GetForOwner(ctx, "t1", "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if todo.ID != "t1" {
			t.Errorf("expected t1, got %q", todo.ID)
		}
	})

	t.Run("another owner reads not found", func(t *testing.T) {
		_, err := uc.GetForOwner(ctx, "t1", "u2")
		if !errors.Is(err, ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})

	t.Run("missing todo reads not found", func(t *testing.T) {
		_, err := uc.GetForOwner(ctx, "missing", "u1")
		if !errors.Is(err, ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})
}

func TestTodoUsecase_Update(t *testing.T) {
	ctx := context.Background()

	newRepo := func(stored *entity.Todo) *mockTodoRepository {
		return &mockTodoRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Todo, error) {
				if id == stored.ID {
					copied := *stored
					return &copied, nil
				}
				return nil, ErrTodoNotFound
			},
		}
	}

	t.Run("partial update keeps absent fields and refreshes UpdatedAt", func(t *testing.T) {
		stored := &entity.Todo{
			ID:          "t1",
			UserID:      "u1",
			Description: "buy milk",
			Status:      "pending",
			UpdatedAt:   time.Now().Add(-time.Hour),
		}
		uc := NewTodoUsecase(newRepo(stored))

		status := "completed"
		before := time.Now()
		todo, err := uc.Update(ctx, "t1", "u1", nil, &status)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if todo.Description != "buy milk" {
			t.Errorf("description should be unchanged, got %q", todo.Description)
		}
		if todo.Status != "completed" {
			t.Errorf("status not updated, got %q", todo.Status)
		}
		if todo.UpdatedAt.Before(before) {
			t.Error("UpdatedAt was not refreshed")
		}
	})

	t.Run("another owner cannot update", func(t *testing.T) {
		stored := &entity.Todo{ID: "t1", UserID: "u1"}
		repo := newRepo(stored)
		repo.UpdateFunc = func(ctx context.Context, todo *entity.Todo) error {
			t.Error("Update should not be called for a foreign todo")
			return nil
		}
		uc := NewTodoUsecase(repo)

		desc := "hacked"
		_, err := uc.Update(ctx, "t1", "u2", &desc, nil)
		if !errors.Is(err, ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})
}

func TestTodoUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Todo{ID: "t1", UserID: "u1"}

	t.Run("owner can delete", func(t *testing.T) {
		deleted := false
		repo := &mockTodoRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Todo, error) {
				return stored, nil
			},
			DeleteFunc: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		uc := NewTodoUsecase(repo)
		if err := uc.Delete(ctx, "t1", "u1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Error("Delete was not called")
		}
	})

	t.Run("another owner reads not found", func(t *testing.T) {
		repo := &mockTodoRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Todo, error) {
				return stored, nil
			},
			DeleteFunc: func(ctx context.Context, id string) error {
				t.Error("Delete should not be called for a foreign todo")
				return nil
			},
		}

		uc := NewTodoUsecase(repo)
		err := uc.Delete(ctx, "t1", "u2")
		if !errors.Is(err, ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})
}

func TestTodoUsecase_ListForOwner(t *testing.T) {
	ctx := context.Background()
	repo := &mockTodoRepository{
		FindByUserFunc: func(ctx context.Context, userID string) ([]entity.Todo, error) {
			if userID == "u1" {
				return []entity.Todo{{ID: "t1", UserID: "u1"}, {ID: "t2", UserID: "u1"}}, nil
			}
			return []entity.Todo{}, nil
		},
	}
	uc := NewTodoUsecase(repo)

	todos, err := uc.ListForOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 {
		t.Errorf("expected 2 todos, got %d", len(todos))
	}

	empty, err := uc.ListForOwner(ctx, "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no todos for u2, got %d", len(empty))
	}
}
