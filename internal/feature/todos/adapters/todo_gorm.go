// Package adapters provides repository implementations for the todos feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoGorm is the table-backed implementation of the TodoRepository interface.
type todoGorm struct {
	db *gorm.DB
}

// Compile-time check that todoGorm implements TodoRepository.
var _ usecase.TodoRepository = (*todoGorm)(nil)

// NewTodoGorm creates a new todoGorm instance on the given gorm.DB connection.
func NewTodoGorm(db *gorm.DB) *todoGorm {
	return &todoGorm{db: db}
}

func (r *todoGorm) Create(ctx context.Context, t *entity.Todo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByID retrieves a todo by ID, mapping a miss to usecase.ErrTodoNotFound.
func (r *todoGorm) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	var t entity.Todo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByUser returns every todo owned by userID.
func (r *todoGorm) FindByUser(ctx context.Context, userID string) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoGorm) Update(ctx context.Context, t *entity.Todo) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes a todo by ID, mapping a miss to usecase.ErrTodoNotFound.
func (r *todoGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Todo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTodoNotFound
	}
	return nil
}

// DeleteByUser removes every todo owned by userID. Deleting for a user with no
// todos is not an error.
func (r *todoGorm) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Todo{}).Error
}
