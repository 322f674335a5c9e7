package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoRedis implements TodoRepository on a managed key-value store.
// Each record is stored as JSON under a prefixed key and the per-owner listing
// is backed by a set of todo IDs keyed by user.
type todoRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.TodoRepository = (*todoRedis)(nil)

// NewTodoRedis creates a new todoRedis instance with the given key prefix.
func NewTodoRedis(client *redis.Client, prefix string) *todoRedis {
	return &todoRedis{client: client, prefix: prefix}
}

// todoKey returns the key holding a todo record.
func (r *todoRedis) todoKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// userSetKey returns the key of the set holding a user's todo IDs.
func (r *todoRedis) userSetKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", r.prefix, userID)
}

func (r *todoRedis) Create(ctx context.Context, t *entity.Todo) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal todo: %w", err)
	}

	if err := r.client.Set(ctx, r.todoKey(t.ID), data, 0).Err(); err != nil {
		return err
	}
	return r.client.SAdd(ctx, r.userSetKey(t.UserID), t.ID).Err()
}

func (r *todoRedis) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	data, err := r.client.Get(ctx, r.todoKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}

	var t entity.Todo
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
	}
	return &t, nil
}

func (r *todoRedis) FindByUser(ctx context.Context, userID string) ([]entity.Todo, error) {
	ids, err := r.client.SMembers(ctx, r.userSetKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	todos := make([]entity.Todo, 0, len(ids))
	for _, id := range ids {
		t, err := r.FindByID(ctx, id)
		if errors.Is(err, usecase.ErrTodoNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}
	return todos, nil
}

func (r *todoRedis) Update(ctx context.Context, t *entity.Todo) error {
	if _, err := r.FindByID(ctx, t.ID); err != nil {
		return err
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal todo: %w", err)
	}
	return r.client.Set(ctx, r.todoKey(t.ID), data, 0).Err()
}

func (r *todoRedis) Delete(ctx context.Context, id string) error {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, r.todoKey(id)).Err(); err != nil {
		return err
	}
	return r.client.SRem(ctx, r.userSetKey(t.UserID), id).Err()
}

func (r *todoRedis) DeleteByUser(ctx context.Context, userID string) error {
	ids, err := r.client.SMembers(ctx, r.userSetKey(userID)).Result()
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := r.client.Del(ctx, r.todoKey(id)).Err(); err != nil {
			return err
		}
	}
	return r.client.Del(ctx, r.userSetKey(userID)).Err()
}
