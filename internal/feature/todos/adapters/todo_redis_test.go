package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/todos/usecase"
)

// setupTestRedis creates a miniredis-backed client for testing.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client
}

func TestTodoRedis_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRedis(setupTestRedis(t), "todos")

	require.NoError(t, repo.Create(ctx, newTestTodo("t1", "u1", "buy milk")))

	found, err := repo.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", found.Description)
	assert.Equal(t, "u1", found.UserID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, usecase.ErrTodoNotFound)
}

func TestTodoRedis_FindByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRedis(setupTestRedis(t), "todos")

	require.NoError(t, repo.Create(ctx, newTestTodo("t1", "u1", "buy milk")))
	require.NoError(t, repo.Create(ctx, newTestTodo("t2", "u1", "walk dog")))
	require.NoError(t, repo.Create(ctx, newTestTodo("t3", "u2", "other")))

	todos, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	empty, err := repo.FindByUser(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTodoRedis_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRedis(setupTestRedis(t), "todos")

	todo := newTestTodo("t1", "u1", "buy milk")
	require.NoError(t, repo.Create(ctx, todo))

	todo.Status = "completed"
	require.NoError(t, repo.Update(ctx, todo))

	found, err := repo.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "completed", found.Status)

	assert.ErrorIs(t, repo.Update(ctx, newTestTodo("missing", "u1", "x")), usecase.ErrTodoNotFound)
}

func TestTodoRedis_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRedis(setupTestRedis(t), "todos")

	require.NoError(t, repo.Create(ctx, newTestTodo("t1", "u1", "buy milk")))

	require.NoError(t, repo.Delete(ctx, "t1"))
	_, err := repo.FindByID(ctx, "t1")
	assert.ErrorIs(t, err, usecase.ErrTodoNotFound)

	// The owner's listing no longer contains the ID.
	todos, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, todos)

	assert.ErrorIs(t, repo.Delete(ctx, "t1"), usecase.ErrTodoNotFound)
}

func TestTodoRedis_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRedis(setupTestRedis(t), "todos")

	require.NoError(t, repo.Create(ctx, newTestTodo("t1", "u1", "buy milk")))
	require.NoError(t, repo.Create(ctx, newTestTodo("t2", "u1", "walk dog")))
	require.NoError(t, repo.Create(ctx, newTestTodo("t3", "u2", "keep me")))

	require.NoError(t, repo.DeleteByUser(ctx, "u1"))

	// Every record is gone, not just the index.
	_, err := repo.FindByID(ctx, "t1")
	assert.ErrorIs(t, err, usecase.ErrTodoNotFound)
	_, err = repo.FindByID(ctx, "t2")
	assert.ErrorIs(t, err, usecase.ErrTodoNotFound)

	kept, err := repo.FindByID(ctx, "t3")
	require.NoError(t, err)
	assert.Equal(t, "keep me", kept.Description)
}
