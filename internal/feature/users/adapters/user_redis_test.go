package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/users/usecase"
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

func TestUserRedis_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("successful creation and lookup", func(t *testing.T) {
		repo := NewUserRedis(setupTestRedis(t), "users")

		require.NoError(t, repo.Create(ctx, newTestUser("u1", "alice")))

		byID, err := repo.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)

		byName, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "u1", byName.ID)
	})

	t.Run("failed record write releases the username claim", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := NewUserRedis(rdb, "users")

		user := newTestUser("u1", "alice")
		data, err := json.Marshal(user)
		require.NoError(t, err)

		mock.ExpectSetNX("users:username:alice", "u1", 0).SetVal(true)
		mock.ExpectSet("users:u1", data, 0).SetErr(errors.New("connection reset"))
		mock.ExpectDel("users:username:alice").SetVal(1)

		assert.Error(t, repo.Create(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username loses the SETNX claim", func(t *testing.T) {
		repo := NewUserRedis(setupTestRedis(t), "users")

		require.NoError(t, repo.Create(ctx, newTestUser("u1", "alice")))

		err := repo.Create(ctx, newTestUser("u2", "alice"))
		assert.ErrorIs(t, err, usecase.ErrUsernameTaken)

		// The losing record must not be readable.
		_, err = repo.FindByID(ctx, "u2")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserRedis_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRedis(setupTestRedis(t), "users")

	require.NoError(t, repo.Create(ctx, newTestUser("u1", "alice")))
	require.NoError(t, repo.Create(ctx, newTestUser("u2", "bob")))

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRedis_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("username change moves the index key", func(t *testing.T) {
		repo := NewUserRedis(setupTestRedis(t), "users")

		user := newTestUser("u1", "alice")
		require.NoError(t, repo.Create(ctx, user))

		user.Username = "alice2"
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByUsername(ctx, "alice2")
		require.NoError(t, err)
		assert.Equal(t, "u1", found.ID)

		_, err = repo.FindByUsername(ctx, "alice")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("renaming onto a taken username fails", func(t *testing.T) {
		repo := NewUserRedis(setupTestRedis(t), "users")

		require.NoError(t, repo.Create(ctx, newTestUser("u1", "alice")))
		bob := newTestUser("u2", "bob")
		require.NoError(t, repo.Create(ctx, bob))

		bob.Username = "alice"
		assert.ErrorIs(t, repo.Update(ctx, bob), usecase.ErrUsernameTaken)
	})
}

func TestUserRedis_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRedis(setupTestRedis(t), "users")

	require.NoError(t, repo.Create(ctx, newTestUser("u1", "alice")))
	require.NoError(t, repo.Delete(ctx, "u1"))

	_, err := repo.FindByID(ctx, "u1")
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)

	// The username becomes available again.
	require.NoError(t, repo.Create(ctx, newTestUser("u3", "alice")))

	// Deleting a missing user reports not found.
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), usecase.ErrUserNotFound)
}
