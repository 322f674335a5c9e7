package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/feature/users/usecase"
)

// userRedis implements UserRepository on a managed key-value store.
// Each record is stored as JSON under a prefixed key; the username secondary
// lookup is a plain key holding the user ID, claimed with SETNX so uniqueness
// is enforced by the store itself.
type userRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.UserRepository = (*userRedis)(nil)

// NewUserRedis creates a new userRedis instance with the given key prefix.
func NewUserRedis(client *redis.Client, prefix string) *userRedis {
	return &userRedis{client: client, prefix: prefix}
}

// userKey returns the key holding a user record.
func (r *userRedis) userKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// usernameKey returns the secondary-index key mapping a username to a user ID.
func (r *userRedis) usernameKey(username string) string {
	return fmt.Sprintf("%s:username:%s", r.prefix, username)
}

// allKey returns the key of the set holding every user ID.
func (r *userRedis) allKey() string {
	return fmt.Sprintf("%s:all", r.prefix)
}

func (r *userRedis) Create(ctx context.Context, u *entity.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// Claim the username first; losing the claim means a duplicate.
	ok, err := r.client.SetNX(ctx, r.usernameKey(u.Username), u.ID, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return usecase.ErrUsernameTaken
	}

	if err := r.client.Set(ctx, r.userKey(u.ID), data, 0).Err(); err != nil {
		// Release the claim so a failed write does not block the username forever.
		r.client.Del(ctx, r.usernameKey(u.Username))
		return err
	}
	return r.client.SAdd(ctx, r.allKey(), u.ID).Err()
}

func (r *userRedis) FindByID(ctx context.Context, id string) (*entity.User, error) {
	data, err := r.client.Get(ctx, r.userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var u entity.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &u, nil
}

func (r *userRedis) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	id, err := r.client.Get(ctx, r.usernameKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *userRedis) FindAll(ctx context.Context) ([]entity.User, error) {
	ids, err := r.client.SMembers(ctx, r.allKey()).Result()
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		u, err := r.FindByID(ctx, id)
		if errors.Is(err, usecase.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (r *userRedis) Update(ctx context.Context, u *entity.User) error {
	prev, err := r.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}

	// A username change moves the secondary-index key.
	if prev.Username != u.Username {
		ok, err := r.client.SetNX(ctx, r.usernameKey(u.Username), u.ID, 0).Result()
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrUsernameTaken
		}
		if err := r.client.Del(ctx, r.usernameKey(prev.Username)).Err(); err != nil {
			return err
		}
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return r.client.Set(ctx, r.userKey(u.ID), data, 0).Err()
}

func (r *userRedis) Delete(ctx context.Context, id string) error {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, r.userKey(id), r.usernameKey(u.Username)).Err(); err != nil {
		return err
	}
	return r.client.SRem(ctx, r.allKey(), id).Err()
}
