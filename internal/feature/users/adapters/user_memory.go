package adapters

import (
	"context"
	"sync"

	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/feature/users/usecase"
)

// userMemory is a mutex-guarded in-process implementation of UserRepository.
// It is intended for development and tests; it holds no state across restarts.
type userMemory struct {
	mu    sync.Mutex
	users map[string]entity.User
}

var _ usecase.UserRepository = (*userMemory)(nil)

// NewUserMemory creates an empty in-memory user repository.
func NewUserMemory() *userMemory {
	return &userMemory{users: make(map[string]entity.User)}
}

func (r *userMemory) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return usecase.ErrUsernameTaken
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *userMemory) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	return &u, nil
}

func (r *userMemory) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, usecase.ErrUserNotFound
}

func (r *userMemory) FindAll(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *userMemory) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return usecase.ErrUserNotFound
	}
	for _, existing := range r.users {
		if existing.Username == u.Username && existing.ID != u.ID {
			return usecase.ErrUsernameTaken
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *userMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return usecase.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
