// Package di wires concrete storage backends into the usecase-facing
// repository interfaces.
package di

import (
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	todoadapters "todo_backend/internal/feature/todos/adapters"
	todousecase "todo_backend/internal/feature/todos/usecase"
	useradapters "todo_backend/internal/feature/users/adapters"
	userusecase "todo_backend/internal/feature/users/usecase"
)

// EnvKeyStoreBackend selects the storage backend: "gorm" (default), "redis",
// or "memory".
const EnvKeyStoreBackend = "STORE_BACKEND"

// Repositories bundles the storage collaborators for every feature.
type Repositories struct {
	Users userusecase.UserRepository
	Todos todousecase.TodoRepository
}

// NewRepositories creates the repository set for the configured backend.
// An unavailable backend falls back rather than failing startup: redis without
// a client degrades to gorm, and gorm without a connection degrades to the
// in-process memory store (dev-only, single process).
func NewRepositories(rdb *redis.Client, db *gorm.DB) Repositories {
	backend := os.Getenv(EnvKeyStoreBackend)

	if backend == "redis" {
		if rdb != nil {
			return Repositories{
				Users: useradapters.NewUserRedis(rdb, "users"),
				Todos: todoadapters.NewTodoRedis(rdb, "todos"),
			}
		}
		slog.Warn("redis backend requested but unavailable, falling back")
	}

	if backend != "memory" && db != nil {
		return Repositories{
			Users: useradapters.NewUserGorm(db),
			Todos: todoadapters.NewTodoGorm(db),
		}
	}

	if backend != "memory" {
		slog.Warn("no database connection, using in-memory store")
	}
	return Repositories{
		Users: useradapters.NewUserMemory(),
		Todos: todoadapters.NewTodoMemory(),
	}
}
