package main

import (
	"log"
	"os"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	todousecase "todo_backend/internal/feature/todos/usecase"
	userhandler "todo_backend/internal/feature/users/transport/handler"
	userusecase "todo_backend/internal/feature/users/usecase"
	infradb "todo_backend/internal/platform/db"
	infraredis "todo_backend/internal/platform/redis"
	jwtmw "todo_backend/internal/platform/jwt"
)

func main() {
	backend := os.Getenv(di.EnvKeyStoreBackend)

	// db (not opened when another backend is selected)
	var db *gorm.DB
	if backend == "" || backend == "gorm" {
		db = infradb.OpenDB()
	}

	// Redis
	var rdb *redisv9.Client
	if backend == "redis" {
		if tmp, err := infraredis.NewRedisClient(); err != nil {
			log.Println("[WARN] Redis unavailable. Falling back to another store.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	repos := di.NewRepositories(rdb, db)

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	expiration := 24 * time.Hour
	if hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS")); err == nil && hours > 0 {
		expiration = time.Duration(hours) * time.Hour
	}
	tokenGen := jwtmw.NewGenerator(secret, expiration)

	// Usecase
	todoUC := todousecase.NewTodoUsecase(repos.Todos)
	userUC := userusecase.NewUserUsecase(repos.Users, repos.Todos, tokenGen)

	// Handler
	authH := userhandler.NewAuthHandler(userUC)
	userH := userhandler.NewUserHandler(userUC)
	todoH := todohandler.NewTodoHandler(todoUC)

	r := router.NewRouter(authH, userH, todoH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
