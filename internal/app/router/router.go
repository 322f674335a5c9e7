package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	todohandler "todo_backend/internal/feature/todos/transport/handler"
	userhandler "todo_backend/internal/feature/users/transport/handler"
	"todo_backend/internal/platform/http/handler"
	jwtmw "todo_backend/internal/platform/jwt"
)

// NewRouter builds the route table.
// Signup, login, the unauthenticated user listing, and the health check are
// open; every other route sits behind the bearer-token middleware.
func NewRouter(auth *userhandler.AuthHandler, users *userhandler.UserHandler,
	todos *todohandler.TodoHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)

	r.POST("/auth/signup", auth.Signup)
	r.POST("/auth/login", auth.Login)

	// Unscoped listing, deliberately unauthenticated.
	r.GET("/users/", users.List)

	profile := r.Group("/users")
	profile.Use(jwtmw.AuthRequired())
	{
		profile.GET("/:id", users.Get)
		profile.PUT("/:id", users.Update)
		profile.DELETE("/:id", users.Delete)
	}

	owned := r.Group("/todos")
	owned.Use(jwtmw.AuthRequired())
	{
		owned.GET("/", todos.List)
		owned.POST("/", todos.Create)
		owned.GET("/:id", todos.Get)
		owned.PUT("/:id", todos.Update)
		owned.DELETE("/:id", todos.Delete)
	}

	return r
}
