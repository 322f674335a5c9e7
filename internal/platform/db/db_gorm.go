package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	todoentity "todo_backend/internal/feature/todos/domain/entity"
	userentity "todo_backend/internal/feature/users/domain/entity"
)

// OpenDB opens the relational store. With DB_HOST set it connects to postgres,
// retrying for up to a minute while the database comes up; otherwise it falls
// back to a local sqlite file for development.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")

	var dial gorm.Dialector
	if host != "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, pass, name, port)
		dial = gpostgres.Open(dsn)
	} else {
		path := os.Getenv("DB_SQLITE_PATH")
		if path == "" {
			path = "todo.db"
		}
		dial = gsqlite.Open(path)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&userentity.User{},
			&todoentity.Todo{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
