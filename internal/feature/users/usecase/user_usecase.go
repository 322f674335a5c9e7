package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todo_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUsernameTaken if the username is
	// already in use.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID. It returns ErrUserNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a user by username. It returns ErrUserNotFound if absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves every user in the store.
	FindAll(ctx context.Context) ([]entity.User, error)

	// Update overwrites an existing user record.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. It returns ErrUserNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// TodoPurger removes every todo owned by a user. It is implemented by the todos
// repository and consumed here for cascade deletes.
type TodoPurger interface {
	DeleteByUser(ctx context.Context, userID string) error
}

// TokenIssuer issues a signed bearer token for an authenticated user.
// The implementation lives in platform/jwt.
type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

// userUsecase implements account management and authentication business logic.
type userUsecase struct {
	users  UserRepository
	todos  TodoPurger
	tokens TokenIssuer
}

// NewUserUsecase creates a new userUsecase instance.
func NewUserUsecase(users UserRepository, todos TodoPurger, tokens TokenIssuer) *userUsecase {
	return &userUsecase{
		users:  users,
		todos:  todos,
		tokens: tokens,
	}
}

// Signup registers a new user with a hashed password.
// The email defaults to a placeholder derived from the username when omitted.
func (u *userUsecase) Signup(ctx context.Context, username, password, email string) (*entity.User, error) {
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if email == "" {
		email = username + "@example.com"
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the matching user.
// A bcrypt comparison runs even when the user does not exist, so lookup misses
// and password mismatches take comparable time.
func (u *userUsecase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when the user is missing.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates a user and returns a signed bearer token on success.
func (u *userUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// GetProfile retrieves a user by ID.
func (u *userUsecase) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdateProfile applies a partial update to a user's profile.
// Nil fields keep their prior value; UpdatedAt is refreshed on success.
func (u *userUsecase) UpdateProfile(ctx context.Context, id string, username, email *string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
	user.UpdatedAt = time.Now()

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteProfile removes a user and every todo they own.
/// The cascade is a sequence of independent deletes, not an atomic batch: a crash
// mid-sequence can leave orphaned todos.
func (u *userUsecase) DeleteProfile(ctx context.Context, id string) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := u.todos.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete owned todos: %w", err)
	}
	return u.users.Delete(ctx, id)
}

// ListAll returns every registered user.
func (u *userUsecase) ListAll(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}
