package dto

import (
	"time"

	"todo_backend/internal/feature/users/domain/entity"
)

// UserResp is the outward representation of a user.
// The password hash is deliberately absent.
type UserResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResp converts a user entity into its outward representation.
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserRespList converts a slice of user entities.
func NewUserRespList(users []entity.User) []UserResp {
	out := make([]UserResp, 0, len(users))
	for i := range users {
		out = append(out, NewUserResp(&users[i]))
	}
	return out
}
