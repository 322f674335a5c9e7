package dto

// UpdateUserReq represents the request body for PUT /users/:id.
// Pointer fields distinguish "absent" from "set to empty": nil fields keep
// their stored value.
type UpdateUserReq struct {
	Username *string `json:"username" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
}
