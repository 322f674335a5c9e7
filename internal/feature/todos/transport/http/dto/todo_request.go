// Package dto defines data transfer objects for the todos feature's HTTP transport layer.
package dto

// CreateTodoReq represents the request body for POST /todos/.
// Status is optional; the service defaults it to "pending".
type CreateTodoReq struct {
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
}

// UpdateTodoReq represents the request body for PUT /todos/:id.
// Pointer fields distinguish "absent" from "set to empty": nil fields keep
// their stored value.
type UpdateTodoReq struct {
	Description *string `json:"description" binding:"omitempty,min=1"`
	Status      *string `json:"status"`
}
