package request

// CreateUserRequest represents a staff account creation request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=64,alphanum"`
	FullName string `json:"full_name" binding:"required,min=1,max=255"`
	Password string `json:"password" binding:"required,min=6"`
	PIN      string `json:"pin" binding:"omitempty,min=4,max=8,numeric"`
	Role     string `json:"role" binding:"required,oneof=admin staff waiter"`
}

// UpdateUserRequest represents a staff account update request.
// Sending an empty pin string removes PIN access.
type UpdateUserRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	PIN      *string `json:"pin" binding:"omitempty"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin staff waiter"`
	Active   *bool   `json:"active"`
}
