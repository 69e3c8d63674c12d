package dto

// ChangeRoleRequest changes a user's role (admin only)
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=student company admin"`
}

// AdminUserResponse is the trimmed user row shown in admin listings
type AdminUserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
