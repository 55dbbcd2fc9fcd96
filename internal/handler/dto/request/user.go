package request

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=user employee admin"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user employee admin"`
}
