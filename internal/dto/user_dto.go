package dto

type RegisterUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
	Role     string `json:"role" binding:"omitempty,oneof=student instructor admin"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required,oneof=student instructor admin"`
}
