package dto

type IssueTokenInput struct {
	Email string `json:"email" binding:"required,email"`
	// Profile fields the frontend sends along; ignored by token issuance.
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type IssueTokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
