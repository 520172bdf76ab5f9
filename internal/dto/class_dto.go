package dto

type CreateClassInput struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateClassStatusInput struct {
	Status string `json:"status" binding:"required,oneof=approved denied"`
}

type AddFeedbackInput struct {
	Feedback string `json:"feedback" binding:"required"`
}
