package dto

type SendMessageDTO struct {
	RecipientID string `json:"recipientId" binding:"required"`
	JobID       string `json:"jobId,omitempty"`
	Body        string `json:"body" binding:"required,max=5000"`
}
