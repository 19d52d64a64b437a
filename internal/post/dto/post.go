package dto

import "devconnector-backend/pkg/validation"

// TextRequest is the body for new posts and comments.
type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

var TextMessages = validation.Messages{
	"text": "Text is required",
}
