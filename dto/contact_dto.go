package dto

// ContactRequest represents a contact form submission relayed by mail
type ContactRequest struct {
	From    string `json:"from" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
