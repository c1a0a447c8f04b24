package dto

// CreateReactionRequest represents the request payload for liking a project
type CreateReactionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// DeleteReactionRequest represents the request payload for removing a like
type DeleteReactionRequest struct {
	UserID string `json:"userId" binding:"required"`
}
