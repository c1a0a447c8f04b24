package dto

// CreateCommentRequest represents the request payload for posting a comment.
// ParentID turns the comment into a reply to another comment of the
// same project.
type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	UserID   string  `json:"userId" binding:"required"`
	ParentID *string `json:"parentId"`
}

// UpdateCommentRequest represents the request payload for editing a comment
type UpdateCommentRequest struct {
	CommentID string `json:"commentId" binding:"required"`
	Content   string `json:"content" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
}

// DeleteCommentRequest names the comment to delete. The requester's
// identity and role come from the session, not from the body.
type DeleteCommentRequest struct {
	CommentID string `json:"commentId" binding:"required"`
}
