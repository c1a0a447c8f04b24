package dto

// CreateNewsRequest represents the request payload for creating a news entry
type CreateNewsRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL string  `json:"imageUrl" binding:"required"`
	MoreURL  *string `json:"moreUrl"`
}

// UpdateNewsRequest carries the target id in the body, matching the
// flat /news resource surface
type UpdateNewsRequest struct {
	ID       string  `json:"id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
	MoreURL  *string `json:"moreUrl"`
}

// DeleteNewsRequest represents the request payload for deleting a news entry
type DeleteNewsRequest struct {
	ID string `json:"id" binding:"required"`
}
