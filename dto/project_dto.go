package dto

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	ImageURL      string  `json:"imageUrl" binding:"required"`
	MoreURL       *string `json:"moreUrl"`
	DeploymentURL *string `json:"deploymentUrl"`
}

// UpdateProjectRequest represents the request payload for updating an
// existing project. Fields left out of the body are not written.
type UpdateProjectRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"imageUrl"`
	MoreURL       *string `json:"moreUrl"`
	DeploymentURL *string `json:"deploymentUrl"`
}
