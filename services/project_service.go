package services

import (
	"errors"

	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/repositories"
	"gorm.io/gorm"
)

var projectRepo = repositories.NewProjectRepository()

// ListProjects retrieves all projects, newest first
func ListProjects() ([]models.Project, error) {
	return projectRepo.FindAll()
}

// GetProject retrieves a single project by ID
func GetProject(id string) (models.Project, error) {
	project, err := projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	return project, nil
}

// CreateProject stores a new project
func CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		MoreURL:       req.MoreURL,
		DeploymentURL: req.DeploymentURL,
	}
	return projectRepo.Create(project)
}

// UpdateProject writes the provided fields of a project and returns the
// updated record. Fields absent from the request stay untouched.
func UpdateProject(id string, req dto.UpdateProjectRequest) (models.Project, error) {
	if _, err := GetProject(id); err != nil {
		return models.Project{}, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.MoreURL != nil {
		updates["more_url"] = *req.MoreURL
	}
	if req.DeploymentURL != nil {
		updates["deployment_url"] = *req.DeploymentURL
	}

	if len(updates) > 0 {
		if err := projectRepo.Update(id, updates); err != nil {
			return models.Project{}, err
		}
	}

	return projectRepo.FindByID(id)
}

// DeleteProject removes a project and its dependent comments and reactions
func DeleteProject(id string) error {
	exists, err := projectRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProjectNotFound
	}
	return projectRepo.Delete(id)
}
