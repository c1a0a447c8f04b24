package repositories

import (
	"github.com/portfolio-simple/database"
	"github.com/portfolio-simple/models"
)

// ReactionRepository handles database operations for reactions
type ReactionRepository struct{}

// NewReactionRepository creates a new reaction repository instance
func NewReactionRepository() *ReactionRepository {
	return &ReactionRepository{}
}

// FindByProject retrieves all reactions for a project with their authors
func (r *ReactionRepository) FindByProject(projectID string) ([]models.Reaction, error) {
	var reactions []models.Reaction
	result := database.DB.Preload("User").
		Where("project_id = ?", projectID).
		Find(&reactions)
	return reactions, result.Error
}

// Create inserts a new reaction. The unique (user_id, project_id) index
// turns a duplicate like into gorm.ErrDuplicatedKey.
func (r *ReactionRepository) Create(reaction models.Reaction) (models.Reaction, error) {
	result := database.DB.Create(&reaction)
	return reaction, result.Error
}

// DeleteByUserAndProject removes the single matching reaction and
// reports how many rows were affected
func (r *ReactionRepository) DeleteByUserAndProject(userID, projectID string) (int64, error) {
	result := database.DB.
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&models.Reaction{})
	return result.RowsAffected, result.Error
}

// CountByProject counts reactions for a project
func (r *ReactionRepository) CountByProject(projectID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Reaction{}).
		Where("project_id = ?", projectID).
		Count(&count)
	return count, result.Error
}
