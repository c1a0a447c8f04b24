package repositories

import (
	"github.com/portfolio-simple/database"
	"github.com/portfolio-simple/models"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// FindRootsByProject retrieves the root comments of a project, newest
// first, each with its author and its direct replies (with their authors)
func (r *CommentRepository) FindRootsByProject(projectID string) ([]models.Comment, error) {
	var comments []models.Comment
	result := database.DB.
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Replies.User").
		Where("project_id = ? AND parent_id IS NULL", projectID).
		Order("created_at DESC").
		Find(&comments)
	return comments, result.Error
}

// FindByID retrieves a comment by its ID
func (r *CommentRepository) FindByID(id string) (models.Comment, error) {
	var comment models.Comment
	result := database.DB.First(&comment, "id = ?", id)
	return comment, result.Error
}

// Create inserts a new comment and returns it with its author loaded
func (r *CommentRepository) Create(comment models.Comment) (models.Comment, error) {
	if err := database.DB.Create(&comment).Error; err != nil {
		return comment, err
	}
	result := database.DB.Preload("User").First(&comment, "id = ?", comment.ID)
	return comment, result.Error
}

// UpdateContent replaces the content of a comment and returns it with
// its author loaded
func (r *CommentRepository) UpdateContent(id, content string) (models.Comment, error) {
	if err := database.DB.Model(&models.Comment{}).Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return models.Comment{}, err
	}
	var comment models.Comment
	result := database.DB.Preload("User").First(&comment, "id = ?", id)
	return comment, result.Error
}

// Delete removes a comment together with its replies
func (r *CommentRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, "id = ?", id).Error
	})
}
