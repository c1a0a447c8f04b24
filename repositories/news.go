package repositories

import (
	"github.com/portfolio-simple/database"
	"github.com/portfolio-simple/models"
)

// NewsRepository handles database operations for news entries
type NewsRepository struct{}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository() *NewsRepository {
	return &NewsRepository{}
}

// FindAll retrieves all news entries, newest first
func (r *NewsRepository) FindAll() ([]models.News, error) {
	var news []models.News
	result := database.DB.Order("created_at DESC").Find(&news)
	return news, result.Error
}

// FindByID retrieves a news entry by its ID
func (r *NewsRepository) FindByID(id string) (models.News, error) {
	var news models.News
	result := database.DB.First(&news, "id = ?", id)
	return news, result.Error
}

// Create inserts a new news entry into the database
func (r *NewsRepository) Create(news models.News) (models.News, error) {
	result := database.DB.Create(&news)
	return news, result.Error
}

// Update writes the given columns of a news entry
func (r *NewsRepository) Update(id string, updates map[string]interface{}) error {
	return database.DB.Model(&models.News{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a news entry
func (r *NewsRepository) Delete(id string) error {
	return database.DB.Delete(&models.News{}, "id = ?", id).Error
}
