package repositories

import (
	"github.com/portfolio-simple/database"
	"github.com/portfolio-simple/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// CountByEmailOrPseudo counts users matching either identifier, used for
// the duplicate check at registration
func (r *UserRepository) CountByEmailOrPseudo(email, pseudo string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).
		Where("email = ? OR pseudo = ?", email, pseudo).
		Count(&count)
	return count, result.Error
}
