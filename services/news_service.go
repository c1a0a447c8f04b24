package services

import (
	"errors"

	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/repositories"
	"gorm.io/gorm"
)

var newsRepo = repositories.NewNewsRepository()

// ListNews retrieves all news entries, newest first
func ListNews() ([]models.News, error) {
	return newsRepo.FindAll()
}

// GetNews retrieves a single news entry by ID
func GetNews(id string) (models.News, error) {
	news, err := newsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.News{}, ErrNewsNotFound
		}
		return models.News{}, err
	}
	return news, nil
}

// CreateNews stores a new news entry
func CreateNews(req dto.CreateNewsRequest) (models.News, error) {
	news := models.News{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		MoreURL:  req.MoreURL,
	}
	return newsRepo.Create(news)
}

// UpdateNews writes the provided fields of a news entry and returns the
// updated record
func UpdateNews(req dto.UpdateNewsRequest) (models.News, error) {
	if _, err := GetNews(req.ID); err != nil {
		return models.News{}, err
	}

	updates := map[string]interface{}{
		"title":   req.Title,
		"content": req.Content,
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.MoreURL != nil {
		updates["more_url"] = *req.MoreURL
	}

	if err := newsRepo.Update(req.ID, updates); err != nil {
		return models.News{}, err
	}

	return newsRepo.FindByID(req.ID)
}

// DeleteNews removes a news entry
func DeleteNews(id string) error {
	if _, err := GetNews(id); err != nil {
		return err
	}
	return newsRepo.Delete(id)
}
