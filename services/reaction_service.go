package services

import (
	"errors"

	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/repositories"
	"gorm.io/gorm"
)

var reactionRepo = repositories.NewReactionRepository()

// ListReactions retrieves all reactions for a project with their authors
func ListReactions(projectID string) ([]models.Reaction, error) {
	return reactionRepo.FindByProject(projectID)
}

// AddReaction records a like. The insert is the duplicate check: the
// unique (user, project) index rejects a second like atomically.
func AddReaction(projectID, userID string) (models.Reaction, error) {
	exists, err := projectRepo.Exists(projectID)
	if err != nil {
		return models.Reaction{}, err
	}
	if !exists {
		return models.Reaction{}, ErrProjectNotFound
	}

	reaction, err := reactionRepo.Create(models.Reaction{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Reaction{}, ErrReactionExists
		}
		return models.Reaction{}, err
	}
	return reaction, nil
}

// RemoveReaction deletes the requesting user's like on a project
func RemoveReaction(projectID, userID string) error {
	rows, err := reactionRepo.DeleteByUserAndProject(userID, projectID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrReactionNotFound
	}
	return nil
}
