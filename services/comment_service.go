package services

import (
	"errors"

	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/repositories"
	"gorm.io/gorm"
)

var commentRepo = repositories.NewCommentRepository()

// ListComments retrieves the comment tree of a project: root comments
// newest first, each carrying its direct replies and author pseudos
func ListComments(projectID string) ([]models.Comment, error) {
	exists, err := projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProjectNotFound
	}
	return commentRepo.FindRootsByProject(projectID)
}

// CreateComment stores a comment or a reply on a project. A reply's
// parent must be a comment of the same project.
func CreateComment(projectID string, req dto.CreateCommentRequest) (models.Comment, error) {
	exists, err := projectRepo.Exists(projectID)
	if err != nil {
		return models.Comment{}, err
	}
	if !exists {
		return models.Comment{}, ErrProjectNotFound
	}

	if req.ParentID != nil {
		parent, err := commentRepo.FindByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Comment{}, ErrInvalidParent
			}
			return models.Comment{}, err
		}
		if parent.ProjectID != projectID {
			return models.Comment{}, ErrInvalidParent
		}
	}

	comment := models.Comment{
		Content:   req.Content,
		UserID:    req.UserID,
		ProjectID: projectID,
		ParentID:  req.ParentID,
	}
	return commentRepo.Create(comment)
}

// UpdateComment replaces the content of a comment. Only the owner may
// edit; admins have no override. Ownership is checked against the
// session identity, never against the body.
func UpdateComment(req dto.UpdateCommentRequest, requesterID string) (models.Comment, error) {
	comment, err := commentRepo.FindByID(req.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, ErrCommentNotFound
		}
		return models.Comment{}, err
	}

	if comment.UserID != requesterID {
		return models.Comment{}, ErrNotCommentOwner
	}

	return commentRepo.UpdateContent(req.CommentID, req.Content)
}

// DeleteComment removes a comment. The requester must own it or hold
// the admin role; both come from the session claims.
func DeleteComment(commentID, requesterID string, requesterRole models.Role) error {
	comment, err := commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != requesterID && requesterRole != models.RoleAdmin {
		return ErrCommentDeleteDeny
	}

	return commentRepo.Delete(commentID)
}
