package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/services"
)

// ListComments returns the comment tree of a project
func ListComments(c *gin.Context) {
	comments, err := services.ListComments(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment posts a comment or a reply on a project
func CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content and userId are required"})
		return
	}

	comment, err := services.CreateComment(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// UpdateComment edits a comment's content. Only the owner may edit,
// and ownership is decided by the session identity, not the body.
func UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CommentId, content and userId are required"})
		return
	}

	comment, err := services.UpdateComment(req, c.GetString("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment. The requester's identity and role
// come from the session set by the auth middleware, never from the body.
func DeleteComment(c *gin.Context) {
	var req dto.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CommentId is required"})
		return
	}

	requesterID := c.GetString("userId")
	requesterRole := models.Role(c.GetString("role"))

	if err := services.DeleteComment(req.CommentID, requesterID, requesterRole); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
