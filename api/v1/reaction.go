package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/services"
)

// ListReactions returns all reactions on a project
func ListReactions(c *gin.Context) {
	reactions, err := services.ListReactions(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reactions)
}

// CreateReaction records a like on a project. A duplicate like from the
// same user is a conflict.
func CreateReaction(c *gin.Context) {
	var req dto.CreateReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "UserId is required"})
		return
	}

	reaction, err := services.AddReaction(c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reaction)
}

// DeleteReaction removes a user's like on a project
func DeleteReaction(c *gin.Context) {
	var req dto.DeleteReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "UserId is required"})
		return
	}

	if err := services.RemoveReaction(c.Param("id"), req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reaction deleted"})
}
