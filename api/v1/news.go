package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/services"
)

// ListNews returns all news entries, newest first
func ListNews(c *gin.Context) {
	news, err := services.ListNews()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// CreateNews stores a new news entry (admin only)
func CreateNews(c *gin.Context) {
	var req dto.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content and image URL are required"})
		return
	}

	news, err := services.CreateNews(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

// UpdateNews rewrites a news entry named by the id in the body (admin only)
func UpdateNews(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID, title and content are required"})
		return
	}

	news, err := services.UpdateNews(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// DeleteNews removes a news entry named by the id in the body (admin only)
func DeleteNews(c *gin.Context) {
	var req dto.DeleteNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	if err := services.DeleteNews(req.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News entry deleted"})
}
