package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/services"
)

// Contact relays a contact form submission to the site owner by mail
func Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, subject and message are required"})
		return
	}

	if err := services.SendContactMessage(req); err != nil {
		log.Printf("failed to send contact mail from %s: %v", req.From, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}
