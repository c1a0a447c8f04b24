package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/services"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(
		"access_token", // name
		token,          // value
		maxAge,         // max age
		"/",            // path
		"",             // domain
		true,           // secure (HTTPS only)
		true,           // httpOnly (not accessible via JS)
	)
}

// Register handles user registration and opens a session
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := services.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := services.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, token, sessionCookieMaxAge)

	c.JSON(http.StatusCreated, gin.H{
		"token":     token,
		"user":      user,
		"expiresAt": expiresAt,
	})
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	setSessionCookie(c, authResponse.Token, sessionCookieMaxAge)
	c.JSON(http.StatusOK, authResponse)
}

// GetCurrentUser returns the currently authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := services.GetUser(userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
