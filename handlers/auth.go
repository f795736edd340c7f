package handlers

import (
	"net/http"

	"hostel-management-api/middleware"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken mints a JWT for a posted identity. Credential verification
// happens upstream (the frontend's identity provider); this endpoint only
// turns a verified identity into a session token.
func IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := middleware.GenerateToken(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
