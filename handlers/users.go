package handlers

import (
	"errors"
	"net/http"

	"hostel-management-api/middleware"
	"hostel-management-api/models"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	Store *store.Store
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Badge string `json:"badge"`
}

// Register creates a user account keyed by email. Registering an existing
// email again is a no-op; the response carries a null insertedId so the
// client can tell the two cases apart.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Badge: req.Badge,
	}
	created, err := h.Store.CreateUserIfAbsent(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID})
}

// List returns users filtered by optional name/email search terms — admin only
func (h *UserHandler) List(c *gin.Context) {
	filter := store.UserFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}
	users, err := h.Store.ListUsers(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// GetByEmail returns a single user profile
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.Store.UserByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// AdminFlag reports whether the caller is an admin. A user may only ask
// about their own email, whatever their role.
func (h *UserHandler) AdminFlag(c *gin.Context) {
	email := c.Param("email")
	if !middleware.RequireSelf(c, email) {
		return
	}
	admin, err := h.Store.IsAdmin(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

type BadgeRequest struct {
	Badge string `json:"badge" binding:"required"`
}

// UpdateBadge sets a user's badge — admin only
func (h *UserHandler) UpdateBadge(c *gin.Context) {
	var req BadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.UpdateBadge(c.Param("email"), req.Badge); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update badge"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Badge updated"})
}

// Promote grants the admin role by user id — admin only
func (h *UserHandler) Promote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.PromoteToAdmin(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User promoted to admin"})
}
