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

type ReviewHandler struct {
	Store *store.Store
}

type CreateReviewRequest struct {
	MealID   uint   `json:"meal_id" binding:"required"`
	UserName string `json:"user_name"`
	Text     string `json:"text" binding:"required"`
}

// Create posts a review. The author email always comes from the token.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Store.MealByID(req.MealID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}

	review := models.Review{
		MealID:    meal.ID,
		MealTitle: meal.Title,
		UserEmail: middleware.GetEmail(c),
		UserName:  req.UserName,
		Text:      req.Text,
	}
	if err := h.Store.CreateReview(&review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review posted", "review": review})
}

// ListAll returns every review — admin only
func (h *ReviewHandler) ListAll(c *gin.Context) {
	reviews, err := h.Store.ListReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// Mine returns the caller's own reviews
func (h *ReviewHandler) Mine(c *gin.Context) {
	email := c.Param("email")
	if !middleware.RequireSelf(c, email) {
		return
	}
	reviews, err := h.Store.ReviewsByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

type UpdateReviewRequest struct {
	Text string `json:"text" binding:"required"`
}

// Update replaces the review text — owner only
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, ok := h.ownedReview(c, id)
	if !ok {
		return
	}
	if err := h.Store.UpdateReviewText(review.ID, req.Text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
}

// Delete removes the caller's own review
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	review, ok := h.ownedReview(c, id)
	if !ok {
		return
	}
	if err := h.Store.DeleteReview(review.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// AdminDelete removes any review through the privileged path — admin only
func (h *ReviewHandler) AdminDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteReview(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// ownedReview fetches a review and verifies the caller wrote it. Returns
// false after writing the error response.
func (h *ReviewHandler) ownedReview(c *gin.Context, id uint) (*models.Review, bool) {
	review, err := h.Store.ReviewByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return nil, false
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return nil, false
	}
	if review.UserEmail != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This review does not belong to you"})
		return nil, false
	}
	return review, true
}
