package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hostel-management-api/middleware"
	"hostel-management-api/models"
	"hostel-management-api/statemachine"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealHandler struct {
	Store *store.Store
}

// List returns meals filtered by optional search/category/price params (public)
func (h *MealHandler) List(c *gin.Context) {
	filter := store.MealFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	if v := c.Query("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
			return
		}
		filter.MinPrice = &min
	}
	if v := c.Query("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		filter.MaxPrice = &max
	}

	meals, err := h.Store.ListMeals(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// Get returns a single meal by id
func (h *MealHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	meal, err := h.Store.MealByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

type CreateMealRequest struct {
	Title       string            `json:"title" binding:"required"`
	Category    string            `json:"category"`
	Image       string            `json:"image"`
	Ingredients string            `json:"ingredients"`
	Description string            `json:"description"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	Status      models.MealStatus `json:"status"`
}

// Create adds a meal to the catalog — admin only. The distributor fields come
// from the authenticated admin, not the payload.
func (h *MealHandler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := middleware.GetEmail(c)
	admin, err := h.Store.UserByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch distributor"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.MealPublished
	}
	meal := models.Meal{
		Title:            req.Title,
		Category:         req.Category,
		Image:            req.Image,
		Ingredients:      req.Ingredients,
		Description:      req.Description,
		Price:            req.Price,
		Status:           status,
		DistributorEmail: email,
	}
	if admin != nil {
		meal.DistributorName = admin.Name
	}
	if status == models.MealPublished {
		now := time.Now()
		meal.PostTime = &now
	}

	if err := h.Store.CreateMeal(&meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal created", "meal": meal})
}

// Update patches meal fields — admin only. Only catalog fields may change;
// counters and lifecycle fields go through their dedicated endpoints.
func (h *MealHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"title": true, "category": true, "image": true,
		"ingredients": true, "description": true, "price": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields in payload"})
		return
	}

	if err := h.Store.UpdateMeal(id, update); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated"})
}

// Delete removes a meal — admin only
func (h *MealHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteMeal(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}

// Like bumps the like counter atomically (anonymous)
func (h *MealHandler) Like(c *gin.Context) {
	h.increment(c, h.Store.IncrementLikes)
}

// ReviewCount bumps the review counter atomically (anonymous)
func (h *MealHandler) ReviewCount(c *gin.Context) {
	h.increment(c, h.Store.IncrementReviewsCount)
}

func (h *MealHandler) increment(c *gin.Context, inc func(uint) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := inc(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update counter"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Counter updated"})
}

// Publish moves an upcoming meal into the catalog and stamps its post time — admin only
func (h *MealHandler) Publish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	meal, err := h.Store.MealByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err := statemachine.CanPublishMeal(meal.Status, models.MealPublished); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "current_status": meal.Status})
		return
	}
	if err := h.Store.PublishMeal(id, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal published"})
}

// Sorted returns the catalog ordered by a whitelisted column — admin only
func (h *MealHandler) Sorted(c *gin.Context) {
	spec := store.SortSpec{
		SortBy: c.DefaultQuery("sortBy", "likes"),
		Order:  c.Query("order"),
	}
	meals, err := h.Store.SortedMeals(spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}
