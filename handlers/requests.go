package handlers

import (
	"net/http"

	"hostel-management-api/middleware"
	"hostel-management-api/models"
	"hostel-management-api/statemachine"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	Store *store.Store
}

type CreateRequestRequest struct {
	MealID   uint   `json:"meal_id" binding:"required"`
	UserName string `json:"user_name"`
}

// Create files a meal request for the authenticated user
func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
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

	request := models.Request{
		MealID:       meal.ID,
		MealTitle:    meal.Title,
		RequestEmail: middleware.GetEmail(c),
		UserName:     req.UserName,
		Status:       models.RequestPending,
	}
	if err := h.Store.CreateRequest(&request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal requested", "request": request})
}

// ListAll returns every meal request — admin only
func (h *RequestHandler) ListAll(c *gin.Context) {
	requests, err := h.Store.ListRequests(store.RequestFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

// Mine returns the caller's own requests
func (h *RequestHandler) Mine(c *gin.Context) {
	email := c.Param("email")
	if !middleware.RequireSelf(c, email) {
		return
	}
	requests, err := h.Store.RequestsByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

// Delete cancels the caller's own request
func (h *RequestHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	request, err := h.Store.RequestByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch request"})
		return
	}
	if request == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	if request.RequestEmail != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This request does not belong to you"})
		return
	}
	if err := h.Store.DeleteRequest(request.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}

// Serve marks a pending request as served — admin only
func (h *RequestHandler) Serve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	request, err := h.Store.RequestByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch request"})
		return
	}
	if request == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	if err := statemachine.CanServeRequest(request.Status, models.RequestServed); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "current_status": request.Status})
		return
	}
	if err := h.Store.UpdateRequestStatus(request.ID, models.RequestServed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request served"})
}

// Search filters requests by requester name or email — admin only
func (h *RequestHandler) Search(c *gin.Context) {
	requests, err := h.Store.ListRequests(store.RequestFilter{Value: c.Query("value")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}
