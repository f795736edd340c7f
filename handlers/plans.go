package handlers

import (
	"net/http"

	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	Store *store.Store
}

// List returns all membership plans (public)
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.Store.ListPlans("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(plans), "plans": plans})
}

// ByName returns the plans matching a name; a hit is a one-element list
func (h *PlanHandler) ByName(c *gin.Context) {
	plans, err := h.Store.ListPlans(c.Param("plan_name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(plans), "plans": plans})
}
