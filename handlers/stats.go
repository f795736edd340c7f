package handlers

import (
	"net/http"

	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Store *store.Store
}

// Dashboard returns per-collection counts plus total revenue — admin only
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.Store.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
