package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRateLimitStats returns the generation rate limiter's current counts
func (h *Handler) GetRateLimitStats(c *gin.Context) {
	if h.limiter == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	c.JSON(http.StatusOK, h.limiter.GetStats())
}

// RunReport runs the stats report immediately
func (h *Handler) RunReport(c *gin.Context) {
	if h.reporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Scheduler not available"})
		return
	}
	log.Println("Admin: Manual report trigger requested")
	c.JSON(http.StatusOK, h.reporter.RunNow())
}
