package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
)

// GetLeads returns leads under the stored lead search term; ?q= overrides it
func (h *Handler) GetLeads(c *gin.Context) {
	s := h.app.State()
	term := s.LeadSearch
	if q, ok := c.GetQuery("q"); ok {
		term = q
	}
	leads := dashboard.FilterLeads(s.Leads, term)
	c.JSON(http.StatusOK, gin.H{
		"term":  term,
		"leads": leadRows(s, leads),
		"count": len(leads),
	})
}

// SetLeadSearch stores the lead search term
func (h *Handler) SetLeadSearch(c *gin.Context) {
	var req searchTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.app.Dispatch(c.Request.Context(), app.SetLeadSearch{Term: req.Term}); err != nil {
		abortWithError(c, err)
		return
	}
	h.GetLeads(c)
}

// GetMessages returns the message log, most recent first
func (h *Handler) GetMessages(c *gin.Context) {
	s := h.app.State()
	c.JSON(http.StatusOK, gin.H{
		"messages": activityRows(s, s.Messages),
		"count":    len(s.Messages),
	})
}
