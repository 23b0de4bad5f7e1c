package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

type statCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type leadRow struct {
	models.Lead
	Initials string `json:"initials"`
	Interest string `json:"interest"`
}

type activityRow struct {
	ID        string         `json:"id"`
	Line      string         `json:"line"`
	Channel   models.Channel `json:"channel"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
}

func statCards(s dashboard.Stats) []statCard {
	return []statCard{
		{Label: "Inventory Value", Value: dashboard.FormatInventoryValue(s.TotalValue)},
		{Label: "Active Rentals", Value: strconv.Itoa(s.ActiveRentals)},
		{Label: "Total Leads", Value: strconv.Itoa(s.TotalLeads)},
		{Label: "Conversion Rate", Value: dashboard.FormatConversionRate(s.ConversionRate)},
	}
}

func leadRows(s app.State, leads []models.Lead) []leadRow {
	rows := make([]leadRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, leadRow{
			Lead:     l,
			Initials: dashboard.Initials(l.Name),
			Interest: s.InterestTitle(l),
		})
	}
	return rows
}

func activityRows(s app.State, messages []models.Message) []activityRow {
	rows := make([]activityRow, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, activityRow{
			ID:        m.ID,
			Line:      dashboard.ActivityLine(m, s.Leads),
			Channel:   m.Type,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return rows
}

// SetView navigates to another section
func (h *Handler) SetView(c *gin.Context) {
	var req struct {
		View string `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.app.Dispatch(c.Request.Context(), app.Navigate{View: dashboard.View(req.View)})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activeView": s.ActiveView,
		"label":      s.ActiveView.Label(),
	})
}

// GetDashboard returns the dashboard section
func (h *Handler) GetDashboard(c *gin.Context) {
	s := h.app.State()
	stats := s.Stats()

	c.JSON(http.StatusOK, gin.H{
		"stats":          stats,
		"cards":          statCards(stats),
		"recentLeads":    leadRows(s, dashboard.RecentLeads(s.Leads, dashboard.RecentLimit)),
		"recentActivity": activityRows(s, dashboard.RecentMessages(s.Messages, dashboard.RecentLimit)),
	})
}

// GetDashboardChart renders properties by status as a PNG bar chart
func (h *Handler) GetDashboardChart(c *gin.Context) {
	png, err := renderStatusChart(dashboard.CountByStatus(h.app.State().Properties))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetCommunications returns the placeholder communications section
func (h *Handler) GetCommunications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   dashboard.CommunicationsTitle,
		"message": dashboard.CommunicationsMessage,
	})
}
