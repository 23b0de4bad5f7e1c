package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/search"
)

type propertyRow struct {
	models.Property
	DisplayPrice string `json:"displayPrice"`
}

func propertyRows(properties []models.Property) []propertyRow {
	rows := make([]propertyRow, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, propertyRow{Property: p, DisplayPrice: dashboard.FormatPrice(p)})
	}
	return rows
}

type searchTermRequest struct {
	Term string `json:"term"`
}

// GetInventory returns properties under the stored inventory search term
func (h *Handler) GetInventory(c *gin.Context) {
	s := h.app.State()
	inventory := s.Inventory()
	c.JSON(http.StatusOK, gin.H{
		"term":       s.PropertySearch,
		"properties": propertyRows(inventory),
		"count":      len(inventory),
		"dialogOpen": s.PropertyDialogOpen,
	})
}

// SetInventorySearch stores the inventory search term
func (h *Handler) SetInventorySearch(c *gin.Context) {
	var req searchTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.app.Dispatch(c.Request.Context(), app.SetPropertySearch{Term: req.Term}); err != nil {
		abortWithError(c, err)
		return
	}
	h.GetInventory(c)
}

// GetProperties filters properties by ?q= without touching the stored term
func (h *Handler) GetProperties(c *gin.Context) {
	properties := dashboard.FilterProperties(h.app.State().Properties, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"properties": propertyRows(properties),
		"count":      len(properties),
	})
}

func (h *Handler) GetProperty(c *gin.Context) {
	p, ok := dashboard.FindProperty(h.app.State().Properties, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, propertyRow{Property: p, DisplayPrice: dashboard.FormatPrice(p)})
}

// OpenPropertyDialog opens the Add Property placeholder
func (h *Handler) OpenPropertyDialog(c *gin.Context) {
	s, err := h.app.Dispatch(c.Request.Context(), app.OpenPropertyDialog{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dialogOpen": s.PropertyDialogOpen})
}

// DismissPropertyDialog closes the placeholder without creating anything
func (h *Handler) DismissPropertyDialog(c *gin.Context) {
	s, err := h.app.Dispatch(c.Request.Context(), app.DismissPropertyDialog{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dialogOpen": s.PropertyDialogOpen})
}

// SearchProperties runs a full-text search against the search index
func (h *Handler) SearchProperties(c *gin.Context) {
	if h.searcher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search is not enabled"})
		return
	}

	params, err := parseFilterParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	properties, err := h.searcher.FilterSearch(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":      params.Query,
		"properties": propertyRows(properties),
		"count":      len(properties),
	})
}

func parseFilterParams(c *gin.Context) (search.FilterParams, error) {
	params := search.FilterParams{
		Query:  c.Query("q"),
		Type:   models.PropertyType(c.Query("type")),
		SortBy: c.Query("sort"),
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return params, err
		}
		params.Limit = limit
	}
	if v := c.Query("status"); v != "" {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				params.Statuses = append(params.Statuses, models.PropertyStatus(s))
			}
		}
	}
	if v := c.Query("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.MinPrice = &f
	}
	if v := c.Query("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.MaxPrice = &f
	}
	if v := c.Query("min_beds"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, err
		}
		params.MinBeds = &n
	}
	return params, nil
}
