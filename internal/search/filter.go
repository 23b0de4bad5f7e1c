package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meilisearch/meilisearch-go"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

type FilterParams struct {
	Query    string
	Type     models.PropertyType
	Statuses []models.PropertyStatus
	MinPrice *float64
	MaxPrice *float64
	MinBeds  *int
	SortBy   string
	Limit    int64
}

// BuildFilter renders params as a Meilisearch filter expression
func BuildFilter(params FilterParams) string {
	var filters []string

	if params.Type != "" {
		filters = append(filters, fmt.Sprintf("type = '%s'", params.Type))
	}

	if len(params.Statuses) > 0 {
		statusFilters := make([]string, len(params.Statuses))
		for i, status := range params.Statuses {
			statusFilters[i] = fmt.Sprintf("status = '%s'", status)
		}
		filters = append(filters, fmt.Sprintf("(%s)", strings.Join(statusFilters, " OR ")))
	}

	if params.MinPrice != nil {
		filters = append(filters, "price >= "+formatNumber(*params.MinPrice))
	}
	if params.MaxPrice != nil {
		filters = append(filters, "price <= "+formatNumber(*params.MaxPrice))
	}
	if params.MinBeds != nil {
		filters = append(filters, fmt.Sprintf("beds >= %d", *params.MinBeds))
	}

	return strings.Join(filters, " AND ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sortFor maps a sort key to Meilisearch sort rules
func sortFor(sortBy string) []string {
	switch sortBy {
	case "price_asc":
		return []string{"price:asc"}
	case "price_desc":
		return []string{"price:desc"}
	case "sqft_desc":
		return []string{"sqft:desc"}
	}
	return nil
}

// FilterSearch performs search with filters
func (s *SearchClient) FilterSearch(params FilterParams) ([]models.Property, error) {
	if params.Limit <= 0 {
		params.Limit = defaultLimit
	}

	searchReq := &meilisearch.SearchRequest{
		Limit: params.Limit,
	}
	if filter := BuildFilter(params); filter != "" {
		searchReq.Filter = filter
	}
	if sort := sortFor(params.SortBy); len(sort) > 0 {
		searchReq.Sort = sort
	}

	searchRes, err := s.client.Index(s.index).Search(params.Query, searchReq)
	if err != nil {
		return nil, err
	}

	return decodeHits(searchRes.Hits), nil
}
