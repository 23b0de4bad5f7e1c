// Package dashboard derives display values from the current collections.
// Everything here is a pure function of its inputs.
package dashboard

import "github.com/gopalshiyal099-lang/Mahuva-property/internal/models"

// ConversionRate is a fixed placeholder until lead outcomes are tracked.
const ConversionRate = 12.5

// RecentLimit is how many rows the recent leads and recent activity panels show
const RecentLimit = 5

// Stats holds the headline numbers of the dashboard
type Stats struct {
	TotalValue     float64 `json:"totalValue"`
	ActiveRentals  int     `json:"activeRentals"`
	TotalLeads     int     `json:"totalLeads"`
	ConversionRate float64 `json:"conversionRate"`
}

// ComputeStats aggregates the property and lead collections
func ComputeStats(properties []models.Property, leads []models.Lead) Stats {
	stats := Stats{
		TotalLeads:     len(leads),
		ConversionRate: ConversionRate,
	}
	for i := range properties {
		p := &properties[i]
		if p.IsSale() {
			stats.TotalValue += p.Price
		}
		if p.IsAvailableRental() {
			stats.ActiveRentals++
		}
	}
	return stats
}

// StatusCount is the number of properties in one status
type StatusCount struct {
	Status models.PropertyStatus `json:"status"`
	Count  int                   `json:"count"`
}

// CountByStatus counts properties per status, in models.PropertyStatuses order
func CountByStatus(properties []models.Property) []StatusCount {
	counts := make(map[models.PropertyStatus]int, len(models.PropertyStatuses))
	for _, p := range properties {
		counts[p.Status]++
	}
	out := make([]StatusCount, 0, len(models.PropertyStatuses))
	for _, s := range models.PropertyStatuses {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}
