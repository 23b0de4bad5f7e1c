package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

func TestComputeStatsSeed(t *testing.T) {
	stats := ComputeStats(models.SeedProperties(), models.SeedLeads())

	assert.Equal(t, 1900000.0, stats.TotalValue)
	assert.Equal(t, 1, stats.ActiveRentals)
	assert.Equal(t, 2, stats.TotalLeads)
	assert.Equal(t, ConversionRate, stats.ConversionRate)
}

func TestComputeStatsIgnoresRentalPrice(t *testing.T) {
	props := models.SeedProperties()
	before := ComputeStats(props, nil)

	props[1].Price = 999999
	after := ComputeStats(props, nil)

	assert.Equal(t, before.TotalValue, after.TotalValue)
}

func TestComputeStatsActiveRentalsOnlyAvailable(t *testing.T) {
	props := []models.Property{
		{ID: "a", Type: models.PropertyTypeRental, Status: models.PropertyStatusAvailable},
		{ID: "b", Type: models.PropertyTypeRental, Status: models.PropertyStatusRented},
		{ID: "c", Type: models.PropertyTypeSale, Status: models.PropertyStatusAvailable, Price: 10},
	}
	stats := ComputeStats(props, nil)
	assert.Equal(t, 1, stats.ActiveRentals)
	assert.Equal(t, 10.0, stats.TotalValue)
	assert.Equal(t, 0, stats.TotalLeads)
}

func TestComputeStatsIsRepeatable(t *testing.T) {
	props := models.SeedProperties()
	leads := models.SeedLeads()
	assert.Equal(t, ComputeStats(props, leads), ComputeStats(props, leads))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(models.SeedProperties())
	require.Len(t, counts, len(models.PropertyStatuses))
	assert.Equal(t, StatusCount{Status: models.PropertyStatusAvailable, Count: 2}, counts[0])
	assert.Equal(t, StatusCount{Status: models.PropertyStatusPending, Count: 1}, counts[3])
}

func TestRecentPanels(t *testing.T) {
	leads := make([]models.Lead, 7)
	for i := range leads {
		leads[i] = models.Lead{ID: string(rune('a' + i))}
	}
	recent := RecentLeads(leads, RecentLimit)
	require.Len(t, recent, 5)
	assert.Equal(t, "a", recent[0].ID)
	assert.Equal(t, "e", recent[4].ID)

	msgs := []models.Message{{ID: "new", Timestamp: time.Now()}, {ID: "old"}}
	assert.Equal(t, msgs, RecentMessages(msgs, RecentLimit))
	assert.Empty(t, RecentMessages(nil, RecentLimit))
}
