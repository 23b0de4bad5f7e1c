package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/config"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

type staticSource struct{ state app.State }

func (s staticSource) State() app.State { return s.state }

func TestParseDailyRunTime(t *testing.T) {
	assert.Equal(t, "30 7 * * *", parseDailyRunTime("07:30"))
	assert.Equal(t, "0 23 * * *", parseDailyRunTime("23:00"))
	assert.Equal(t, "0 8 * * *", parseDailyRunTime("noon"))
	assert.Equal(t, "0 8 * * *", parseDailyRunTime("25:00"))
}

func TestRunNow(t *testing.T) {
	now := time.Date(2024, 3, 21, 8, 0, 0, 0, time.UTC)
	msgs := []models.Message{{ID: "m1", LeadID: "l1", Type: models.ChannelSMS, Content: "hi", Status: models.MessageStatusSent}}
	src := staticSource{state: app.NewState(models.SeedProperties(), models.SeedLeads(), msgs)}

	s := NewScheduler(src, config.ReportConfig{})
	s.now = func() time.Time { return now }

	_, ok := s.LastReport()
	assert.False(t, ok)

	r := s.RunNow()
	assert.Equal(t, now, r.GeneratedAt)
	assert.Equal(t, 1900000.0, r.Stats.TotalValue)
	assert.Equal(t, 1, r.Stats.ActiveRentals)
	assert.Equal(t, 2, r.Stats.TotalLeads)
	assert.Equal(t, 1, r.MessagesSent)
	assert.Contains(t, r.ByStatus, dashboard.StatusCount{Status: models.PropertyStatusPending, Count: 1})

	last, ok := s.LastReport()
	require.True(t, ok)
	assert.Equal(t, r, last)
}

func TestStartDisabled(t *testing.T) {
	s := NewScheduler(staticSource{}, config.ReportConfig{Enabled: false})
	require.NoError(t, s.Start())
	assert.False(t, s.isRunning)
	s.Stop()
}

func TestStartEnabled(t *testing.T) {
	s := NewScheduler(staticSource{}, config.ReportConfig{Enabled: true, DailyRunTime: "06:15"})
	require.NoError(t, s.Start())
	assert.True(t, s.isRunning)
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
	assert.False(t, s.isRunning)
}
