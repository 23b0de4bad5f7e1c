// Package scheduler runs the daily dashboard stats report.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/config"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
)

// StateSource provides the current dashboard state
type StateSource interface {
	State() app.State
}

// Report is one run of the stats report
type Report struct {
	GeneratedAt  time.Time               `json:"generatedAt"`
	Stats        dashboard.Stats         `json:"stats"`
	ByStatus     []dashboard.StatusCount `json:"byStatus"`
	MessagesSent int                     `json:"messagesSent"`
}

// BuildReport summarises s at now
func BuildReport(s app.State, now time.Time) Report {
	return Report{
		GeneratedAt:  now,
		Stats:        s.Stats(),
		ByStatus:     dashboard.CountByStatus(s.Properties),
		MessagesSent: len(s.Messages),
	}
}

// Scheduler handles the scheduled report
type Scheduler struct {
	cron      *cron.Cron
	source    StateSource
	config    config.ReportConfig
	now       func() time.Time
	isRunning bool

	mu   sync.Mutex
	last *Report
}

// NewScheduler creates a new scheduler
func NewScheduler(source StateSource, cfg config.ReportConfig) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		source: source,
		config: cfg,
		now:    time.Now,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		log.Println("Scheduler: Daily report is disabled in configuration")
		return nil
	}

	cronSpec := parseDailyRunTime(s.config.DailyRunTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		s.RunNow()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: Started with daily report at %s (cron: %s)", s.config.DailyRunTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		<-s.cron.Stop().Done()
		s.isRunning = false
		log.Println("Scheduler: Stopped")
	}
}

// RunNow builds and logs the report immediately
func (s *Scheduler) RunNow() Report {
	r := BuildReport(s.source.State(), s.now())
	log.Printf("Scheduler: Report %s: inventory %s, %d active rentals, %d leads, conversion %s, %d messages sent",
		r.GeneratedAt.Format(time.RFC3339),
		dashboard.FormatInventoryValue(r.Stats.TotalValue),
		r.Stats.ActiveRentals,
		r.Stats.TotalLeads,
		dashboard.FormatConversionRate(r.Stats.ConversionRate),
		r.MessagesSent,
	)

	s.mu.Lock()
	s.last = &r
	s.mu.Unlock()
	return r
}

// LastReport returns the most recent report, if any ran
func (s *Scheduler) LastReport() (Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Report{}, false
	}
	return *s.last, true
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "08:00" -> "0 8 * * *"
func parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	log.Printf("Scheduler: Failed to parse time '%s', using default 08:00", timeStr)
	return "0 8 * * *"
}
