package cron

import (
	"careerbridge/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	dailyAlert  *job.AlertJob
	weeklyAlert *job.AlertJob
	hourlyAlert *job.AlertJob
	backfill    *job.AnalyticsBackfillJob
}

func NewCronManager(dailyAlert, weeklyAlert, hourlyAlert *job.AlertJob, backfill *job.AnalyticsBackfillJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		dailyAlert:  dailyAlert,
		weeklyAlert: weeklyAlert,
		hourlyAlert: hourlyAlert,
		backfill:    backfill,
	}
}

// RegisterJobs wires every schedule. Daily and weekly digests go out at 08:00
// server time; immediate alerts are polled hourly.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("0 0 8 * * *", s.dailyAlert); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 0 8 * * MON", s.weeklyAlert); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 0 * * * *", s.hourlyAlert); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 30 3 * * *", s.backfill); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
