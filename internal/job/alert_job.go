package job

import (
	"careerbridge/internal/pkg/consts"
	"careerbridge/internal/pkg/logger"
	"careerbridge/internal/pkg/redis"
	"careerbridge/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// AlertJob runs the alert pipeline for one frequency. The cron manager holds
// one instance per schedule.
type AlertJob struct {
	alertService service.AlertService
	frequency    string
}

func NewAlertJob(alertService service.AlertService, frequency string) *AlertJob {
	return &AlertJob{
		alertService: alertService,
		frequency:    frequency,
	}
}

func (s *AlertJob) Run() {
	traceID := "job-alert-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// One runner per frequency across instances; the lock outlives any sane
	// batch duration.
	lockKey := consts.AlertRunLockKey + s.frequency
	ok, err := redis.TryLock(ctx, lockKey, traceID, 10*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "alert run lock error", "frequency", s.frequency, "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "alert run already in progress, skipping", "frequency", s.frequency)
		return
	}
	defer redis.UnLock(ctx, lockKey, traceID)

	start := time.Now()
	log.InfoContext(ctx, "alert run started", "frequency", s.frequency)

	s.alertService.ProcessAlerts(ctx, s.frequency)

	log.InfoContext(ctx, "alert run finished", "frequency", s.frequency, "elapsed", time.Since(start).String())
}
