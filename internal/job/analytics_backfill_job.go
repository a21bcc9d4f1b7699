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

// AnalyticsBackfillJob creates zeroed analytics documents for jobs posted
// before tracking was enabled, so reads never miss.
type AnalyticsBackfillJob struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsBackfillJob(analyticsService service.AnalyticsService) *AnalyticsBackfillJob {
	return &AnalyticsBackfillJob{
		analyticsService: analyticsService,
	}
}

func (s *AnalyticsBackfillJob) Run() {
	traceID := "job-backfill-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	ok, err := redis.TryLock(ctx, consts.BackfillLockKey, traceID, 10*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "backfill lock error", "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "backfill already in progress, skipping")
		return
	}
	defer redis.UnLock(ctx, consts.BackfillLockKey, traceID)

	count, err := s.analyticsService.Backfill(ctx)
	if err != nil {
		log.ErrorContext(ctx, "analytics backfill error", "err", err)
		return
	}
	log.InfoContext(ctx, "analytics backfill finished", "jobs", count)
}
