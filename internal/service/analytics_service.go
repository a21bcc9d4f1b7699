package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/consts"
	"careerbridge/internal/pkg/redis"
	"careerbridge/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AnalyticsService interface {
	// RecordView tracks one view. Source defaults to "other"; viewerID, when
	// present, feeds unique-view dedup.
	RecordView(ctx context.Context, jobID primitive.ObjectID, source string, viewerID string) error
	RecordClickThrough(ctx context.Context, jobID primitive.ObjectID) error
	RecordApplication(ctx context.Context, jobID primitive.ObjectID, applicant *model.User) error
	GetJobAnalytics(ctx context.Context, jobID, employerID primitive.ObjectID) (*dto.JobAnalyticsDTO, error)

	// Backfill eagerly creates zeroed analytics records for every existing
	// job, returning how many jobs were touched.
	Backfill(ctx context.Context) (int, error)

	// InvalidateReportCache drops the cached read model for a job, used when
	// the job itself changes state (close, delete).
	InvalidateReportCache(ctx context.Context, jobID primitive.ObjectID)
}

type analyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepo
	jobRepo       repository.JobRepo
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepo, jobRepo repository.JobRepo) AnalyticsService {
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		jobRepo:       jobRepo,
	}
}

func (s *analyticsServiceImpl) RecordView(ctx context.Context, jobID primitive.ObjectID, source string, viewerID string) error {
	source = normalizeSource(source)
	now := time.Now()

	if err := s.analyticsRepo.EnsureForJob(ctx, jobID); err != nil {
		return UnExpectedError
	}

	if err := s.analyticsRepo.IncView(ctx, jobID, source, now); err != nil {
		return UnExpectedError
	}

	if viewerID != "" {
		isNew, err := s.analyticsRepo.AddViewer(ctx, jobID, viewerID)
		if err != nil {
			log.ErrorContext(ctx, "viewer dedup failed", "job_id", jobID.Hex(), "err", err)
		} else if isNew {
			if err := s.analyticsRepo.IncUniqueView(ctx, jobID); err != nil {
				log.ErrorContext(ctx, "unique view increment failed", "job_id", jobID.Hex(), "err", err)
			}
		}
	}

	s.invalidateCache(ctx, jobID)
	return nil
}

func (s *analyticsServiceImpl) RecordClickThrough(ctx context.Context, jobID primitive.ObjectID) error {
	if err := s.analyticsRepo.EnsureForJob(ctx, jobID); err != nil {
		return UnExpectedError
	}
	if err := s.analyticsRepo.IncClickThrough(ctx, jobID); err != nil {
		return UnExpectedError
	}
	s.invalidateCache(ctx, jobID)
	return nil
}

func (s *analyticsServiceImpl) RecordApplication(ctx context.Context, jobID primitive.ObjectID, applicant *model.User) error {
	if err := s.analyticsRepo.EnsureForJob(ctx, jobID); err != nil {
		return UnExpectedError
	}

	location := ""
	var skills []string
	if applicant != nil {
		location = applicant.Location
		skills = applicant.Skills
	}

	if err := s.analyticsRepo.IncApplication(ctx, jobID, time.Now(), location, skills); err != nil {
		return UnExpectedError
	}
	s.invalidateCache(ctx, jobID)
	return nil
}

func (s *analyticsServiceImpl) GetJobAnalytics(ctx context.Context, jobID, employerID primitive.ObjectID) (*dto.JobAnalyticsDTO, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, UnExpectedError
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.EmployerID != employerID {
		return nil, ErrNotJobOwner
	}

	key := consts.JobAnalyticsKey + jobID.Hex()
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var cached dto.JobAnalyticsDTO
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	rec, err := s.analyticsRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, UnExpectedError
	}

	result := toAnalyticsDTO(jobID, rec)

	if payload, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(payload), 5*time.Minute)
	}

	return result, nil
}

func (s *analyticsServiceImpl) Backfill(ctx context.Context) (int, error) {
	ids, err := s.jobRepo.ListIDs(ctx)
	if err != nil {
		return 0, UnExpectedError
	}

	count := 0
	for _, id := range ids {
		if err := s.analyticsRepo.EnsureForJob(ctx, id); err != nil {
			log.ErrorContext(ctx, "analytics backfill failed for job", "job_id", id.Hex(), "err", err)
			continue
		}
		count++
	}
	return count, nil
}

func (s *analyticsServiceImpl) InvalidateReportCache(ctx context.Context, jobID primitive.ObjectID) {
	s.invalidateCache(ctx, jobID)
}

func (s *analyticsServiceImpl) invalidateCache(ctx context.Context, jobID primitive.ObjectID) {
	_ = redis.DeleteKey(ctx, consts.JobAnalyticsKey+jobID.Hex())
}

// normalizeSource coerces anything outside the fixed source set to "other",
// keeping per-source counters summing to the total.
func normalizeSource(source string) string {
	if _, ok := consts.ViewSources[source]; ok {
		return source
	}
	return consts.SourceOther
}

func toAnalyticsDTO(jobID primitive.ObjectID, rec *model.JobAnalytics) *dto.JobAnalyticsDTO {
	result := &dto.JobAnalyticsDTO{
		JobID:          jobID.Hex(),
		ViewSources:    map[string]int64{},
		LocationRollup: map[string]int64{},
		SkillRollup:    map[string]int64{},
		Daily:          []dto.DailyBucketDTO{},
	}
	if rec == nil {
		return result
	}

	result.Views = rec.Views
	result.UniqueViews = rec.UniqueViews
	result.ClickThroughs = rec.ClickThroughs
	result.Applications = rec.Applications
	if rec.ViewSources != nil {
		result.ViewSources = rec.ViewSources
	}
	if rec.LocationRollup != nil {
		result.LocationRollup = rec.LocationRollup
	}
	if rec.SkillRollup != nil {
		result.SkillRollup = rec.SkillRollup
	}
	if len(rec.Daily) > 0 {
		dates := make([]string, 0, len(rec.Daily))
		for date := range rec.Daily {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			bucket := rec.Daily[date]
			result.Daily = append(result.Daily, dto.DailyBucketDTO{
				Date:         date,
				Views:        bucket.Views,
				Applications: bucket.Applications,
			})
		}
	}
	return result
}
