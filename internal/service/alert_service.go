package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"careerbridge/internal/repository"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlertService interface {
	CreateAlert(ctx context.Context, seekerID primitive.ObjectID, req *dto.CreateAlertDTO) (*model.Alert, error)
	UpdateAlert(ctx context.Context, seekerID, alertID primitive.ObjectID, req *dto.UpdateAlertDTO) error
	DeleteAlert(ctx context.Context, seekerID, alertID primitive.ObjectID) error
	ListAlerts(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Alert, error)

	// FindMatchingJobs returns jobs satisfying the alert, newest first,
	// capped. Query errors are logged and reported as zero matches.
	FindMatchingJobs(ctx context.Context, alert *model.Alert, since *time.Time) []*model.Job

	// PreviewMatches runs the matcher for an owned alert without sending
	// anything or touching last-sent state.
	PreviewMatches(ctx context.Context, seekerID, alertID primitive.ObjectID) ([]*model.Job, error)

	// ProcessAlerts runs one batch for a frequency. Per-alert failures are
	// isolated; one alert's failure never aborts the rest of the batch.
	ProcessAlerts(ctx context.Context, frequency string)
}

type alertServiceImpl struct {
	alertRepo repository.AlertRepo
	jobRepo   repository.JobRepo
	userRepo  repository.UserRepo
	notify    NotifyService
}

func NewAlertService(
	alertRepo repository.AlertRepo,
	jobRepo repository.JobRepo,
	userRepo repository.UserRepo,
	notify NotifyService,
) AlertService {
	return &alertServiceImpl{
		alertRepo: alertRepo,
		jobRepo:   jobRepo,
		userRepo:  userRepo,
		notify:    notify,
	}
}

func (s *alertServiceImpl) CreateAlert(ctx context.Context, seekerID primitive.ObjectID, req *dto.CreateAlertDTO) (*model.Alert, error) {
	alert := &model.Alert{
		SeekerID:  seekerID,
		Name:      req.Name,
		Keywords:  req.Keywords,
		Locations: req.Locations,
		JobTypes:  req.JobTypes,
		Salary:    req.Salary,
		Frequency: req.Frequency,
		Active:    true,
		CreatedAt: time.Now(),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, UnExpectedError
	}
	return alert, nil
}

func (s *alertServiceImpl) UpdateAlert(ctx context.Context, seekerID, alertID primitive.ObjectID, req *dto.UpdateAlertDTO) error {
	alert, err := s.ownedAlert(ctx, seekerID, alertID)
	if err != nil {
		return err
	}

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Keywords != nil {
		fields["keywords"] = req.Keywords
	}
	if req.Locations != nil {
		fields["locations"] = req.Locations
	}
	if req.JobTypes != nil {
		fields["job_types"] = req.JobTypes
	}
	if req.Salary != nil {
		fields["salary"] = req.Salary
	}
	if req.Frequency != nil {
		fields["frequency"] = *req.Frequency
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if len(fields) == 0 {
		return ErrParamInvalid
	}

	if err := s.alertRepo.Update(ctx, alert.ID, fields); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *alertServiceImpl) DeleteAlert(ctx context.Context, seekerID, alertID primitive.ObjectID) error {
	alert, err := s.ownedAlert(ctx, seekerID, alertID)
	if err != nil {
		return err
	}
	if err := s.alertRepo.Delete(ctx, alert.ID); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *alertServiceImpl) ListAlerts(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Alert, error) {
	alerts, err := s.alertRepo.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, UnExpectedError
	}
	return alerts, nil
}

func (s *alertServiceImpl) FindMatchingJobs(ctx context.Context, alert *model.Alert, since *time.Time) []*model.Job {
	jobs, err := s.jobRepo.FindMatching(ctx, alert, since)
	if err != nil {
		log.ErrorContext(ctx, "alert match query failed, treating as zero matches",
			"alert_id", alert.ID.Hex(), "err", err)
		return nil
	}
	return jobs
}

func (s *alertServiceImpl) PreviewMatches(ctx context.Context, seekerID, alertID primitive.ObjectID) ([]*model.Job, error) {
	alert, err := s.ownedAlert(ctx, seekerID, alertID)
	if err != nil {
		return nil, err
	}
	return s.FindMatchingJobs(ctx, alert, nil), nil
}

func (s *alertServiceImpl) ProcessAlerts(ctx context.Context, frequency string) {
	alerts, err := s.alertRepo.ListDue(ctx, frequency)
	if err != nil {
		log.ErrorContext(ctx, "load due alerts failed", "frequency", frequency, "err", err)
		return
	}

	log.InfoContext(ctx, "processing alerts", "frequency", frequency, "count", len(alerts))

	sent := 0
	for _, alert := range alerts {
		if s.processOne(ctx, alert) {
			sent++
		}
	}

	log.InfoContext(ctx, "alert batch finished", "frequency", frequency, "sent", sent)
}

// processOne runs matching and notification for one alert, reporting whether
// an email went out. All failure modes are contained here.
func (s *alertServiceImpl) processOne(ctx context.Context, alert *model.Alert) bool {
	// Capture "now" before matching so jobs created mid-run are seen by the
	// next tick rather than silently skipped.
	now := time.Now()

	seeker, err := s.userRepo.GetByID(ctx, alert.SeekerID)
	if err != nil {
		log.ErrorContext(ctx, "load alert owner failed", "alert_id", alert.ID.Hex(), "err", err)
		return false
	}
	if seeker == nil || !seeker.Settings.AlertsEnabled {
		return false
	}

	jobs := s.FindMatchingJobs(ctx, alert, alert.LastSentAt)
	if len(jobs) == 0 {
		return false
	}

	if !s.notify.SendAlert(ctx, seeker, alert, jobs) {
		return false
	}

	if err := s.alertRepo.AdvanceLastSent(ctx, alert.ID, now); err != nil {
		// Next tick re-matches from the stale timestamp; worst case is a
		// duplicate notification, never a missed one.
		log.ErrorContext(ctx, "advance last-sent failed", "alert_id", alert.ID.Hex(), "err", err)
	}
	return true
}

func (s *alertServiceImpl) ownedAlert(ctx context.Context, seekerID, alertID primitive.ObjectID) (*model.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return nil, UnExpectedError
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	if alert.SeekerID != seekerID {
		return nil, ErrNotAlertOwner
	}
	return alert, nil
}
