package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"careerbridge/internal/repository"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationService interface {
	Apply(ctx context.Context, seeker *model.User, jobID primitive.ObjectID, req *dto.ApplyDTO) (*model.Application, error)
	ListByJob(ctx context.Context, employerID, jobID primitive.ObjectID) ([]*dto.ApplicationDTO, error)
	ListMine(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Application, error)
	UpdateStatus(ctx context.Context, employerID, appID primitive.ObjectID, status string) error
	AddRating(ctx context.Context, employerID, appID primitive.ObjectID, req *dto.AddRatingDTO) (*dto.ApplicationDTO, error)
}

type applicationServiceImpl struct {
	appRepo   repository.ApplicationRepo
	jobRepo   repository.JobRepo
	analytics AnalyticsService
}

func NewApplicationService(
	appRepo repository.ApplicationRepo,
	jobRepo repository.JobRepo,
	analytics AnalyticsService,
) ApplicationService {
	return &applicationServiceImpl{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		analytics: analytics,
	}
}

func (s *applicationServiceImpl) Apply(ctx context.Context, seeker *model.User, jobID primitive.ObjectID, req *dto.ApplyDTO) (*model.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, UnExpectedError
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.Status != model.JobStatusOpen {
		return nil, ErrJobClosed
	}

	existing, err := s.appRepo.GetByJobAndSeeker(ctx, jobID, seeker.ID)
	if err != nil {
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrApplicationExists
	}

	now := time.Now()
	app := &model.Application{
		JobID:       jobID,
		SeekerID:    seeker.ID,
		EmployerID:  job.EmployerID,
		CoverLetter: req.CoverLetter,
		Status:      model.ApplicationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, UnExpectedError
	}

	// The application is already committed; analytics lag is acceptable.
	if err := s.analytics.RecordApplication(ctx, jobID, seeker); err != nil {
		log.ErrorContext(ctx, "application tracking failed", "job_id", jobID.Hex(), "err", err)
	}

	return app, nil
}

func (s *applicationServiceImpl) ListByJob(ctx context.Context, employerID, jobID primitive.ObjectID) ([]*dto.ApplicationDTO, error) {
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

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, UnExpectedError
	}

	result := make([]*dto.ApplicationDTO, 0, len(apps))
	for _, app := range apps {
		result = append(result, &dto.ApplicationDTO{
			Application: app,
			Averages:    RatingAverages(app.Ratings),
		})
	}
	return result, nil
}

func (s *applicationServiceImpl) ListMine(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Application, error) {
	apps, err := s.appRepo.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, UnExpectedError
	}
	return apps, nil
}

func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, employerID, appID primitive.ObjectID, status string) error {
	if _, err := s.ownedApplication(ctx, employerID, appID); err != nil {
		return err
	}
	if err := s.appRepo.SetStatus(ctx, appID, status); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *applicationServiceImpl) AddRating(ctx context.Context, employerID, appID primitive.ObjectID, req *dto.AddRatingDTO) (*dto.ApplicationDTO, error) {
	if _, err := s.ownedApplication(ctx, employerID, appID); err != nil {
		return nil, err
	}

	rating := model.InterviewRating{
		ID:       primitive.NewObjectID(),
		AuthorID: employerID,
		Scores: model.RatingScores{
			Overall:        req.Overall,
			Technical:      req.Technical,
			Communication:  req.Communication,
			CulturalFit:    req.CulturalFit,
			ProblemSolving: req.ProblemSolving,
		},
		Strengths:  req.Strengths,
		Weaknesses: req.Weaknesses,
		Feedback:   req.Feedback,
		CreatedAt:  time.Now(),
	}

	if err := s.appRepo.AppendRating(ctx, appID, rating); err != nil {
		return nil, UnExpectedError
	}

	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil || app == nil {
		return nil, UnExpectedError
	}

	return &dto.ApplicationDTO{
		Application: app,
		Averages:    RatingAverages(app.Ratings),
	}, nil
}

// RatingAverages computes per-dimension means over every rating on file.
// Returns nil when no ratings exist so callers can omit the section.
func RatingAverages(ratings []model.InterviewRating) *dto.RatingAveragesDTO {
	if len(ratings) == 0 {
		return nil
	}

	var overall, technical, communication, culturalFit, problemSolving int
	for _, r := range ratings {
		overall += r.Scores.Overall
		technical += r.Scores.Technical
		communication += r.Scores.Communication
		culturalFit += r.Scores.CulturalFit
		problemSolving += r.Scores.ProblemSolving
	}

	n := float64(len(ratings))
	return &dto.RatingAveragesDTO{
		Overall:        float64(overall) / n,
		Technical:      float64(technical) / n,
		Communication:  float64(communication) / n,
		CulturalFit:    float64(culturalFit) / n,
		ProblemSolving: float64(problemSolving) / n,
		Count:          len(ratings),
	}
}

func (s *applicationServiceImpl) ownedApplication(ctx context.Context, employerID, appID primitive.ObjectID) (*model.Application, error) {
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, UnExpectedError
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.EmployerID != employerID {
		return nil, ErrNotJobOwner
	}
	return app, nil
}
