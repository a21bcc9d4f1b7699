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

type JobService interface {
	CreateJob(ctx context.Context, employer *model.User, req *dto.CreateJobDTO) (*model.Job, error)
	UpdateJob(ctx context.Context, employerID, jobID primitive.ObjectID, req *dto.UpdateJobDTO) error
	CloseJob(ctx context.Context, employerID, jobID primitive.ObjectID) error
	DeleteJob(ctx context.Context, employerID, jobID primitive.ObjectID) error
	ListJobs(ctx context.Context, query repository.JobListQuery) ([]*model.Job, error)
	ListEmployerJobs(ctx context.Context, employerID primitive.ObjectID) ([]*model.Job, error)

	// GetJob returns the posting and best-effort records a view event; a
	// failed analytics write never fails the read.
	GetJob(ctx context.Context, jobID primitive.ObjectID, source string, viewerID string) (*model.Job, error)
}

type jobServiceImpl struct {
	jobRepo   repository.JobRepo
	analytics AnalyticsService
}

func NewJobService(jobRepo repository.JobRepo, analytics AnalyticsService) JobService {
	return &jobServiceImpl{
		jobRepo:   jobRepo,
		analytics: analytics,
	}
}

func (s *jobServiceImpl) CreateJob(ctx context.Context, employer *model.User, req *dto.CreateJobDTO) (*model.Job, error) {
	company := employer.CompanyName
	if company == "" {
		company = employer.Name
	}

	now := time.Now()
	job := &model.Job{
		Title:        req.Title,
		Company:      company,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       model.JobStatusOpen,
		EmployerID:   employer.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, UnExpectedError
	}
	return job, nil
}

func (s *jobServiceImpl) UpdateJob(ctx context.Context, employerID, jobID primitive.ObjectID, req *dto.UpdateJobDTO) error {
	if _, err := s.ownedJob(ctx, employerID, jobID); err != nil {
		return err
	}

	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if len(fields) == 0 {
		return ErrParamInvalid
	}

	if err := s.jobRepo.Update(ctx, jobID, fields); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *jobServiceImpl) CloseJob(ctx context.Context, employerID, jobID primitive.ObjectID) error {
	if _, err := s.ownedJob(ctx, employerID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.SetStatus(ctx, jobID, model.JobStatusClosed); err != nil {
		return UnExpectedError
	}
	s.analytics.InvalidateReportCache(ctx, jobID)
	return nil
}

func (s *jobServiceImpl) DeleteJob(ctx context.Context, employerID, jobID primitive.ObjectID) error {
	if _, err := s.ownedJob(ctx, employerID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return UnExpectedError
	}
	s.analytics.InvalidateReportCache(ctx, jobID)
	return nil
}

func (s *jobServiceImpl) ListJobs(ctx context.Context, query repository.JobListQuery) ([]*model.Job, error) {
	jobs, err := s.jobRepo.List(ctx, query)
	if err != nil {
		return nil, UnExpectedError
	}
	return jobs, nil
}

func (s *jobServiceImpl) ListEmployerJobs(ctx context.Context, employerID primitive.ObjectID) ([]*model.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, UnExpectedError
	}
	return jobs, nil
}

func (s *jobServiceImpl) GetJob(ctx context.Context, jobID primitive.ObjectID, source string, viewerID string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, UnExpectedError
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if err := s.analytics.RecordView(ctx, jobID, source, viewerID); err != nil {
		log.ErrorContext(ctx, "view tracking failed", "job_id", jobID.Hex(), "err", err)
	}

	return job, nil
}

func (s *jobServiceImpl) ownedJob(ctx context.Context, employerID, jobID primitive.ObjectID) (*model.Job, error) {
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
	return job, nil
}
