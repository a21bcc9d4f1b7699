package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"careerbridge/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InterviewService interface {
	Schedule(ctx context.Context, employerID primitive.ObjectID, req *dto.ScheduleInterviewDTO) (*model.Interview, error)
	Reschedule(ctx context.Context, employerID, interviewID primitive.ObjectID, req *dto.RescheduleInterviewDTO) error
	Cancel(ctx context.Context, employerID, interviewID primitive.ObjectID) error
	Complete(ctx context.Context, employerID, interviewID primitive.ObjectID) error
	ListByApplication(ctx context.Context, userID, applicationID primitive.ObjectID) ([]*model.Interview, error)
	ListMine(ctx context.Context, userID primitive.ObjectID) ([]*model.Interview, error)
}

type interviewServiceImpl struct {
	interviewRepo repository.InterviewRepo
	appRepo       repository.ApplicationRepo
}

func NewInterviewService(interviewRepo repository.InterviewRepo, appRepo repository.ApplicationRepo) InterviewService {
	return &interviewServiceImpl{
		interviewRepo: interviewRepo,
		appRepo:       appRepo,
	}
}

func (s *interviewServiceImpl) Schedule(ctx context.Context, employerID primitive.ObjectID, req *dto.ScheduleInterviewDTO) (*model.Interview, error) {
	appID, err := primitive.ObjectIDFromHex(req.ApplicationID)
	if err != nil {
		return nil, ErrParamInvalid
	}

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

	now := time.Now()
	interview := &model.Interview{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		EmployerID:    app.EmployerID,
		SeekerID:      app.SeekerID,
		ScheduledAt:   req.ScheduledAt,
		Mode:          req.Mode,
		Location:      req.Location,
		MeetingLink:   req.MeetingLink,
		Notes:         req.Notes,
		Status:        model.InterviewScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, UnExpectedError
	}
	return interview, nil
}

func (s *interviewServiceImpl) Reschedule(ctx context.Context, employerID, interviewID primitive.ObjectID, req *dto.RescheduleInterviewDTO) error {
	interview, err := s.ownedInterview(ctx, employerID, interviewID)
	if err != nil {
		return err
	}
	if interview.Status == model.InterviewCancelled || interview.Status == model.InterviewCompleted {
		return ErrParamInvalid
	}

	fields := bson.M{
		"scheduled_at": req.ScheduledAt,
		"status":       model.InterviewRescheduled,
	}
	if req.Notes != "" {
		fields["notes"] = req.Notes
	}

	if err := s.interviewRepo.Update(ctx, interviewID, fields); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *interviewServiceImpl) Cancel(ctx context.Context, employerID, interviewID primitive.ObjectID) error {
	return s.setStatus(ctx, employerID, interviewID, model.InterviewCancelled)
}

func (s *interviewServiceImpl) Complete(ctx context.Context, employerID, interviewID primitive.ObjectID) error {
	return s.setStatus(ctx, employerID, interviewID, model.InterviewCompleted)
}

func (s *interviewServiceImpl) setStatus(ctx context.Context, employerID, interviewID primitive.ObjectID, status string) error {
	if _, err := s.ownedInterview(ctx, employerID, interviewID); err != nil {
		return err
	}
	if err := s.interviewRepo.Update(ctx, interviewID, bson.M{"status": status}); err != nil {
		return UnExpectedError
	}
	return nil
}

// ListByApplication is open to either side of the application.
func (s *interviewServiceImpl) ListByApplication(ctx context.Context, userID, applicationID primitive.ObjectID) ([]*model.Interview, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, UnExpectedError
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.EmployerID != userID && app.SeekerID != userID {
		return nil, ErrNotParticipant
	}

	interviews, err := s.interviewRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, UnExpectedError
	}
	return interviews, nil
}

func (s *interviewServiceImpl) ListMine(ctx context.Context, userID primitive.ObjectID) ([]*model.Interview, error) {
	interviews, err := s.interviewRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	return interviews, nil
}

func (s *interviewServiceImpl) ownedInterview(ctx context.Context, employerID, interviewID primitive.ObjectID) (*model.Interview, error) {
	interview, err := s.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, UnExpectedError
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}
	if interview.EmployerID != employerID {
		return nil, ErrNotJobOwner
	}
	return interview, nil
}
