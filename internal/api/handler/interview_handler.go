package handler

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/pkg/response"
	"careerbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewSvc service.InterviewService
}

func NewInterviewHandler(interviewSvc service.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewSvc: interviewSvc,
	}
}

func (s *InterviewHandler) Schedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	var req dto.ScheduleInterviewDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	interview, err := s.interviewSvc.Schedule(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, interview)
}

func (s *InterviewHandler) Reschedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	interviewID, err := pathObjectID(c, "interview_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.RescheduleInterviewDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.interviewSvc.Reschedule(c.Request.Context(), userID, interviewID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InterviewHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	interviewID, err := pathObjectID(c, "interview_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.interviewSvc.Cancel(c.Request.Context(), userID, interviewID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InterviewHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	interviewID, err := pathObjectID(c, "interview_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.interviewSvc.Complete(c.Request.Context(), userID, interviewID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InterviewHandler) ListByApplication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	appID, err := pathObjectID(c, "application_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	interviews, err := s.interviewSvc.ListByApplication(c.Request.Context(), userID, appID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, interviews)
}

func (s *InterviewHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	interviews, err := s.interviewSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, interviews)
}
