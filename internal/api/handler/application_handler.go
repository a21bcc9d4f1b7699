package handler

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/pkg/response"
	"careerbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appSvc  service.ApplicationService
	userSvc service.UserService
}

func NewApplicationHandler(appSvc service.ApplicationService, userSvc service.UserService) *ApplicationHandler {
	return &ApplicationHandler{
		appSvc:  appSvc,
		userSvc: userSvc,
	}
}

func (s *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	jobID, err := pathObjectID(c, "job_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ApplyDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	seeker, err := s.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	app, err := s.appSvc.Apply(c.Request.Context(), seeker, jobID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, app)
}

func (s *ApplicationHandler) ListByJob(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	jobID, err := pathObjectID(c, "job_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	apps, err := s.appSvc.ListByJob(c.Request.Context(), userID, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, apps)
}

func (s *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	apps, err := s.appSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, apps)
}

func (s *ApplicationHandler) UpdateStatus(c *gin.Context) {
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
	var req dto.UpdateApplicationStatusDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.appSvc.UpdateStatus(c.Request.Context(), userID, appID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ApplicationHandler) AddRating(c *gin.Context) {
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
	var req dto.AddRatingDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.appSvc.AddRating(c.Request.Context(), userID, appID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
