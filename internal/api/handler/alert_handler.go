package handler

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/pkg/response"
	"careerbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertSvc service.AlertService
}

func NewAlertHandler(alertSvc service.AlertService) *AlertHandler {
	return &AlertHandler{
		alertSvc: alertSvc,
	}
}

func (s *AlertHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	var req dto.CreateAlertDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	alert, err := s.alertSvc.CreateAlert(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, alert)
}

func (s *AlertHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	alertID, err := pathObjectID(c, "alert_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.UpdateAlertDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.alertSvc.UpdateAlert(c.Request.Context(), userID, alertID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AlertHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	alertID, err := pathObjectID(c, "alert_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.alertSvc.DeleteAlert(c.Request.Context(), userID, alertID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AlertHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	alerts, err := s.alertSvc.ListAlerts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, alerts)
}

// Preview runs the matcher for one alert without sending anything.
func (s *AlertHandler) Preview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	alertID, err := pathObjectID(c, "alert_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	jobs, err := s.alertSvc.PreviewMatches(c.Request.Context(), userID, alertID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, jobs)
}
