package handler

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/pkg/response"
	"careerbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// TrackView is the explicit tracking endpoint for clients that render
// postings without fetching them through the API.
func (s *AnalyticsHandler) TrackView(c *gin.Context) {
	jobID, err := pathObjectID(c, "job_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.TrackViewDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	viewerID := c.GetString("user_id")
	if viewerID == "" {
		viewerID = req.ViewerID
	}

	if err := s.analyticsSvc.RecordView(c.Request.Context(), jobID, req.Source, viewerID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// TrackClick counts a click-through on an external apply link.
func (s *AnalyticsHandler) TrackClick(c *gin.Context) {
	jobID, err := pathObjectID(c, "job_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.analyticsSvc.RecordClickThrough(c.Request.Context(), jobID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Get serves the employer-facing analytics read model.
func (s *AnalyticsHandler) Get(c *gin.Context) {
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
	result, err := s.analyticsSvc.GetJobAnalytics(c.Request.Context(), jobID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
