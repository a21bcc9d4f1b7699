package handler

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/pkg/response"
	"careerbridge/internal/repository"
	"careerbridge/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobSvc  service.JobService
	userSvc service.UserService
}

func NewJobHandler(jobSvc service.JobService, userSvc service.UserService) *JobHandler {
	return &JobHandler{
		jobSvc:  jobSvc,
		userSvc: userSvc,
	}
}

func (s *JobHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	var req dto.CreateJobDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	employer, err := s.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	job, err := s.jobSvc.CreateJob(c.Request.Context(), employer, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (s *JobHandler) Update(c *gin.Context) {
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
	var req dto.UpdateJobDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.jobSvc.UpdateJob(c.Request.Context(), userID, jobID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *JobHandler) Close(c *gin.Context) {
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
	if err := s.jobSvc.CloseJob(c.Request.Context(), userID, jobID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *JobHandler) Delete(c *gin.Context) {
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
	if err := s.jobSvc.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// List is the public browse endpoint.
func (s *JobHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("pageSize", "20"), 10, 64)

	query := repository.JobListQuery{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Page:     page,
		PageSize: pageSize,
	}

	jobs, err := s.jobSvc.ListJobs(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.JobListDTO{
		Jobs:     jobs,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
}

func (s *JobHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	jobs, err := s.jobSvc.ListEmployerJobs(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, jobs)
}

// Get serves a single posting and counts the view. Anonymous viewers may
// carry a session id in the viewerId query param for unique-view dedup.
func (s *JobHandler) Get(c *gin.Context) {
	jobID, err := pathObjectID(c, "job_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	viewerID := c.GetString("user_id")
	if viewerID == "" {
		viewerID = c.Query("viewerId")
	}

	job, err := s.jobSvc.GetJob(c.Request.Context(), jobID, c.Query("source"), viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}
