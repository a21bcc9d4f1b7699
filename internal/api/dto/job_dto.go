package dto

import "careerbridge/internal/model"

type CreateJobDTO struct {
	Title        string            `json:"title" binding:"required,max=200"`
	Location     string            `json:"location" binding:"required,max=100"`
	Type         string            `json:"type" binding:"required,oneof=full-time part-time contract internship"`
	Salary       model.SalaryRange `json:"salary"`
	Description  string            `json:"description" binding:"required"`
	Requirements string            `json:"requirements"`
}

type UpdateJobDTO struct {
	Title        *string            `json:"title,omitempty" binding:"omitempty,max=200"`
	Location     *string            `json:"location,omitempty" binding:"omitempty,max=100"`
	Type         *string            `json:"type,omitempty" binding:"omitempty,oneof=full-time part-time contract internship"`
	Salary       *model.SalaryRange `json:"salary,omitempty"`
	Description  *string            `json:"description,omitempty"`
	Requirements *string            `json:"requirements,omitempty"`
}

type JobListDTO struct {
	Jobs     []*model.Job `json:"jobs"`
	Page     int64        `json:"page"`
	PageSize int64        `json:"pageSize"`
}
