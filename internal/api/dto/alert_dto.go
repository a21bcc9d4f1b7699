package dto

import "careerbridge/internal/model"

type CreateAlertDTO struct {
	Name      string            `json:"name" binding:"required,max=100"`
	Keywords  []string          `json:"keywords,omitempty"`
	Locations []string          `json:"locations,omitempty"`
	JobTypes  []string          `json:"jobTypes,omitempty" binding:"omitempty,dive,oneof=full-time part-time contract internship"`
	Salary    *model.SalaryBand `json:"salary,omitempty"`
	Frequency string            `json:"frequency" binding:"required,oneof=daily weekly immediate"`
}

type UpdateAlertDTO struct {
	Name      *string           `json:"name,omitempty" binding:"omitempty,max=100"`
	Keywords  []string          `json:"keywords,omitempty"`
	Locations []string          `json:"locations,omitempty"`
	JobTypes  []string          `json:"jobTypes,omitempty" binding:"omitempty,dive,oneof=full-time part-time contract internship"`
	Salary    *model.SalaryBand `json:"salary,omitempty"`
	Frequency *string           `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly immediate"`
	Active    *bool             `json:"active,omitempty"`
}
