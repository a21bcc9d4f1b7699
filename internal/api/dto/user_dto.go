package dto

import "careerbridge/internal/model"

type RegisterDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=SEEKER EMPLOYER"`
	Name     string `json:"name" binding:"required,max=100"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResultDTO struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type UpdateProfileDTO struct {
	Name       *string            `json:"name,omitempty" binding:"omitempty,max=100"`
	Headline   *string            `json:"headline,omitempty" binding:"omitempty,max=200"`
	Location   *string            `json:"location,omitempty" binding:"omitempty,max=100"`
	Skills     []string           `json:"skills,omitempty"`
	Experience []model.Experience `json:"experience,omitempty"`
	Education  []model.Education  `json:"education,omitempty"`

	CompanyName        *string `json:"companyName,omitempty" binding:"omitempty,max=100"`
	CompanyWebsite     *string `json:"companyWebsite,omitempty" binding:"omitempty,max=200"`
	CompanyDescription *string `json:"companyDescription,omitempty" binding:"omitempty,max=2000"`
}

type UpdateSettingsDTO struct {
	AlertsEnabled *bool `json:"alertsEnabled" binding:"required"`
}
