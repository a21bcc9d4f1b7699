package dto

import "careerbridge/internal/model"

type ApplyDTO struct {
	CoverLetter string `json:"coverLetter,omitempty" binding:"omitempty,max=5000"`
}

type UpdateApplicationStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed shortlisted rejected accepted"`
}

type AddRatingDTO struct {
	Overall        int      `json:"overall" binding:"required,min=1,max=5"`
	Technical      int      `json:"technical" binding:"required,min=1,max=5"`
	Communication  int      `json:"communication" binding:"required,min=1,max=5"`
	CulturalFit    int      `json:"culturalFit" binding:"required,min=1,max=5"`
	ProblemSolving int      `json:"problemSolving" binding:"required,min=1,max=5"`
	Strengths      []string `json:"strengths,omitempty"`
	Weaknesses     []string `json:"weaknesses,omitempty"`
	Feedback       string   `json:"feedback" binding:"required,max=5000"`
}

// ApplicationDTO augments the stored record with rating averages.
type ApplicationDTO struct {
	Application *model.Application `json:"application"`
	Averages    *RatingAveragesDTO `json:"ratingAverages,omitempty"`
}

type RatingAveragesDTO struct {
	Overall        float64 `json:"overall"`
	Technical      float64 `json:"technical"`
	Communication  float64 `json:"communication"`
	CulturalFit    float64 `json:"culturalFit"`
	ProblemSolving float64 `json:"problemSolving"`
	Count          int     `json:"count"`
}
