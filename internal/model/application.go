package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationAccepted    = "accepted"
)

type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID       primitive.ObjectID `bson:"job_id" json:"jobId"`
	SeekerID    primitive.ObjectID `bson:"seeker_id" json:"seekerId"`
	EmployerID  primitive.ObjectID `bson:"employer_id" json:"employerId"`
	CoverLetter string             `bson:"cover_letter,omitempty" json:"coverLetter,omitempty"`
	Status      string             `bson:"status" json:"status"`

	// Ratings accumulate in order; none overwrite previous ones.
	Ratings []InterviewRating `bson:"ratings,omitempty" json:"ratings,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// InterviewRating is one interviewer's scorecard for an application.
type InterviewRating struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	AuthorID   primitive.ObjectID `bson:"author_id" json:"authorId"`
	Scores     RatingScores       `bson:"scores" json:"scores"`
	Strengths  []string           `bson:"strengths,omitempty" json:"strengths,omitempty"`
	Weaknesses []string           `bson:"weaknesses,omitempty" json:"weaknesses,omitempty"`
	Feedback   string             `bson:"feedback" json:"feedback"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

// RatingScores are 1-5 across five fixed categories.
type RatingScores struct {
	Overall        int `bson:"overall" json:"overall"`
	Technical      int `bson:"technical" json:"technical"`
	Communication  int `bson:"communication" json:"communication"`
	CulturalFit    int `bson:"cultural_fit" json:"culturalFit"`
	ProblemSolving int `bson:"problem_solving" json:"problemSolving"`
}
