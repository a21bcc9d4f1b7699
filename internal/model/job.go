package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

type Job struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Company      string             `bson:"company" json:"company"`
	Location     string             `bson:"location" json:"location"`
	Type         string             `bson:"type" json:"type"`
	Salary       SalaryRange        `bson:"salary" json:"salary"`
	Description  string             `bson:"description" json:"description"`
	Requirements string             `bson:"requirements" json:"requirements"`
	Status       string             `bson:"status" json:"status"`
	EmployerID   primitive.ObjectID `bson:"employer_id" json:"employerId"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type SalaryRange struct {
	Min      int64  `bson:"min" json:"min"`
	Max      int64  `bson:"max" json:"max"`
	Currency string `bson:"currency" json:"currency"`
}
