package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InterviewScheduled   = "scheduled"
	InterviewRescheduled = "rescheduled"
	InterviewCancelled   = "cancelled"
	InterviewCompleted   = "completed"
)

const (
	InterviewModeOnsite = "onsite"
	InterviewModeVideo  = "video"
	InterviewModePhone  = "phone"
)

type Interview struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ApplicationID primitive.ObjectID `bson:"application_id" json:"applicationId"`
	JobID         primitive.ObjectID `bson:"job_id" json:"jobId"`
	EmployerID    primitive.ObjectID `bson:"employer_id" json:"employerId"`
	SeekerID      primitive.ObjectID `bson:"seeker_id" json:"seekerId"`
	ScheduledAt   time.Time          `bson:"scheduled_at" json:"scheduledAt"`
	Mode          string             `bson:"mode" json:"mode"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	MeetingLink   string             `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
