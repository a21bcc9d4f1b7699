package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
	FrequencyImmediate = "immediate"
)

// Alert is one saved search a job seeker wants monitored. The scheduler never
// creates or deletes alerts; it only advances LastSentAt after a successful
// send.
type Alert struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SeekerID  primitive.ObjectID `bson:"seeker_id" json:"seekerId"`
	Name      string             `bson:"name" json:"name"`
	Keywords  []string           `bson:"keywords,omitempty" json:"keywords,omitempty"`
	Locations []string           `bson:"locations,omitempty" json:"locations,omitempty"`
	JobTypes  []string           `bson:"job_types,omitempty" json:"jobTypes,omitempty"`
	Salary    *SalaryBand        `bson:"salary,omitempty" json:"salary,omitempty"`
	Frequency string             `bson:"frequency" json:"frequency"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`

	// LastSentAt gates which jobs count as "new" for the next run. Once set
	// it only moves forward.
	LastSentAt *time.Time `bson:"last_sent_at,omitempty" json:"lastSentAt,omitempty"`
}

// SalaryBand is the seeker-side salary criterion. A zero Min means "from 0";
// a zero Max means "no upper bound".
type SalaryBand struct {
	Min      int64  `bson:"min" json:"min"`
	Max      int64  `bson:"max" json:"max"`
	Currency string `bson:"currency,omitempty" json:"currency,omitempty"`
}
