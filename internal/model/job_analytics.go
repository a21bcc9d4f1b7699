package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobAnalytics is the 1:1 counter record for a job, created lazily on the
// first tracked event. Every mutation is an atomic field-level update; the
// document is never read-modified-written by application code.
type JobAnalytics struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID         primitive.ObjectID `bson:"job_id" json:"jobId"`
	Views         int64              `bson:"views" json:"views"`
	UniqueViews   int64              `bson:"unique_views" json:"uniqueViews"`
	ClickThroughs int64              `bson:"click_throughs" json:"clickThroughs"`
	Applications  int64              `bson:"applications" json:"applications"`

	// ViewSources sums to Views at all times; untagged views land on "other".
	ViewSources map[string]int64 `bson:"view_sources,omitempty" json:"viewSources,omitempty"`

	// Demographic rollups, incremented from applicant profiles.
	LocationRollup map[string]int64 `bson:"location_rollup,omitempty" json:"locationRollup,omitempty"`
	SkillRollup    map[string]int64 `bson:"skill_rollup,omitempty" json:"skillRollup,omitempty"`

	// Daily is keyed by util.DateKey dates, so a day's bucket is created and
	// incremented by the same $inc and can never be duplicated.
	Daily map[string]DailyCounters `bson:"daily,omitempty" json:"daily,omitempty"`

	// Viewers backs unique-view dedup. Internal; excluded from read DTOs.
	Viewers []string `bson:"viewers,omitempty" json:"-"`

	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// DailyCounters is one calendar day's event counts. The date lives in the
// parent map's key.
type DailyCounters struct {
	Views        int64 `bson:"views" json:"views"`
	Applications int64 `bson:"applications" json:"applications"`
}
