package dto

// TrackViewDTO is the request-handler shape of a view event. ViewerID is an
// opaque identifier (user id or anonymous session id) used for uniqueness.
type TrackViewDTO struct {
	Source   string `json:"source,omitempty"`
	ViewerID string `json:"viewerId,omitempty"`
}

// JobAnalyticsDTO is the employer-facing read model. The internal viewer
// dedup set never leaves the storage layer.
type JobAnalyticsDTO struct {
	JobID          string              `json:"jobId"`
	Views          int64               `json:"views"`
	UniqueViews    int64               `json:"uniqueViews"`
	ClickThroughs  int64               `json:"clickThroughs"`
	Applications   int64               `json:"applications"`
	ViewSources    map[string]int64 `json:"viewSources"`
	LocationRollup map[string]int64 `json:"locationRollup"`
	SkillRollup    map[string]int64 `json:"skillRollup"`
	Daily          []DailyBucketDTO `json:"daily"`
}

// DailyBucketDTO is one day of the time series, oldest first.
type DailyBucketDTO struct {
	Date         string `json:"date"`
	Views        int64  `json:"views"`
	Applications int64  `json:"applications"`
}
