package consts

const (
	JobAnalyticsKey = "job:analytics:"
	TokenRevokedKey = "token:revoked:"
	AlertRunLockKey = "lock:alert:run:"
	BackfillLockKey = "lock:analytics:backfill"
)
