package consts

// BaseURL is the context key carrying the request-derived portal base URL.
const BaseURL = "base_url"

// ViewSources is the closed set of view attribution tags. Anything outside
// the set is coerced to SourceOther so per-source counters always sum to the
// total view counter.
const (
	SourceDirect         = "direct"
	SourceSearch         = "search"
	SourceRecommendation = "recommendation"
	SourceEmail          = "email"
	SourceOther          = "other"
)

var ViewSources = map[string]struct{}{
	SourceDirect:         {},
	SourceSearch:         {},
	SourceRecommendation: {},
	SourceEmail:          {},
	SourceOther:          {},
}

// MatchLimit caps how many jobs a single alert run may report.
const MatchLimit = 10
