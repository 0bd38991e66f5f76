package ports

import "time"

// Lookup outcomes recorded by ForecastMetrics.RecordLookup
const (
	LookupHit       = "hit"
	LookupMiss      = "miss"
	LookupStale     = "stale"
	LookupForced    = "forced"
	LookupCacheOnly = "cache_only"
)

// ForecastMetrics defines the contract for forecast cache tracking
type ForecastMetrics interface {
	RecordLookup(outcome string)
	RecordOperation(operation string, duration time.Duration)
	RecordFallback(success bool)
	SetDocumentEntries(dir string, entries int)
}

// UpstreamMetrics defines the contract for remote API call tracking
type UpstreamMetrics interface {
	RecordRequest(endpoint string, success bool, duration time.Duration)
	RecordRateLimitWait(endpoint string, duration time.Duration)
}
