package schema

import "time"

// CacheStatus carries status information about the commit-log cache.
type CacheStatus struct {
	Backend         CacheBackend
	Connected       bool
	TotalEntries    int64
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
