package schema

// Custom string types for type safety.
type (
	// Granularity is the bucket length for time-series reporting.
	Granularity string

	// OutputMode represents the format of the output.
	OutputMode string

	// CacheBackend represents the database backend for the commit-log cache.
	CacheBackend string

	// SourceMode represents how commit history is read.
	SourceMode string
)

// All granularities supported.
const (
	DayBucket      Granularity = "day"
	ThreeDayBucket Granularity = "3days"
	WeekBucket     Granularity = "week"
	MonthBucket    Granularity = "month"
	YearBucket     Granularity = "year"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     CacheBackend = "sqlite" // default
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// All commit sources supported.
const (
	GitLogSource SourceMode = "git" // default, shells out to the git binary
	GoGitSource  SourceMode = "gogit"
)

// AllGranularities lists every granularity in coarse-to-fine display order.
var AllGranularities = []Granularity{DayBucket, ThreeDayBucket, WeekBucket, MonthBucket, YearBucket}

// ValidGranularities lists all valid granularities.
var ValidGranularities = map[Granularity]struct{}{
	DayBucket:      {},
	ThreeDayBucket: {},
	WeekBucket:     {},
	MonthBucket:    {},
	YearBucket:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSourceModes lists all valid commit sources.
var ValidSourceModes = map[SourceMode]struct{}{
	GitLogSource: {},
	GoGitSource:  {},
}

// Label returns a short human-readable name for chart and table headers.
func (g Granularity) Label() string {
	switch g {
	case DayBucket:
		return "Daily"
	case ThreeDayBucket:
		return "Every 3 Days"
	case WeekBucket:
		return "Weekly"
	case MonthBucket:
		return "Monthly"
	case YearBucket:
		return "Yearly"
	default:
		return string(g)
	}
}

// DateFormat returns the bucket-label time layout for a granularity.
func (g Granularity) DateFormat() string {
	switch g {
	case MonthBucket:
		return "Jan 2006"
	case YearBucket:
		return "2006"
	default:
		return "2006-01-02"
	}
}
