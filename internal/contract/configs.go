package contract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/commitlens/commitlens/schema"
)

// Default values for configuration.
const (
	DefaultTimezone   = "UTC"
	DefaultBranch     = "main"
	DefaultReportFile = "commitlens-report.html"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath  string
	Branch    string
	StartTime time.Time // zero means unbounded
	EndTime   time.Time // zero means unbounded

	// MergeDirectives are the raw alias directives in application order;
	// the statistics engine normalizes them into its alias table before
	// any commit is ingested.
	MergeDirectives []string

	TimezoneName  string
	Location      *time.Location
	Granularities []schema.Granularity

	Output     schema.OutputMode
	OutputFile string
	ReportFile string
	Source     schema.SourceMode
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	CacheBackend   schema.CacheBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Branch         string   `mapstructure:"branch"`
	Since          string   `mapstructure:"since"`
	Until          string   `mapstructure:"until"`
	Merge          []string `mapstructure:"merge"`
	Merges         []string `mapstructure:"merges"` // config-file only
	Timezone       string   `mapstructure:"timezone"`
	Granularity    string   `mapstructure:"granularity"`
	Output         string   `mapstructure:"output"`
	OutputFile     string   `mapstructure:"output-file"`
	ReportFile     string   `mapstructure:"report-file"`
	Source         string   `mapstructure:"source"`
	Width          int      `mapstructure:"width"`
	Color          string   `mapstructure:"color"`
	CacheBackend   string   `mapstructure:"cache-backend"`
	CacheDBConnect string   `mapstructure:"cache-db-connect"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.MergeDirectives != nil {
		clone.MergeDirectives = make([]string, len(c.MergeDirectives))
		copy(clone.MergeDirectives, c.MergeDirectives)
	}
	if c.Granularities != nil {
		clone.Granularities = make([]schema.Granularity, len(c.Granularities))
		copy(clone.Granularities, c.Granularities)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config. Anything that fails here is a
// configuration error and stops the run before any history is read.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	// --- 1. Output / Source Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. Must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.ReportFile = input.ReportFile
	if cfg.ReportFile == "" {
		cfg.ReportFile = DefaultReportFile
	}

	cfg.Source = schema.SourceMode(strings.ToLower(input.Source))
	if _, ok := schema.ValidSourceModes[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. Must be git or gogit", input.Source)
	}

	// --- 2. Timezone ---
	cfg.TimezoneName = input.Timezone
	if cfg.TimezoneName == "" {
		cfg.TimezoneName = DefaultTimezone
	}
	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.TimezoneName, err)
	}
	cfg.Location = loc

	// --- 3. Date Bounds ---
	now := time.Now().In(loc)
	if input.Since != "" {
		t, err := ParseDateInput(input.Since, now, loc)
		if err != nil {
			return fmt.Errorf("invalid --since value '%s'. Expected ISO date, RFC3339, or 'N <units> ago': %w", input.Since, err)
		}
		cfg.StartTime = t
	}
	if input.Until != "" {
		t, err := ParseDateInput(input.Until, now, loc)
		if err != nil {
			return fmt.Errorf("invalid --until value '%s'. Expected ISO date, RFC3339, or 'N <units> ago': %w", input.Until, err)
		}
		cfg.EndTime = t
	}
	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)", cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	}

	// --- 4. Granularities ---
	if input.Granularity == "" {
		cfg.Granularities = append([]schema.Granularity(nil), schema.AllGranularities...)
	} else {
		seen := make(map[schema.Granularity]bool)
		for part := range strings.SplitSeq(input.Granularity, ",") {
			g := schema.Granularity(strings.ToLower(strings.TrimSpace(part)))
			if g == "" {
				continue
			}
			if _, ok := schema.ValidGranularities[g]; !ok {
				return fmt.Errorf("invalid granularity '%s'. Must be day, 3days, week, month, year", part)
			}
			if !seen[g] {
				cfg.Granularities = append(cfg.Granularities, g)
				seen[g] = true
			}
		}
		if len(cfg.Granularities) == 0 {
			return fmt.Errorf("no granularity selected")
		}
	}

	// --- 5. Merge Directives ---
	// Config-file entries first, then flags, so a flag wins when the
	// same alias appears in both (last-write-wins).
	cfg.MergeDirectives = append(append([]string(nil), input.Merges...), input.Merge...)

	// --- 6. Cache Backend ---
	cfg.CacheBackend = schema.CacheBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. Must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect

	// --- 7. Colors / Width ---
	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value '%s': %w", input.Color, err)
	}
	cfg.UseColors = useColors
	cfg.Width = input.Width

	// --- 8. Repository Path and Branch Resolution ---
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	gitRoot, err := client.GetRepoRoot(ctx, searchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot

	cfg.Branch = strings.TrimSpace(input.Branch)
	if cfg.Branch == "" {
		branch, err := client.GetCurrentBranch(ctx, cfg.RepoPath)
		if err != nil || branch == "" || branch == "HEAD" {
			// Detached HEAD or unreadable; fall back to the conventional default.
			branch = DefaultBranch
		}
		cfg.Branch = branch
	}

	return nil
}
