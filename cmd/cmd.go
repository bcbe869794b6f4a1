// Package cmd defines the command-line interface for commitlens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("branch", "b", "", "Branch to analyze (defaults to the checked-out branch)")
	rootCmd.PersistentFlags().String("since", "", "Lower date bound in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("until", "", "Upper date bound in ISO8601 or time ago")
	rootCmd.PersistentFlags().StringArrayP("merge", "m", nil, "Alias directive like 'a,b=>canonical' or 'alias=canonical' (repeatable)")
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "IANA timezone for bucket boundaries")
	rootCmd.PersistentFlags().String("granularity", "", "Comma-separated bucket granularities: day, 3days, week, month, year (default all)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("report-file", contract.DefaultReportFile, "Path for the HTML report")
	rootCmd.PersistentFlags().String("source", string(schema.GitLogSource), "History source: git (subprocess) or gogit (in-process)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}

// setViperDefaults sets defaults for all keys that have no flag default.
func setViperDefaults() {
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("source", schema.GitLogSource)
	viper.SetDefault("timezone", contract.DefaultTimezone)
	viper.SetDefault("report-file", contract.DefaultReportFile)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("color", "yes")
}
