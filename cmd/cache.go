package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/internal/iocache"
	"github.com/commitlens/commitlens/schema"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.CacheBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by analysis commands. This avoids Git repo validation
// and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the commit-log cache (improves performance)",
	Long: `Manage the commit-log cache that speeds up repeated runs.

Commitlens caches parsed commit history per repo, branch and window so
repeated runs skip the git log walk. Alias directives and granularity
choices never invalidate entries; only repository changes do.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Run cache schema migrations

Examples:
  # Check cache status
  commitlens cache status

  # Clear cache after a history rewrite
  commitlens cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached commit history",
	Long: `Delete all cached commit history from the configured backend.

Use this when:
- Repository history was rewritten (rebase, force push)
- Cache may be stale or corrupted
- Testing performance without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  commitlens cache clear

  # Clear MySQL cache (set connection string via env variable)
  COMMITLENS_CACHE_BACKEND=mysql COMMITLENS_CACHE_DB_CONNECT="..." commitlens cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the commit-log cache.

Displays:
- Backend type and connection status
- Total number of cached entries
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  commitlens cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetLogStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd runs cache schema migrations.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run cache schema migrations",
	Long: `Apply schema migrations to the commit-log cache database.

By default migrates to the latest version. Use --target-version to pin
a specific version or roll back:

  # Migrate to the latest version
  commitlens cache migrate

  # Roll back all migrations
  commitlens cache migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.CacheBackend(viper.GetString("cache-backend"))
		connStr := viper.GetString("cache-db-connect")
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(backend, connStr, targetVersion); err != nil {
			contract.LogFatal("Failed to run cache migrations", err)
		}
	},
}
