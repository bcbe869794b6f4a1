// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/commitlens/commitlens/schema"
)

// GitClient defines the operations needed to read commit history.
// This allows the statistics engine to be tested without a real git
// executable or repository.
type GitClient interface {
	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git
	// repository containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// GetCurrentBranch returns the name of the currently checked-out branch.
	GetCurrentBranch(ctx context.Context, repoPath string) (string, error)

	// GetCommitLog returns the raw commit log output for a branch,
	// already filtered to the requested date bounds. A zero time means
	// the bound is open.
	GetCommitLog(ctx context.Context, repoPath, branch string, since, until time.Time) ([]byte, error)
}

// CacheManager defines the interface for reaching the commit-log cache.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetLogStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
