package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cacheTTL defines how long a cached commit log stays fresh.
const cacheTTL = 7 * 24 * time.Hour

// cachedCommitLog retrieves the parsed commit stream for a repo/branch
// window, reading through the commit-log cache when one is configured.
// Only the raw parsed history is cached, never computed statistics, so
// alias directives and granularity choices can vary run to run without
// invalidating entries.
func cachedCommitLog(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) ([]schema.RawCommit, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetLogStore()
	}
	if store == nil {
		// Fallback to direct retrieval
		return readCommitLog(ctx, cfg, client)
	}

	key := generateCacheKey(ctx, cfg, client)

	// Check for cache hit
	if commits := checkCacheHit(store, key); commits != nil {
		return commits, nil
	}

	// Cache miss: read and store
	return readAndStore(ctx, cfg, client, store, key)
}

// readCommitLog fetches and parses the commit log directly from git.
func readCommitLog(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.RawCommit, error) {
	out, err := client.GetCommitLog(ctx, cfg.RepoPath, cfg.Branch, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return nil, fmt.Errorf("cannot read commit log: %w", err)
	}
	return ParseCommitLog(out), nil
}

// checkCacheHit attempts to retrieve and validate a cached commit stream
func checkCacheHit(store contract.CacheStore, key string) []schema.RawCommit {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheTTL {
			var commits []schema.RawCommit
			if err := json.Unmarshal(data, &commits); err == nil {
				return commits // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// readAndStore fetches the commit log and stores it in cache
func readAndStore(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.CacheStore, key string) ([]schema.RawCommit, error) {
	commits, err := readCommitLog(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	// Store in cache
	if data, err := json.Marshal(commits); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return commits, nil
}

// generateCacheKey creates a unique key based on the log window
func generateCacheKey(ctx context.Context, cfg *contract.Config, client contract.GitClient) string {
	// Include repo hash to invalidate cache when repository state changes
	repoHash, err := client.GetRepoHash(ctx, cfg.RepoPath)
	if err != nil {
		repoHash = ""
	}

	key := fmt.Sprintf("%s:%s:%d:%d:%s",
		cfg.RepoPath,
		cfg.Branch,
		cfg.StartTime.Unix(),
		cfg.EndTime.Unix(),
		repoHash,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
