package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/internal/iocache"
	"github.com/commitlens/commitlens/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		RepoPath: "/repo",
		Branch:   "main",
		Location: time.UTC,
	}
}

func TestCachedCommitLogHit(t *testing.T) {
	cfg := testConfig()
	commits := []schema.RawCommit{
		{Hash: "abc", Author: "dev", Timestamp: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	data, err := json.Marshal(commits)
	require.NoError(t, err)

	client := &contract.MockGitClient{}
	client.On("GetRepoHash", mock.Anything, "/repo").Return("head123", nil)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return(data, currentCacheVersion, time.Now().Unix(), nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetLogStore").Return(store)

	got, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	assert.Equal(t, commits, got)

	// A cache hit never reaches the git log.
	client.AssertNotCalled(t, "GetCommitLog", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedCommitLogMissComputesAndStores(t *testing.T) {
	cfg := testConfig()
	logOutput := []byte("--abc|dev|2024-05-01T00:00:00Z\n3\t1\tmain.go\n")

	client := &contract.MockGitClient{}
	client.On("GetRepoHash", mock.Anything, "/repo").Return("head123", nil)
	client.On("GetCommitLog", mock.Anything, "/repo", "main", mock.Anything, mock.Anything).Return(logOutput, nil)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
	store.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetLogStore").Return(store)

	got, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0].Hash)
	assert.Equal(t, uint64(3), got[0].LinesAdded)

	store.AssertCalled(t, "Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything)
}

func TestCachedCommitLogStaleEntryIsRecomputed(t *testing.T) {
	cfg := testConfig()
	staleTs := time.Now().Add(-8 * 24 * time.Hour).Unix()
	logOutput := []byte("--fresh|dev|2024-05-01T00:00:00Z\n1\t0\tmain.go\n")

	client := &contract.MockGitClient{}
	client.On("GetRepoHash", mock.Anything, "/repo").Return("head123", nil)
	client.On("GetCommitLog", mock.Anything, "/repo", "main", mock.Anything, mock.Anything).Return(logOutput, nil)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return([]byte("[]"), currentCacheVersion, staleTs, nil)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetLogStore").Return(store)

	got, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].Hash)
}

func TestCachedCommitLogNilStoreFallsThrough(t *testing.T) {
	cfg := testConfig()
	logOutput := []byte("--abc|dev|2024-05-01T00:00:00Z\n")

	client := &contract.MockGitClient{}
	client.On("GetCommitLog", mock.Anything, "/repo", "main", mock.Anything, mock.Anything).Return(logOutput, nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetLogStore").Return(nil)

	got, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGenerateCacheKeyStable(t *testing.T) {
	cfg := testConfig()

	client := &contract.MockGitClient{}
	client.On("GetRepoHash", mock.Anything, "/repo").Return("head123", nil)

	k1 := generateCacheKey(context.Background(), cfg, client)
	k2 := generateCacheKey(context.Background(), cfg, client)
	assert.Equal(t, k1, k2)

	// A different window yields a different key.
	cfg2 := testConfig()
	cfg2.StartTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.NotEqual(t, k1, generateCacheKey(context.Background(), cfg2, client))
}
