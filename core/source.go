package core

import (
	"context"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/schema"
)

// fetchCommits dispatches to the configured history source. The git
// subprocess source reads through the commit-log cache; the go-git
// source is in-process and always reads fresh.
func fetchCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) ([]schema.RawCommit, error) {
	switch cfg.Source {
	case schema.GoGitSource:
		return contract.ReadCommitsGoGit(ctx, cfg.RepoPath, cfg.Branch, cfg.StartTime, cfg.EndTime)
	default:
		return cachedCommitLog(ctx, cfg, client, mgr)
	}
}
