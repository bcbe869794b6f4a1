package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/commitlens/commitlens/schema"
)

// ReadCommitsGoGit reads the commit stream in-process with go-git, for
// hosts without a git binary on PATH. It honors the same contract as
// the subprocess log source: an ordered stream already filtered to the
// requested branch and date bounds. Merge commits are included, same as
// 'git log'.
func ReadCommitsGoGit(ctx context.Context, repoPath, branch string, since, until time.Time) ([]schema.RawCommit, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open repository at %q: %w", repoPath, err)
	}

	ref, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve branch %q: %w", branch, err)
	}

	logOpts := &git.LogOptions{
		From:  ref.Hash(),
		Order: git.LogOrderCommitterTime,
	}
	if !since.IsZero() {
		logOpts.Since = &since
	}
	if !until.IsZero() {
		logOpts.Until = &until
	}

	iter, err := repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("cannot read log for branch %q: %w", branch, err)
	}
	defer iter.Close()

	var commits []schema.RawCommit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw := schema.RawCommit{
			Hash:      c.Hash.String(),
			Author:    c.Author.Name,
			Timestamp: c.Author.When,
		}

		// Stats diffs against the first parent, matching what numstat
		// reports for non-merge commits. Root commits diff against the
		// empty tree.
		if stats, statErr := c.Stats(); statErr == nil {
			for _, fs := range stats {
				raw.LinesAdded += uint64(fs.Addition)
				raw.LinesDeleted += uint64(fs.Deletion)
			}
		}

		commits = append(commits, raw)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error while iterating commits: %w", err)
	}

	return commits, nil
}
