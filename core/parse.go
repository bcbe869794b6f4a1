package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/commitlens/commitlens/schema"
)

// ParseCommitLog parses the raw output of
//
//	git log <branch> --numstat --pretty=format:'--%H|%aN|%ad' --date=iso-strict
//
// into an ordered commit stream. Each commit header line starts with
// "--" and carries hash, author name and ISO timestamp; the numstat
// lines that follow are summed into the commit's line deltas. Binary
// file rows report "-" and count as zero. Commit order in the output is
// preserved.
func ParseCommitLog(out []byte) []schema.RawCommit {
	var commits []schema.RawCommit

	for line := range strings.SplitSeq(string(out), "\n") {
		line = strings.Trim(line, " \t\r\n'")

		if strings.HasPrefix(line, "--") {
			if c, ok := parseCommitHeader(line); ok {
				commits = append(commits, c)
			}
			continue
		}
		if line == "" || len(commits) == 0 {
			continue
		}

		added, deleted, ok := parseNumstatLine(line)
		if !ok {
			continue
		}
		cur := &commits[len(commits)-1]
		cur.LinesAdded += added
		cur.LinesDeleted += deleted
	}

	return commits
}

// parseCommitHeader extracts hash, author and timestamp from a commit
// header line. Lines that do not parse are dropped rather than guessed at.
func parseCommitHeader(line string) (schema.RawCommit, bool) {
	if len(line) < 5 { // --h|a|d minimum
		return schema.RawCommit{}, false
	}
	parts := strings.SplitN(line[2:], "|", 3) // hash|author|date
	if len(parts) != 3 {
		return schema.RawCommit{}, false
	}
	ts, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return schema.RawCommit{}, false
	}
	return schema.RawCommit{Hash: parts[0], Author: parts[1], Timestamp: ts}, true
}

// parseNumstatLine parses one "added\tdeleted\tpath" row.
func parseNumstatLine(line string) (added, deleted uint64, ok bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return 0, 0, false
	}
	return parseChurnValue(parts[0]), parseChurnValue(parts[1]), true
}

// parseChurnValue converts a numstat count to uint64, treating the
// binary-file marker "-" as zero.
func parseChurnValue(s string) uint64 {
	if s == "-" {
		return 0
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	return 0
}
