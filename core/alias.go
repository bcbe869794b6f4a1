package core

import (
	"fmt"
	"strings"
)

// AliasTable maps raw author strings to canonical contributor names.
// It is built once from merge directives before any commit is ingested
// and never mutated afterwards, so it can be shared across aggregators
// without synchronization.
type AliasTable struct {
	canonical map[string]string // folded alias -> canonical name
}

// NewAliasTable builds an alias table from merge directives. Two syntaxes
// are accepted and normalized to the same table:
//
//	alias1,alias2,...=>Canonical
//	alias=Canonical
//
// A malformed directive is a configuration error and fails the run before
// ingestion starts. When the same alias appears in two directives, the
// later directive wins. Every canonical name is implicitly an alias for
// itself.
func NewAliasTable(directives []string) (*AliasTable, error) {
	t := &AliasTable{canonical: make(map[string]string)}
	for _, d := range directives {
		if err := t.add(d); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *AliasTable) add(directive string) error {
	if left, right, ok := strings.Cut(directive, "=>"); ok {
		canonical := strings.TrimSpace(right)
		if canonical == "" {
			return fmt.Errorf("malformed merge directive %q: canonical name is empty", directive)
		}
		aliases := 0
		for alias := range strings.SplitSeq(left, ",") {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			t.canonical[foldAuthor(alias)] = canonical
			aliases++
		}
		if aliases == 0 {
			return fmt.Errorf("malformed merge directive %q: no aliases before '=>'", directive)
		}
		t.canonical[foldAuthor(canonical)] = canonical
		return nil
	}

	if alias, canonical, ok := strings.Cut(directive, "="); ok {
		alias = strings.TrimSpace(alias)
		canonical = strings.TrimSpace(canonical)
		if alias == "" || canonical == "" {
			return fmt.Errorf("malformed merge directive %q: expected 'alias=canonical'", directive)
		}
		t.canonical[foldAuthor(alias)] = canonical
		t.canonical[foldAuthor(canonical)] = canonical
		return nil
	}

	return fmt.Errorf("malformed merge directive %q: expected 'alias=canonical' or 'alias1,alias2=>canonical'", directive)
}

// Resolve maps a raw author string to its canonical contributor name.
// Authors without a mapping resolve to themselves, so Resolve is total
// and idempotent.
func (t *AliasTable) Resolve(raw string) string {
	if canonical, ok := t.canonical[foldAuthor(raw)]; ok {
		return canonical
	}
	return raw
}

// Len returns the number of alias mappings, canonical self-mappings included.
func (t *AliasTable) Len() int {
	return len(t.canonical)
}

// foldAuthor normalizes an author string for case-insensitive lookup.
func foldAuthor(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
