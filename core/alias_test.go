package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAliasTableDirectives(t *testing.T) {
	tests := []struct {
		name       string
		directives []string
		raw        string
		want       string
	}{
		{
			name:       "multi alias arrow form",
			directives: []string{"john.doe,JohnD=>John"},
			raw:        "john.doe",
			want:       "John",
		},
		{
			name:       "second alias arrow form",
			directives: []string{"john.doe,JohnD=>John"},
			raw:        "JohnD",
			want:       "John",
		},
		{
			name:       "single alias equals form",
			directives: []string{"JohnD=John"},
			raw:        "JohnD",
			want:       "John",
		},
		{
			name:       "canonical resolves to itself",
			directives: []string{"john.doe=>John"},
			raw:        "John",
			want:       "John",
		},
		{
			name:       "unmapped author falls back to identity",
			directives: []string{"john.doe=>John"},
			raw:        "jane",
			want:       "jane",
		},
		{
			name:       "case-insensitive alias lookup",
			directives: []string{"JohnD=John"},
			raw:        "johnd",
			want:       "John",
		},
		{
			name:       "last directive wins for duplicate alias",
			directives: []string{"dev=Alice", "dev=Bob"},
			raw:        "dev",
			want:       "Bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewAliasTable(tt.directives)
			require.NoError(t, err)
			assert.Equal(t, tt.want, table.Resolve(tt.raw))
		})
	}
}

func TestNewAliasTableMalformed(t *testing.T) {
	tests := []struct {
		name      string
		directive string
	}{
		{"no separator", "justaname"},
		{"empty canonical arrow", "a,b=>"},
		{"no aliases arrow", ",=>John"},
		{"empty alias equals", "=John"},
		{"empty canonical equals", "JohnD="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAliasTable([]string{tt.directive})
			assert.Error(t, err)
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	table, err := NewAliasTable([]string{"john.doe,JohnD=>John", "jd=John"})
	require.NoError(t, err)

	for _, raw := range []string{"john.doe", "JohnD", "John", "jane", "jd"} {
		once := table.Resolve(raw)
		assert.Equal(t, once, table.Resolve(once), "Resolve must be idempotent for %q", raw)
	}
}

func TestAliasTableEmpty(t *testing.T) {
	table, err := NewAliasTable(nil)
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	assert.Equal(t, "anyone", table.Resolve("anyone"))
}
