// Package main provides a performance benchmarking tool for the commitlens CLI.
// It measures summary and report execution times across repositories of
// different sizes, treating the first successful run as cold and averaging the
// rest as warm, generating CSV output for performance documentation.
//
// Prerequisites:
// - commitlens binary installed and available in PATH
// - Test repositories cloned to the specified base directory
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Repository  string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase    string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	TestRepos   []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	repoBase := os.Args[1]

	config := BenchmarkConfig{
		RepoBase:    repoBase,
		Timeout:     5 * time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		TestRepos:   []string{"csv-parser", "fd", "git", "kubernetes"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := writeResultsCSV(results, "benchmark_results.csv"); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d results to benchmark_results.csv\n", len(results))
}

// checkPrerequisites verifies the binary and test repositories are available.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("commitlens"); err != nil {
		return fmt.Errorf("commitlens binary not found in PATH: %w", err)
	}
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); err != nil {
			return fmt.Errorf("test repository %s not found at %s", repo, repoPath)
		}
	}
	return nil
}

// runBenchmarks times summary and report runs for each test repository.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	commands := map[string][]string{
		"summary": {"summary"},
		"report":  {"report", "--report-file", os.TempDir() + "/commitlens-bench.html"},
	}

	var results []BenchmarkResult
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		for name, args := range commands {
			fmt.Printf("Benchmarking %s %s...\n", repo, name)

			noCache := averageRuns(config, repoPath, append(args, "--cache-backend", "none"), config.NoCacheRuns)

			// First cached run is cold, the rest are warm.
			cold := averageRuns(config, repoPath, args, 1)
			warm := averageRuns(config, repoPath, args, config.CacheRuns-1)

			results = append(results, BenchmarkResult{
				Repository:  repo,
				Command:     name,
				NoCacheTime: noCache,
				ColdTime:    cold,
				WarmTime:    warm,
			})
		}
	}
	return results
}

// averageRuns executes the command n times and returns the average duration.
func averageRuns(config BenchmarkConfig, repoPath string, args []string, n int) string {
	if n <= 0 {
		return "n/a"
	}
	var total time.Duration
	for range n {
		start := time.Now()
		cmd := exec.Command("commitlens", append(args, repoPath)...)
		cmd.Stdout = nil
		cmd.Stderr = nil
		if err := cmd.Run(); err != nil {
			return "failed"
		}
		elapsed := time.Since(start)
		if elapsed > config.Timeout {
			return "timeout"
		}
		total += elapsed
	}
	return (total / time.Duration(n)).Round(time.Millisecond).String()
}

// writeResultsCSV writes the benchmark results to a CSV file.
func writeResultsCSV(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"repository", "command", "no_cache", "cold", "warm"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{r.Repository, r.Command, r.NoCacheTime, r.ColdTime, r.WarmTime}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
