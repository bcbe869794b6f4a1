//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestCommitlensWithMySQL tests the commitlens CLI with a MySQL cache backend.
func TestCommitlensWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "commitlens",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/commitlens?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("COMMITLENS_CACHE_BACKEND", "mysql")
	_ = os.Setenv("COMMITLENS_CACHE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("COMMITLENS_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("COMMITLENS_CACHE_DB_CONNECT") }()

	// Run commitlens cache clear
	err = runCommitlensCommand(t, "cache", "clear")
	require.NoError(t, err)

	// Run commitlens cache migrate
	err = runCommitlensCommand(t, "cache", "migrate")
	require.NoError(t, err)

	// Run commitlens summary (on current dir)
	err = runCommitlensCommand(t, "summary")
	require.NoError(t, err)

	// Run commitlens cache status
	err = runCommitlensCommand(t, "cache", "status")
	require.NoError(t, err)
}

// TestCommitlensWithPostgres tests the commitlens CLI with a PostgreSQL cache backend.
func TestCommitlensWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("COMMITLENS_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("COMMITLENS_CACHE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("COMMITLENS_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("COMMITLENS_CACHE_DB_CONNECT") }()

	// Run commitlens cache clear
	err = runCommitlensCommand(t, "cache", "clear")
	require.NoError(t, err)

	// Run commitlens cache migrate
	err = runCommitlensCommand(t, "cache", "migrate")
	require.NoError(t, err)

	// Run commitlens summary (on current dir)
	err = runCommitlensCommand(t, "summary")
	require.NoError(t, err)

	// Run commitlens cache status
	err = runCommitlensCommand(t, "cache", "status")
	require.NoError(t, err)
}

func runCommitlensCommand(t *testing.T, args ...string) error {
	binaryPath := getCommitlensBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
