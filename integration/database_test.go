//go:build database

// Package integration contains database integration tests for auditgauge.
// These tests are excluded from normal test runs due to build tags.
// To run them: go test -tags database ./integration
package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/auditgauge/auditgauge/internal/snapstore"
	"github.com/auditgauge/auditgauge/schema"
)

// TestSnapshotStoreWithMySQL exercises the snapshot store contract against
// a real MySQL server.
func TestSnapshotStoreWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "auditgauge",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/auditgauge?parseTime=true", host, port.Port())

	require.NoError(t, snapstore.Migrate(schema.MySQLBackend, connStr, -1))

	store, err := snapstore.New(schema.MySQLBackend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}

// TestSnapshotStoreWithPostgres exercises the snapshot store contract
// against a real PostgreSQL server.
func TestSnapshotStoreWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
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

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	require.NoError(t, snapstore.Migrate(schema.PostgreSQLBackend, connStr, -1))

	store, err := snapstore.New(schema.PostgreSQLBackend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}
