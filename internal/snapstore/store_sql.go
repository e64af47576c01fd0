package snapstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// SQLStore implements SnapshotStore on top of database/sql.
type SQLStore struct {
	db      *sql.DB
	backend schema.StoreBackend
}

var _ contract.SnapshotStore = &SQLStore{} // Compile-time check

// newSQLStore opens the relational backend, verifies the connection and
// ensures the snapshots table exists.
func newSQLStore(backend schema.StoreBackend, connStr string) (*SQLStore, error) {
	db, err := openSQL(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s store: %w. Check that the server is running and the connection string is correct", backend, err)
	}

	if _, err := db.Exec(createSnapshotsQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", SnapshotsTable, err)
	}

	return &SQLStore{db: db, backend: backend}, nil
}

// openSQL opens the database handle for a relational backend.
func openSQL(backend schema.StoreBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetStoreDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL store: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL store: %w. Check connection string format: host=... dbname=...", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported relational backend: %s", backend)
	}
}

// createSnapshotsQuery returns the CREATE TABLE statement for the backend.
// Timestamps are stored as Unix nanoseconds so ordering never depends on a
// dialect's datetime precision.
func createSnapshotsQuery(backend schema.StoreBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				created_at BIGINT NOT NULL,
				responses TEXT NOT NULL,
				sub_responses TEXT NOT NULL,
				INDEX idx_created_at (created_at)
			);
		`, quoteTable(SnapshotsTable, backend))

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				created_at BIGINT NOT NULL,
				responses TEXT NOT NULL,
				sub_responses TEXT NOT NULL
			);
		`, quoteTable(SnapshotsTable, backend))

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at INTEGER NOT NULL,
				responses TEXT NOT NULL,
				sub_responses TEXT NOT NULL
			);
		`, quoteTable(SnapshotsTable, backend))
	}
}

// quoteTable quotes a table name with the backend's identifier quoting.
func quoteTable(name string, backend schema.StoreBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// placeholder returns the parameter placeholder for position n (1-based).
func (s *SQLStore) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Save appends one snapshot row. The snapshot is serialized as two JSON
// documents, one per response set.
func (s *SQLStore) Save(ctx context.Context, snap *schema.Snapshot) error {
	responses, err := json.Marshal(snap.Responses)
	if err != nil {
		return fmt.Errorf("failed to serialize responses: %w", err)
	}
	subResponses, err := json.Marshal(snap.SubResponses)
	if err != nil {
		return fmt.Errorf("failed to serialize sub-responses: %w", err)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (created_at, responses, sub_responses) VALUES (%s, %s, %s)",
		quoteTable(SnapshotsTable, s.backend), s.placeholder(1), s.placeholder(2), s.placeholder(3))
	if _, err := s.db.ExecContext(ctx, query, snap.Timestamp.UnixNano(), string(responses), string(subResponses)); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadLatest returns the most recently saved snapshot. Ties on created_at
// resolve to the higher row id, so a rapid save/load sequence still reads
// back its own write.
func (s *SQLStore) LoadLatest(ctx context.Context) (*schema.Snapshot, error) {
	query := fmt.Sprintf(
		"SELECT created_at, responses, sub_responses FROM %s ORDER BY created_at DESC, id DESC LIMIT 1",
		quoteTable(SnapshotsTable, s.backend))

	var createdAt int64
	var responses, subResponses string
	err := s.db.QueryRowContext(ctx, query).Scan(&createdAt, &responses, &subResponses)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schema.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}
	return decodeSnapshot(createdAt, []byte(responses), []byte(subResponses))
}

// Status returns diagnostics about the store.
func (s *SQLStore) Status(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{Backend: string(s.backend)}

	if err := s.db.PingContext(ctx); err != nil {
		return status, nil
	}
	status.Connected = true

	table := quoteTable(SnapshotsTable, s.backend)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&status.TotalSnapshots); err != nil {
		return status, fmt.Errorf("failed to count snapshots: %w", err)
	}
	if status.TotalSnapshots == 0 {
		return status, nil
	}

	var oldest, latest int64
	rangeQuery := fmt.Sprintf("SELECT MIN(created_at), MAX(created_at) FROM %s", table)
	if err := s.db.QueryRowContext(ctx, rangeQuery).Scan(&oldest, &latest); err != nil {
		return status, fmt.Errorf("failed to read snapshot time range: %w", err)
	}
	status.OldestSnapshot = time.Unix(0, oldest).UTC()
	status.LatestSnapshot = time.Unix(0, latest).UTC()
	return status, nil
}

// Clear removes all stored snapshots.
func (s *SQLStore) Clear(ctx context.Context) error {
	query := fmt.Sprintf("DELETE FROM %s", quoteTable(SnapshotsTable, s.backend))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// decodeSnapshot rebuilds a Snapshot from its stored columns.
func decodeSnapshot(createdAt int64, responses, subResponses []byte) (*schema.Snapshot, error) {
	snap := &schema.Snapshot{Timestamp: time.Unix(0, createdAt).UTC()}
	if err := json.Unmarshal(responses, &snap.Responses); err != nil {
		return nil, fmt.Errorf("failed to decode stored responses: %w", err)
	}
	if err := json.Unmarshal(subResponses, &snap.SubResponses); err != nil {
		return nil, fmt.Errorf("failed to decode stored sub-responses: %w", err)
	}
	if snap.Responses == nil {
		snap.Responses = schema.ResponseSet{}
	}
	if snap.SubResponses == nil {
		snap.SubResponses = schema.SubResponseSet{}
	}
	return snap, nil
}
