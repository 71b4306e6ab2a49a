// Package store persists ledger snapshots to SQLite. Persistence lives
// outside the ledger core; the store reads ledger state through the
// read-only Record accessor and rebuilds ledgers through Define.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/petrichor-games/granary/pkg/ledger"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "granary.db"

// timeLayout is the created_at column format. The fraction is fixed-width
// (nine digits, never trimmed) so the stored strings sort chronologically
// under the ORDER BY created_at queries below.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store errors.
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// SnapshotInfo describes one stored snapshot.
type SnapshotInfo struct {
	SnapshotID string
	Label      string
	CreatedAt  time.Time
	Kinds      int
}

// Store is a SQLite-backed snapshot store for string-keyed ledgers.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the database, and applies
// the schema. The caller must Close the store when done.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Safe to call more than once.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save writes one snapshot of every defined kind on the ledger and returns
// the new snapshot ID (UUID v7). The write is transactional.
func (s *Store) Save(label string, l *ledger.Ledger[string]) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	snapshotID := id.String()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO snapshots (snapshot_id, label, created_at) VALUES (?, ?, ?)",
		snapshotID, label, now.Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	for _, kind := range l.DefinedKinds() {
		rec, ok := l.Record(kind)
		if !ok {
			continue
		}
		_, err = tx.Exec(
			`INSERT INTO snapshot_resources
			 (snapshot_id, kind, amount, max_capacity, production_rate,
			  consumption_rate, overflow_policy, deficit_policy, display_name)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snapshotID, kind, rec.Amount, rec.MaxCapacity, rec.ProductionRate,
			rec.ConsumptionRate, string(rec.OverflowPolicy), string(rec.DeficitPolicy),
			rec.DisplayName,
		)
		if err != nil {
			return "", fmt.Errorf("insert resource %q: %w", kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit snapshot: %w", err)
	}
	return snapshotID, nil
}

// Load rebuilds a ledger from the snapshot with the given ID.
// Returns ErrSnapshotNotFound if no such snapshot exists.
func (s *Store) Load(snapshotID string) (*ledger.Ledger[string], error) {
	var exists int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM snapshots WHERE snapshot_id = ?", snapshotID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("query snapshot %s: %w", snapshotID, err)
	}
	if exists == 0 {
		return nil, ErrSnapshotNotFound
	}

	rows, err := s.db.Query(
		`SELECT kind, amount, max_capacity, production_rate, consumption_rate,
		        overflow_policy, deficit_policy, display_name
		 FROM snapshot_resources WHERE snapshot_id = ?`, snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("query resources for %s: %w", snapshotID, err)
	}
	defer rows.Close()

	l := ledger.New[string]()
	for rows.Next() {
		var (
			kind                string
			amount, capacity    float64
			production, consume float64
			overflow, deficit   string
			displayName         sql.NullString
		)
		if err := rows.Scan(&kind, &amount, &capacity, &production, &consume,
			&overflow, &deficit, &displayName); err != nil {
			return nil, fmt.Errorf("scan resource row: %w", err)
		}

		def := ledger.Definition{
			InitialAmount:  amount,
			MaxCapacity:    capacity,
			OverflowPolicy: ledger.OverflowPolicy(overflow),
			DeficitPolicy:  ledger.DeficitPolicy(deficit),
		}
		if displayName.Valid {
			name := displayName.String
			def.DisplayName = &name
		}
		l.Define(kind, def)
		l.SetProductionRate(kind, production)
		l.SetConsumptionRate(kind, consume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resource rows: %w", err)
	}
	return l, nil
}

// Latest returns the most recently created snapshot's info, or
// ErrSnapshotNotFound when the store is empty.
func (s *Store) Latest() (SnapshotInfo, error) {
	row := s.db.QueryRow(
		`SELECT s.snapshot_id, s.label, s.created_at,
		        (SELECT COUNT(*) FROM snapshot_resources r WHERE r.snapshot_id = s.snapshot_id)
		 FROM snapshots s ORDER BY s.created_at DESC, s.snapshot_id DESC LIMIT 1`,
	)
	info, err := scanSnapshotInfo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SnapshotInfo{}, ErrSnapshotNotFound
		}
		return SnapshotInfo{}, fmt.Errorf("query latest snapshot: %w", err)
	}
	return info, nil
}

// List returns all snapshots, newest first.
func (s *Store) List() ([]SnapshotInfo, error) {
	rows, err := s.db.Query(
		`SELECT s.snapshot_id, s.label, s.created_at,
		        (SELECT COUNT(*) FROM snapshot_resources r WHERE r.snapshot_id = s.snapshot_id)
		 FROM snapshots s ORDER BY s.created_at DESC, s.snapshot_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var infos []SnapshotInfo
	for rows.Next() {
		info, err := scanSnapshotInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}
	return infos, nil
}

// Delete removes a snapshot and its resource rows.
// Returns ErrSnapshotNotFound if no such snapshot exists.
func (s *Store) Delete(snapshotID string) error {
	res, err := s.db.Exec("DELETE FROM snapshots WHERE snapshot_id = ?", snapshotID)
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", snapshotID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanSnapshotInfo.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshotInfo(row scanner) (SnapshotInfo, error) {
	var (
		info      SnapshotInfo
		createdAt string
	)
	if err := row.Scan(&info.SnapshotID, &info.Label, &createdAt, &info.Kinds); err != nil {
		return SnapshotInfo{}, err
	}
	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	info.CreatedAt = ts
	return info, nil
}
