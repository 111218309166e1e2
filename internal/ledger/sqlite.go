package ledger

import (
	"database/sql"
	"encoding/json"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/eatclub/pantry-cli/internal/fault"
)

// SQLiteStore is the durable Store, backed by modernc.org/sqlite. It
// honors the same append/version contract as MemoryStore: the version
// check and insert run inside one immediate transaction, so concurrent
// writers serialize on the database lock.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the ledger database at the given path and
// applies migrations.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "ledger: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "ledger: exec %s", pragma)
		}
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS ledger_events (
	seq              INTEGER PRIMARY KEY AUTOINCREMENT,
	id               TEXT NOT NULL UNIQUE,
	timestamp        DATETIME NOT NULL,
	actor            TEXT NOT NULL,
	mutation_type    TEXT NOT NULL,
	expected_version INTEGER,
	payload          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ledger_events_mutation_type ON ledger_events(mutation_type);
`

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(sqliteMigration)
	return eris.Wrap(err, "ledger: migrate")
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append implements Store. All-or-nothing: either the event is durable
// and the version advanced, or the transaction rolled back.
func (s *SQLiteStore) Append(event Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return eris.Wrap(err, "ledger: begin append")
	}
	defer tx.Rollback()

	var current uint64
	if err := tx.QueryRow(`SELECT COUNT(*) FROM ledger_events`).Scan(&current); err != nil {
		return eris.Wrap(err, "ledger: count events")
	}
	if event.ExpectedVersion != nil && *event.ExpectedVersion != current {
		return fault.Concurrency("version mismatch: expected %d, current %d", *event.ExpectedVersion, current)
	}

	payloadJSON, err := json.Marshal(event.Payload)
	if err != nil {
		return eris.Wrap(err, "ledger: marshal payload")
	}

	var expected any
	if event.ExpectedVersion != nil {
		expected = int64(*event.ExpectedVersion)
	}
	_, err = tx.Exec(
		`INSERT INTO ledger_events (id, timestamp, actor, mutation_type, expected_version, payload) VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID.String(), event.Timestamp.UTC().Format(time.RFC3339Nano),
		event.Actor, string(event.Payload.Type), expected, string(payloadJSON),
	)
	if err != nil {
		return eris.Wrap(err, "ledger: insert event")
	}

	return eris.Wrap(tx.Commit(), "ledger: commit append")
}

// Stream implements Store. Events are loaded once per call; the returned
// sequence is restartable and detached from the database.
func (s *SQLiteStore) Stream() iter.Seq[Event] {
	events := s.Snapshot()
	return func(yield func(Event) bool) {
		for _, e := range events {
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot implements Store.
func (s *SQLiteStore) Snapshot() []Event {
	rows, err := s.db.Query(
		`SELECT id, timestamp, actor, expected_version, payload FROM ledger_events ORDER BY seq`,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			idStr       string
			ts          string
			actor       string
			expected    sql.NullInt64
			payloadJSON string
		)
		if err := rows.Scan(&idStr, &ts, &actor, &expected, &payloadJSON); err != nil {
			return out
		}
		e := Event{Actor: actor}
		if e.ID, err = uuid.Parse(idStr); err != nil {
			continue
		}
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			continue
		}
		if expected.Valid {
			v := uint64(expected.Int64)
			e.ExpectedVersion = &v
		}
		if err := json.Unmarshal([]byte(payloadJSON), &e.Payload); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Version implements Store.
func (s *SQLiteStore) Version() uint64 {
	var n uint64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ledger_events`).Scan(&n); err != nil {
		return 0
	}
	return n
}
