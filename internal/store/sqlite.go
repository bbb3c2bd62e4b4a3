// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    slug TEXT NOT NULL,
    locale TEXT NOT NULL,
    name TEXT NOT NULL,
    icon TEXT NOT NULL DEFAULT '',
    color TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (slug, locale)
);

CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY,
    fact_id INTEGER NOT NULL,
    category_slug TEXT NOT NULL,
    locale TEXT NOT NULL,
    text TEXT NOT NULL,
    type TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    wrong_answers TEXT NOT NULL DEFAULT '[]',
    explanation TEXT
);
CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(locale, category_slug);
CREATE INDEX IF NOT EXISTS idx_questions_fact ON questions(fact_id);

CREATE TABLE IF NOT EXISTS fact_views (
    fact_id INTEGER NOT NULL,
    shown_date TEXT NOT NULL,
    PRIMARY KEY (fact_id, shown_date)
);

CREATE TABLE IF NOT EXISTS question_attempts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL,
    answered_at INTEGER NOT NULL,
    is_correct BOOLEAN NOT NULL,
    mode TEXT NOT NULL,
    session_id TEXT
);
CREATE INDEX IF NOT EXISTS idx_attempts_question ON question_attempts(question_id, answered_at);
CREATE INDEX IF NOT EXISTS idx_attempts_answered_at ON question_attempts(answered_at);

CREATE TABLE IF NOT EXISTS daily_progress (
    date TEXT PRIMARY KEY,
    total_questions INTEGER NOT NULL,
    correct_answers INTEGER NOT NULL,
    completed_at INTEGER
);

CREATE TABLE IF NOT EXISTS streak_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    best_streak INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trivia_sessions (
    id TEXT PRIMARY KEY,
    mode TEXT NOT NULL,
    category_slug TEXT,
    total_questions INTEGER NOT NULL,
    correct_answers INTEGER NOT NULL,
    elapsed_ms INTEGER NOT NULL,
    best_streak INTEGER NOT NULL,
    completed_at INTEGER NOT NULL,
    transcript BLOB
);
CREATE INDEX IF NOT EXISTS idx_sessions_completed_at ON trivia_sessions(completed_at DESC);
`

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath. WAL mode and a busy
// timeout let concurrent writers queue instead of failing with SQLITE_BUSY.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	dsn := dbPath
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable. Used by /health.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate upgrades databases created by older builds.
func migrate(db *sql.DB) error {
	// Sessions created before locales were tracked belong to the default catalog.
	if err := addColumnIfNotExists(db, "trivia_sessions", "locale", "TEXT NOT NULL DEFAULT 'en'"); err != nil {
		return err
	}
	// Rows written before elapsed_ns existed only carry elapsed_ms.
	if err := addColumnIfNotExists(db, "trivia_sessions", "elapsed_ns", "INTEGER"); err != nil {
		return err
	}
	return nil
}

func addColumnIfNotExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}
