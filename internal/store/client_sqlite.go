package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/associo/tallysync/internal/logger"
)

const createKVSchema = `
	CREATE TABLE IF NOT EXISTS kv (
		namespace TEXT NOT NULL,
		key       TEXT NOT NULL,
		value     BLOB NOT NULL,
		PRIMARY KEY (namespace, key)
	);`

const (
	putKV = `
		INSERT INTO kv (namespace, key, value) VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value;`
	getKV       = `SELECT value FROM kv WHERE namespace = $1 AND key = $2;`
	getAllKV    = `SELECT key, value FROM kv WHERE namespace = $1 ORDER BY key;`
	deleteKV    = `DELETE FROM kv WHERE namespace = $1 AND key = $2;`
	deleteAllKV = `DELETE FROM kv WHERE namespace = $1;`
)

// localSQLiteStore is the SQLite-backed implementation of [LocalStore].
// Durability is delegated to SQLite's WAL journal: a record acknowledged by
// Put survives process kills and device restarts.
type localSQLiteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalStore opens (creating if needed) the device database at path and
// prepares the kv schema. An unopenable database is a hard error: the
// device must not pretend to record visits it cannot persist.
func NewLocalStore(ctx context.Context, path string, log *logger.Logger) (LocalStore, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error opening local database")
		return nil, fmt.Errorf("error opening connection to local DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error connecting local database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createKVSchema); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error creating kv schema")
		return nil, fmt.Errorf("error creating kv schema: %w", err)
	}
	log.Debug().Str("func", "NewLocalStore").Str("path", path).Msg("local store ready")

	return &localSQLiteStore{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

func (s *localSQLiteStore) Put(ctx context.Context, namespace, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, putKV, namespace, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, getKV, namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

func (s *localSQLiteStore) GetAll(ctx context.Context, namespace string) ([]KVEntry, error) {
	rows, err := s.db.QueryContext(ctx, getAllKV, namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]KVEntry, 0, 16)
	for rows.Next() {
		var e KVEntry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (s *localSQLiteStore) Delete(ctx context.Context, namespace, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteKV, namespace, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Replace swaps the whole namespace atomically: readers see either the old
// cache or the new one, never a partial mix.
func (s *localSQLiteStore) Replace(ctx context.Context, namespace string, entries []KVEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllKV, namespace); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	for _, e := range entries {
		if _, err = tx.ExecContext(ctx, putKV, namespace, e.Key, e.Value); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *localSQLiteStore) Close() error {
	return s.db.Close()
}
