package db

import (
	"database/sql"
	"fmt"
)

// StateStore exposes one app_state namespace as a kv.Store, backing the
// sqlite feedback backend.
type StateStore struct {
	db        *DB
	namespace string
}

// NewStateStore returns a key-value view over the given namespace.
func NewStateStore(db *DB, namespace string) *StateStore {
	return &StateStore{db: db, namespace: namespace}
}

func (s *StateStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM app_state WHERE namespace = ? AND key = ?",
		s.namespace, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *StateStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO app_state (namespace, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		s.namespace, key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	return nil
}

func (s *StateStore) Delete(key string) error {
	_, err := s.db.Exec(
		"DELETE FROM app_state WHERE namespace = ? AND key = ?",
		s.namespace, key,
	)
	if err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}
