package database

import (
	"database/sql"
	"errors"
	"time"
)

// KV is a named-entry store backed by the kv_store table. Each entry holds
// one opaque value.
type KV struct {
	db *sql.DB
}

// NewKV wraps an open database
func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the value stored under key. ok is false if the entry does
// not exist.
func (k *KV) Get(key string) (value []byte, ok bool, err error) {
	query := `SELECT value FROM kv_store WHERE key=?`
	var s string
	err = k.db.QueryRow(query, key).Scan(&s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(s), true, nil
}

// Put writes value under key, replacing any previous value
func (k *KV) Put(key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`
	_, err := k.db.Exec(query, key, string(value), time.Now().UTC())
	return err
}

// Delete removes the entry. Deleting a missing key is not an error.
func (k *KV) Delete(key string) error {
	query := `DELETE FROM kv_store WHERE key=?`
	_, err := k.db.Exec(query, key)
	return err
}

// UpdatedAt returns when key was last written
func (k *KV) UpdatedAt(key string) (time.Time, bool, error) {
	query := `SELECT updated_at FROM kv_store WHERE key=?`
	var t time.Time
	err := k.db.QueryRow(query, key).Scan(&t)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
