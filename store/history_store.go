// Package store persists wallet transaction history in a local bbolt file.
package store

import (
	"encoding/binary"
	"fmt"
	"sync"

	bolt "go.etcd.io/bbolt"

	"btcforge/jsonx"
	"btcforge/logx"
	"btcforge/types"
)

var historyBucket = []byte("history")

// BoltHistoryStore is the bbolt-backed HistoryStore implementation. Entries
// are keyed by an ascending sequence number so listing can walk newest
// first.
type BoltHistoryStore struct {
	mu sync.RWMutex
	db *bolt.DB
}

// OpenHistoryStore opens (or creates) the history database at path.
func OpenHistoryStore(path string) (*BoltHistoryStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("could not open history db at %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create history bucket: %w", err)
	}
	return &BoltHistoryStore{db: db}, nil
}

// Record appends one history entry.
func (s *BoltHistoryStore) Record(entry *types.HistoryEntry) error {
	data, err := jsonx.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(historyBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return b.Put(key[:], data)
	})
	if err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}

	logx.Debug("HISTORY", "recorded ", entry.Kind, " entry for tx ", entry.Txid)
	return nil
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (s *BoltHistoryStore) List(limit int) ([]*types.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []*types.HistoryEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(historyBucket).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var entry types.HistoryEntry
			if err := jsonx.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal history entry: %w", err)
			}
			entries = append(entries, &entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// MustClose closes the underlying database, logging any error.
func (s *BoltHistoryStore) MustClose() {
	if err := s.db.Close(); err != nil {
		logx.Error("HISTORY", "failed to close history db: ", err)
	}
}
