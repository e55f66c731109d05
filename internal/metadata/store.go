// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// PersistentStore is the second cache tier behind the in-memory memo.
type PersistentStore interface {
	Get(ctx context.Context, imdbID string) (Metadata, bool, error)
	Put(ctx context.Context, imdbID string, m Metadata) error
	Purge(ctx context.Context) (int, error)
}

// BadgerStore persists successful lookups in BadgerDB. Entries expire
// through badger's native TTL, so no janitor is needed.
type BadgerStore struct {
	db     *badger.DB
	ttl    time.Duration
	ownsDB bool
}

var _ PersistentStore = (*BadgerStore)(nil)

const metadataKeyPrefix = "omdb:"

// NewBadgerStore opens (or creates) a store at path.
//
//	store, err := NewBadgerStore("/data/metadata", 24*time.Hour)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func NewBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	if path == "" {
		return nil, errors.New("metadata store path is required")
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.ValueLogFileSize = 16 << 20

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for metadata: %w", err)
	}

	s := NewBadgerStoreFromDB(db, ttl)
	s.ownsDB = true
	return s, nil
}

// NewBadgerStoreFromDB wraps an existing BadgerDB connection. Close does not
// close a shared db.
func NewBadgerStoreFromDB(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

// Get returns the stored pair for imdbID.
func (s *BadgerStore) Get(_ context.Context, imdbID string) (Metadata, bool, error) {
	var m Metadata
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metadataKeyPrefix + imdbID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Metadata{}, false, nil
	}
	if err != nil {
		return Metadata{}, false, fmt.Errorf("get metadata %s: %w", imdbID, err)
	}
	return m, true, nil
}

// Put stores m under imdbID with the store TTL.
func (s *BadgerStore) Put(_ context.Context, imdbID string, m Metadata) error {
	if imdbID == "" {
		return errors.New("imdb id cannot be empty")
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(metadataKeyPrefix+imdbID), data)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Purge removes every stored entry and returns how many were live.
func (s *BadgerStore) Purge(_ context.Context) (int, error) {
	prefix := []byte(metadataKeyPrefix)

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count metadata entries: %w", err)
	}

	if err := s.db.DropPrefix(prefix); err != nil {
		return 0, fmt.Errorf("drop metadata entries: %w", err)
	}
	return count, nil
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}
