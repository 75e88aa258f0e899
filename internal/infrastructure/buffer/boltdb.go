package buffer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const defaultBatchSize = 50

// Store persists buffered operations in a local BoltDB file while Postgres is
// unreachable. Keys encode priority then enqueue time, so a plain cursor walk
// yields items in replay order.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open creates or reopens the buffer file and ensures its bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "pending_ops"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create buffer dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open buffer file: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, bucket: []byte(bucket)}, nil
}

func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return nil
}

// Enqueue persists one buffered operation.
func (s *Store) Enqueue(item Item) error {
	if err := s.ready(); err != nil {
		return err
	}
	item.normalize()
	item.bucketKey = replayKey(item)

	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(item.bucketKey, payload)
	})
}

// GetBatch returns up to limit items in replay order without removing them.
func (s *Store) GetBatch(limit int) ([]Item, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultBatchSize
	}

	var items []Item
	err := s.db.View(func(tx *bolt.Tx) error {
		return s.scan(tx, func(key []byte, item Item) (bool, error) {
			item.bucketKey = append([]byte(nil), key...)
			items = append(items, item)
			return len(items) < limit, nil
		})
	})
	return items, err
}

// Remove deletes an item, falling back to an ID scan for items that were
// never read back from the store.
func (s *Store) Remove(item Item) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if len(item.bucketKey) > 0 {
			return tx.Bucket(s.bucket).Delete(item.bucketKey)
		}
		if item.ID == "" {
			return nil
		}
		return s.scan(tx, func(key []byte, found Item) (bool, error) {
			if found.ID != item.ID {
				return true, nil
			}
			return false, tx.Bucket(s.bucket).Delete(key)
		})
	})
}

// Requeue re-inserts a failed item with a fresh timestamp so it lands behind
// everything already waiting at its priority.
func (s *Store) Requeue(item Item) error {
	item.bucketKey = nil
	item.Timestamp = time.Now()
	return s.Enqueue(item)
}

// Size reports the number of buffered items.
func (s *Store) Size() (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Cleanup drops items enqueued before the cutoff. Stale entries usually mean
// the entity they referenced was already mutated through another path.
func (s *Store) Cleanup(olderThan time.Time) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		var stale [][]byte
		if err := s.scan(tx, func(key []byte, item Item) (bool, error) {
			if item.Timestamp.Before(olderThan) {
				stale = append(stale, append([]byte(nil), key...))
			}
			return true, nil
		}); err != nil {
			return err
		}
		for _, key := range stale {
			if err := tx.Bucket(s.bucket).Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats exposes Bolt statistics for the health endpoint.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

// scan walks the bucket in key order, skipping undecodable entries, until
// visit returns false or an error.
func (s *Store) scan(tx *bolt.Tx, visit func(key []byte, item Item) (bool, error)) error {
	c := tx.Bucket(s.bucket).Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		var item Item
		if err := json.Unmarshal(v, &item); err != nil {
			continue
		}
		more, err := visit(k, item)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}

func replayKey(item Item) []byte {
	return fmt.Appendf(nil, "%d|%019d|%s", item.Priority, item.Timestamp.UnixNano(), item.ID)
}
