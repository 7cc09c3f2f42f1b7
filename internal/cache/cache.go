// Package cache persists per-file entity records keyed by content hash so
// unchanged files are not re-parsed between runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"go.etcd.io/bbolt"

	"github.com/docforge/docforge/pkg/doc"
)

var bucketFiles = []byte("files")

// entry is the stored value for one file: the content hash it was parsed
// from and the records it produced.
type entry struct {
	Hash     string             `json:"hash"`
	Entities []doc.EntityRecord `json:"entities"`
}

// Store is a bbolt-backed record cache. Safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFiles)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached records for path if they were produced from the
// same content hash.
func (s *Store) Get(path string, hash string) ([]doc.EntityRecord, bool, error) {
	var records []doc.EntityRecord
	hit := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(path))
		if data == nil {
			return nil
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		if e.Hash != hash {
			return nil
		}
		records = e.Entities
		hit = true
		return nil
	})
	return records, hit, err
}

// Put stores the records produced for path at the given content hash,
// replacing any previous entry.
func (s *Store) Put(path string, hash string, records []doc.EntityRecord) error {
	data, err := json.Marshal(entry{Hash: hash, Entities: records})
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).Put([]byte(path), data)
	})
}

// HashFile computes the SHA-256 content hash of a file, hex-encoded.
func HashFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), nil
}
