// Package cache implements the per-project emit cache: a small bolt database
// mapping the content hash of a checked-tree input file to the target text
// previously emitted for it.  Hitting the cache skips decoding and rendering
// entirely.
package cache

import (
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/crypto/blake2b"
)

const perm = 0700

// emittedBucket is the bucket holding hash -> emitted text entries.
var emittedBucket = []byte("emitted")

// Cache is an open emit cache database.
type Cache struct {
	db *bolt.DB
}

// Key is the cache key for an input: the blake2b digest of its raw bytes.
type Key [blake2b.Size256]byte

// KeyOf computes the cache key for the given input bytes.
func KeyOf(input []byte) Key {
	return blake2b.Sum256(input)
}

// Open opens (creating as needed) the cache database at the given path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), perm); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, perm, &bolt.Options{Timeout: time.Second * 3})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(emittedBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the emitted text cached for the given key, if any.
func (c *Cache) Lookup(key Key) (string, bool) {
	var text string
	var found bool

	c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(emittedBucket).Get(key[:]); v != nil {
			text = string(v)
			found = true
		}

		return nil
	})

	return text, found
}

// Store records the emitted text for the given key.
func (c *Cache) Store(key Key, text string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(emittedBucket).Put(key[:], []byte(text))
	})
}

// Clean removes the cache database at the given path.  A missing database is
// not an error.
func Clean(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
