// Package store persists pair scores in a bolt database so that an
// interrupted scoring run can be resumed.
package store

import (
	"encoding/json"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// Entry is the value stored for one scored pair.
type Entry struct {
	Scheme string
	Degap  bool
	Score  int32
}

// Store reads and writes pair scores, one bucket per scoring scheme.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open opens (creating if needed) the database at path, keeping scores of the
// named scheme.
func Open(path, scheme string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return New(db, scheme), nil
}

// New wraps an open database. A nil database stores nothing and finds nothing.
func New(db *bolt.DB, scheme string) *Store {
	return &Store{db: db, bucket: []byte(scheme)}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// pairKey keeps scores of gapped and degapped sequences apart
func pairKey(query, target string, degap bool) []byte {
	key := query + "\x00" + target
	if degap {
		key += "\x00degap"
	}
	return []byte(key)
}

// Get returns the stored score of a pair, scored with gaps removed if degap is
// true, and false if there is none.
func (s *Store) Get(query, target string, degap bool) (int32, bool, error) {
	b, err := LoadData(s.db, s.bucket, pairKey(query, target, degap))
	if err != nil || b == nil {
		return 0, false, err
	}

	var entry Entry
	if err = json.Unmarshal(b, &entry); err != nil {
		return 0, false, err
	}
	if entry.Scheme != string(s.bucket) {
		log.Warningf("Ignoring %s score stored for %s/%s", entry.Scheme, query, target)
		return 0, false, nil
	}
	if entry.Degap != degap {
		log.Warningf("Ignoring score stored for %s/%s with degap=%v", query, target, entry.Degap)
		return 0, false, nil
	}
	return entry.Score, true, nil
}

// Put stores the score of a pair.
func (s *Store) Put(query, target string, degap bool, score int32) error {
	b, err := json.Marshal(Entry{Scheme: string(s.bucket), Degap: degap, Score: score})
	if err != nil {
		log.Error("Error serializing score", err)
		return err
	}
	err = SaveData(s.db, s.bucket, pairKey(query, target, degap), b)
	if err != nil {
		log.Error("Error saving score", err)
	}
	return err
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, bucket, key, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, bucket, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}

		// the value is only valid inside the transaction
		if v := b.Get(key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
