package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/accordion/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var bucketPanels = []byte("panels")

// PanelStore implements domain.StateStore using BoltDB.
type PanelStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewPanelStore opens (or creates) the state database under dir. An empty dir
// gives a memory-only store.
func NewPanelStore(dir string) (*PanelStore, error) {
	if dir == "" {
		return &PanelStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	dbPath := filepath.Join(dir, "accordion.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPanels)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PanelStore{db: db, cache: make(map[string][]byte)}, nil
}

// documentKey hashes the absolute document path so keys stay short and stable
func documentKey(docPath string) string {
	if abs, err := filepath.Abs(docPath); err == nil {
		docPath = abs
	}
	hash := sha256.Sum256([]byte(filepath.Clean(docPath)))
	return hex.EncodeToString(hash[:8])
}

func (s *PanelStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the saved state for a document
func (s *PanelStore) Load(docPath string) (domain.PanelState, bool) {
	key := documentKey(docPath)

	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		if s.db == nil {
			return domain.PanelState{}, false
		}
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketPanels)
			if b == nil {
				return nil
			}
			if v := b.Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
		if data == nil {
			return domain.PanelState{}, false
		}

		// Promote to memory cache
		s.mu.Lock()
		s.cache[key] = data
		s.mu.Unlock()
	}

	var state domain.PanelState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.PanelState{}, false
	}
	return state, true
}

// Save stores the state for a document
func (s *PanelStore) Save(docPath string, state domain.PanelState) error {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now()
	}
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	key := documentKey(docPath)

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPanels).Put([]byte(key), data)
	})
}

// Delete forgets the state for a document
func (s *PanelStore) Delete(docPath string) error {
	key := documentKey(docPath)

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPanels)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// Clear forgets the state of every document
func (s *PanelStore) Clear() error {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketPanels); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(bucketPanels)
		return err
	})
}
