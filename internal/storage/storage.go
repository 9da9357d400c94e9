// Package storage persists the last fetched game list and viewing state.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const appName = "chesstalk"

// Storage keys
const (
	keyGames      = "games"
	keyLastViewed = "last_viewed"
)

// ErrNoSnapshot is returned when no game list has been cached yet.
var ErrNoSnapshot = errors.New("storage: no cached games")

// CachedGame is the stored form of one game in progress.
type CachedGame struct {
	ID       string `json:"id"`
	FEN      string `json:"fen"`
	Color    string `json:"color"`
	Opponent string `json:"opponent"`
	IsMyTurn bool   `json:"is_my_turn"`
	LastMove string `json:"last_move,omitempty"`
}

// Snapshot is the game list from one successful fetch.
type Snapshot struct {
	FetchedAt time.Time    `json:"fetched_at"`
	Games     []CachedGame `json:"games"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in dir, or in the user cache directory
// when dir is empty.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// cacheDir returns <user cache dir>/chesstalk/games, creating it. The
// list can always be fetched again, so it lives with caches rather than
// user data.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache directory: %w", err)
	}
	dir := filepath.Join(base, appName, "games")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot replaces the cached game list.
func (s *Storage) SaveSnapshot(snap *Snapshot) error {
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now()
	}
	return s.putJSON(keyGames, snap)
}

// LoadSnapshot returns the cached game list, or ErrNoSnapshot.
func (s *Storage) LoadSnapshot() (*Snapshot, error) {
	snap := &Snapshot{}
	found, err := s.getJSON(keyGames, snap)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// SetLastViewed records the ID of the game on screen.
func (s *Storage) SetLastViewed(gameID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyLastViewed), []byte(gameID))
	})
}

// LastViewed returns the ID of the game last on screen, or "" if none.
func (s *Storage) LastViewed() (string, error) {
	var id string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyLastViewed))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})

	return id, err
}

func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON decodes the value at key into v and reports whether it existed.
func (s *Storage) getJSON(key string, v any) (bool, error) {
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})

	return found, err
}
