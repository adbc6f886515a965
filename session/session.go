package session

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// currentUserKey is the single fixed key the active-user snapshot lives under.
// There is no schema versioning; the value is the JSON-serialized user record.
const currentUserKey = "currentUser"

// Store persists a snapshot of the active user record to a local Pebble
// database. It is written through on every profile/wallet mutation and read
// once at process start.
type Store struct {
	db *pebble.DB
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save overwrites the snapshot with the given user record, achievements and
// all, so unlocks survive a restart.
func (s *Store) Save(u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.db.Set([]byte(currentUserKey), raw, pebble.Sync); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or ok=false when no session is saved.
func (s *Store) Load() (models.User, bool, error) {
	raw, closer, err := s.db.Get([]byte(currentUserKey))
	if err == pebble.ErrNotFound {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("read session: %w", err)
	}
	defer closer.Close()

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.User{}, false, fmt.Errorf("decode session: %w", err)
	}
	return u, true, nil
}

func (s *Store) Clear() error {
	if err := s.db.Delete([]byte(currentUserKey), pebble.Sync); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
