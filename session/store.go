// Package session persists short-lived key/value state between CLI runs,
// most importantly the active persona id. Entries carry an expiry; an
// expired entry reads as absent and is pruned on the next write.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// PersonaKey is the store key holding the active persona id.
const PersonaKey = "personaId"

// DefaultTTL is how long a stored persona id stays valid.
const DefaultTTL = 4 * time.Hour

type entry struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires"`
}

// Store is a file-backed key/value store with per-entry expiry. Safe for
// concurrent use within a process; last-writer-wins across processes.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// Open returns a Store backed by the file at path. The file is created on
// first write; a missing file reads as an empty store.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("session: path cannot be empty")
	}
	return &Store{path: path, now: time.Now}, nil
}

// DefaultPath returns the per-user session file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "segmint", "session.json"), nil
}

func (s *Store) load() (map[string]entry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]entry{}, nil
		}
		return nil, fmt.Errorf("session: read %s: %w", s.path, err)
	}
	entries := map[string]entry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A corrupt file is treated as empty rather than blocking the CLI.
		return map[string]entry{}, nil
	}
	return entries, nil
}

func (s *Store) save(entries map[string]entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}

// Set stores value under key with the given ttl, pruning expired entries.
func (s *Store) Set(key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	now := s.now()
	for k, e := range entries {
		if now.After(e.Expires) {
			delete(entries, k)
		}
	}
	entries[key] = entry{Value: value, Expires: now.Add(ttl)}
	return s.save(entries)
}

// Get returns the value for key. Expired or missing entries return ok=false.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false
	}
	e, ok := entries[key]
	if !ok || s.now().After(e.Expires) {
		return "", false
	}
	return e.Value, true
}

// Has reports whether key holds an unexpired value.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key from the store. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.save(entries)
}

// ActivePersonaID returns the stored persona id, satisfying the SDK's
// persona source interface.
func (s *Store) ActivePersonaID() (string, bool) {
	return s.Get(PersonaKey)
}

// SetActivePersona stores id as the active persona for DefaultTTL.
func (s *Store) SetActivePersona(id string) error {
	return s.Set(PersonaKey, id, DefaultTTL)
}

// ClearActivePersona removes the active persona, signing the user out.
func (s *Store) ClearActivePersona() error {
	return s.Delete(PersonaKey)
}
