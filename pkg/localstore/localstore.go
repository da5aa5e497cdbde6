// Package localstore is a small JSON file-backed key-value store. It plays
// the role browser local storage plays for the web client: session fields,
// theme and the cart survive restarts through it.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Keys persisted by the storefront client.
const (
	KeyAuthToken    = "authToken"
	KeyUserID       = "userId"
	KeyUserName     = "userName"
	KeyUserEmail    = "userEmail"
	KeyUserPhone    = "userPhone"
	KeyUserCity     = "userCity"
	KeyUserProvince = "userProvince"
	KeyUserBio      = "userBio"
	KeyTheme        = "theme"
	KeyCart         = "cart"
)

// Store is a file-backed string-keyed store. All operations are safe for
// concurrent use. Every Set/Remove rewrites the backing file.
type Store struct {
	path   string
	mu     sync.Mutex
	values map[string]json.RawMessage
}

// Open loads the store at path. A missing file yields an empty store; a
// corrupt file is discarded and replaced on the next write.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		// Corrupt stored data is not fatal, just gone.
		s.values = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Get unmarshals the value stored under key into v. The boolean reports
// whether the key was present; a value that no longer unmarshals is treated
// as absent.
func (s *Store) Get(key string, v interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false
	}
	return true
}

// GetString returns the string stored under key, or "" when absent.
func (s *Store) GetString(key string) string {
	var v string
	s.Get(key, &v)
	return v
}

// Set stores v under key and persists the store.
func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return s.flush()
}

// Remove deletes a key and persists the store.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

// flush must be called with the mutex held.
func (s *Store) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
