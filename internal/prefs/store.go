/*
Copyright © 2025 Ian Shuley

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package prefs persists anonymous-user preferences across two
// key/value domains: a durable store that survives sessions and a
// session store that does not. Values are stored as strings; encoding
// is decided per key by the registry.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store is one key/value persistence domain.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)

	// Set stores a value.
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Path returns the backing file path, or "" for non-file stores.
	Path() string
}

// FileStore is the durable domain: a flat string map serialized as JSON
// to a single file, written atomically with 0600 permissions.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

// load must be called with the lock held.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read preference store: %w", err)
	}

	values := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parse preference store: %w", err)
		}
	}
	return values, nil
}

// save must be called with the lock held.
func (s *FileStore) save(values map[string]string) error {
	encoded, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preference store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0600); err != nil {
		return fmt.Errorf("write preference store: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// MemoryStore is the session domain: values live only as long as the
// process. Guarded for concurrent use since the preference watcher
// reads while commands write.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Path() string { return "" }

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
