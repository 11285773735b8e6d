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

// Package config provides configuration management for tube-admin.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is the on-disk CLI configuration, stored as config.json in the
// data directory.
type File struct {
	// ServerURL is the base URL of the instance, e.g. "https://tube.example.org".
	ServerURL string `json:"serverUrl,omitempty"`

	// Token is the admin API token used for authenticated calls.
	Token string `json:"token,omitempty"`
}

// DataDir returns the tube-admin data directory, honoring the
// TUBE_ADMIN_CONFIG_DIR override used by tests and scripted setups.
func DataDir() (string, error) {
	if testDir := os.Getenv("TUBE_ADMIN_CONFIG_DIR"); testDir != "" {
		return testDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tube-admin"), nil
}

// DefaultPath returns the path of a named file inside the data directory.
func DefaultPath(filename string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// EnsureDataDirectory creates the directory holding path if needed.
func EnsureDataDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0700)
}

// Read loads and unmarshals a JSON config file into target.
func Read(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

// Write marshals data to formatted JSON and writes it with secure
// permissions via an atomic rename, so a crash never leaves a partial
// config behind.
func Write(path string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config data: %w", err)
	}

	if err := EnsureDataDirectory(path); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads the CLI config file, returning an empty File when none
// exists yet.
func Load() (*File, error) {
	path, err := DefaultPath("config.json")
	if err != nil {
		return nil, err
	}

	var f File
	if err := Read(path, &f); err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return &f, nil
}

// Save persists the CLI config file.
func Save(f *File) error {
	path, err := DefaultPath("config.json")
	if err != nil {
		return err
	}
	return Write(path, f)
}
