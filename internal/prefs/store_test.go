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
package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))

	_, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("theme", "dark"))

	value, ok, err := store.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	first := NewFileStore(path)
	require.NoError(t, first.Set("theme", "dark"))
	require.NoError(t, first.Set("nsfw_policy", "blur"))

	second := NewFileStore(path)
	value, ok, err := second.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestFileStoreDelete(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))

	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Delete("theme"))

	_, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreUsesSecurePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	store := NewFileStore(path)
	require.NoError(t, store.Set("theme", "dark"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestMemoryStoreHasNoPath(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, "", store.Path())

	require.NoError(t, store.Set("k", "v"))
	value, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, store.Delete("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
