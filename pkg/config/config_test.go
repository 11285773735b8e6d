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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDirHonorsOverride(t *testing.T) {
	t.Setenv("TUBE_ADMIN_CONFIG_DIR", "/tmp/custom-dir")

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-dir", dir)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Setenv("TUBE_ADMIN_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &File{}, cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("TUBE_ADMIN_CONFIG_DIR", t.TempDir())

	saved := &File{
		ServerURL: "https://tube.example.org",
		Token:     "secret-token",
	}
	require.NoError(t, Save(saved))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestWriteUsesSecurePermissions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TUBE_ADMIN_CONFIG_DIR", dir)

	require.NoError(t, Save(&File{Token: "secret"}))

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TUBE_ADMIN_CONFIG_DIR", dir)

	require.NoError(t, Save(&File{Token: "secret"}))

	_, err := os.Stat(filepath.Join(dir, "config.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TUBE_ADMIN_CONFIG_DIR", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0600))

	_, err := Load()
	assert.Error(t, err)
}
