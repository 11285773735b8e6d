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
package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-admin/pkg/users"
)

func TestNewValidatesConfig(t *testing.T) {
	t.Run("missing server URL", func(t *testing.T) {
		_, err := New(context.Background(), Config{DataDir: t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("missing data dir", func(t *testing.T) {
		_, err := New(context.Background(), Config{ServerURL: "https://tube.example.org"})
		assert.Error(t, err)
	})

	t.Run("invalid server URL", func(t *testing.T) {
		_, err := New(context.Background(), Config{ServerURL: "not a url", DataDir: t.TempDir()})
		assert.Error(t, err)
	})
}

func TestNewWiresServices(t *testing.T) {
	app, err := New(context.Background(), Config{
		ServerURL: "https://tube.example.org",
		Token:     "tok",
		DataDir:   t.TempDir(),
	})
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Users)
	assert.NotNil(t, app.Prefs)
	assert.NotNil(t, app.Log)
}

func TestNewCreatesMissingDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "state", "tube-admin")
	cfg := Config{ServerURL: "https://tube.example.org", DataDir: dataDir}

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	theme := "dark"
	app.Prefs.UpdateAnonymousProfile(users.UserUpdateMe{Theme: &theme})

	// The write must actually land on disk, not be logged away.
	assert.Equal(t, "dark", app.Prefs.AnonymousUser().Theme)
	_, err = os.Stat(filepath.Join(dataDir, PrefsFileName))
	assert.NoError(t, err)
}

func TestPrefsSurviveAcrossPlatforms(t *testing.T) {
	dataDir := t.TempDir()
	cfg := Config{ServerURL: "https://tube.example.org", DataDir: dataDir}

	first, err := New(context.Background(), cfg)
	require.NoError(t, err)
	theme := "dark"
	first.Prefs.UpdateAnonymousProfile(users.UserUpdateMe{Theme: &theme})
	first.Close()

	second, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, "dark", second.Prefs.AnonymousUser().Theme)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/config" {
			w.Write([]byte(`{"signup":{"requiresEmailVerification":false}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	app, err := New(context.Background(), Config{ServerURL: server.URL, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer app.Close()

	assert.NoError(t, app.Health(context.Background()))
}

func TestHealthFailsWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	server.Close()

	app, err := New(context.Background(), Config{ServerURL: server.URL, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer app.Close()

	assert.Error(t, app.Health(context.Background()))
}
