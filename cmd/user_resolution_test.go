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
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-admin/internal/platform"
	"tube-admin/pkg/users"
)

// pagedUserInstance serves a fixed roster one page at a time, honoring
// the start/count query parameters the way the real listing endpoint
// does.
func pagedUserInstance(t *testing.T, roster []*users.User) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))
		count, _ := strconv.Atoi(r.URL.Query().Get("count"))

		end := start + count
		if start > len(roster) {
			start = len(roster)
		}
		if end > len(roster) {
			end = len(roster)
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(users.ResultList{
			Total: int64(len(roster)),
			Data:  roster[start:end],
		})
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func resolutionPlatform(t *testing.T, serverURL string) *platform.Platform {
	t.Helper()

	app, err := platform.New(context.Background(), platform.Config{
		ServerURL: serverURL,
		DataDir:   t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestResolveUserScansEveryPage(t *testing.T) {
	// A roster large enough that the exact match sits beyond the first
	// page of fuzzy hits.
	roster := make([]*users.User, 0, resolveUserPageSize+20)
	for i := 0; i < resolveUserPageSize+19; i++ {
		roster = append(roster, &users.User{
			ID:       int64(i + 1),
			Username: fmt.Sprintf("alice_%03d", i),
		})
	}
	roster = append(roster, &users.User{ID: 999, Username: "alice"})

	server := pagedUserInstance(t, roster)
	app := resolutionPlatform(t, server.URL)

	u, err := resolveUser(context.Background(), app, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(999), u.ID)
	assert.Equal(t, "alice", u.Username)
}

func TestResolveUserUnknownUsername(t *testing.T) {
	roster := []*users.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "alicia"},
	}

	server := pagedUserInstance(t, roster)
	app := resolutionPlatform(t, server.URL)

	_, err := resolveUser(context.Background(), app, "bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bob")
}

func TestResolveUsersFailsFastOnFirstUnknown(t *testing.T) {
	roster := []*users.User{
		{ID: 1, Username: "alice"},
	}

	server := pagedUserInstance(t, roster)
	app := resolutionPlatform(t, server.URL)

	_, err := resolveUsers(context.Background(), app, []string{"alice", "bob"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bob")
}
