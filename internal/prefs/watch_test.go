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
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-admin/pkg/users"
)

func TestWatchRequiresFileBackedStore(t *testing.T) {
	svc := NewService(NewMemoryStore(), NewMemoryStore(), nil, nil)

	_, err := svc.Watch(context.Background())
	assert.Error(t, err)
}

func TestWatchEmitsOnFileChange(t *testing.T) {
	durable := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	svc := NewService(durable, NewMemoryStore(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := svc.watch(ctx, 0)
	require.NoError(t, err)

	theme := "dark"
	svc.UpdateAnonymousProfile(users.UserUpdateMe{Theme: &theme})

	select {
	case u := <-changes:
		require.NotNil(t, u)
		assert.Equal(t, "dark", u.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("no change emitted")
	}
}

func TestWatchSuppressedWhileLoggedIn(t *testing.T) {
	durable := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	svc := NewService(durable, NewMemoryStore(), func() bool { return true }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := svc.watch(ctx, 0)
	require.NoError(t, err)

	theme := "dark"
	svc.UpdateAnonymousProfile(users.UserUpdateMe{Theme: &theme})

	select {
	case <-changes:
		t.Fatal("change emitted during an authenticated session")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchChannelClosesOnCancel(t *testing.T) {
	durable := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	svc := NewService(durable, NewMemoryStore(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := svc.watch(ctx, 0)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-changes:
		assert.False(t, open)
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close")
	}
}

func TestWatchThrottlesBursts(t *testing.T) {
	durable := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	svc := NewService(durable, NewMemoryStore(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := svc.watch(ctx, 10*time.Second)
	require.NoError(t, err)

	var received int
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range changes {
			received++
		}
	}()

	for i := 0; i < 5; i++ {
		theme := "dark"
		svc.UpdateAnonymousProfile(users.UserUpdateMe{Theme: &theme})
	}

	// Give the watcher time to see the burst, then stop it.
	time.Sleep(500 * time.Millisecond)
	cancel()
	<-done

	assert.LessOrEqual(t, received, 1)
}
