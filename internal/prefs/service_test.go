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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-admin/pkg/users"
)

func newTestService() (*Service, *MemoryStore, *MemoryStore) {
	durable := NewMemoryStore()
	session := NewMemoryStore()
	return NewService(durable, session, nil, nil), durable, session
}

func TestAnonymousUserDefaults(t *testing.T) {
	svc, _, _ := newTestService()
	u := svc.AnonymousUser()

	assert.Equal(t, "instance-default", u.Theme)
	assert.Equal(t, users.NSFWPolicy(""), u.NSFWPolicy)
	assert.True(t, u.WebTorrentEnabled)
	assert.True(t, u.AutoPlayNextVideoPlaylist)
	assert.False(t, u.AutoPlayVideo)
	assert.False(t, u.AutoPlayNextVideo)
	assert.Nil(t, u.VideoLanguages)
}

func TestUpdateAnonymousProfileRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	theme := "dark"
	policy := users.NSFWPolicyBlur
	autoPlay := true
	webTorrent := false
	svc.UpdateAnonymousProfile(users.UserUpdateMe{
		Theme:             &theme,
		NSFWPolicy:        &policy,
		AutoPlayVideo:     &autoPlay,
		WebTorrentEnabled: &webTorrent,
		VideoLanguages:    []string{"en", "fr"},
	})

	u := svc.AnonymousUser()
	assert.Equal(t, "dark", u.Theme)
	assert.Equal(t, users.NSFWPolicyBlur, u.NSFWPolicy)
	assert.True(t, u.AutoPlayVideo)
	assert.False(t, u.WebTorrentEnabled)
	assert.Equal(t, []string{"en", "fr"}, u.VideoLanguages)
}

func TestUpdateAnonymousProfileIgnoresAbsentFields(t *testing.T) {
	svc, durable, _ := newTestService()

	theme := "dark"
	svc.UpdateAnonymousProfile(users.UserUpdateMe{Theme: &theme})

	_, ok, err := durable.Get(KeyNSFWPolicy)
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := durable.Get(KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestSessionKeyStaysOutOfDurableStore(t *testing.T) {
	svc, durable, session := newTestService()

	autoPlayNext := true
	svc.UpdateAnonymousProfile(users.UserUpdateMe{AutoPlayNextVideo: &autoPlayNext})

	_, ok, err := durable.Get(KeyAutoPlayNextVideo)
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := session.Get(KeyAutoPlayNextVideo)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", value)

	assert.True(t, svc.AnonymousUser().AutoPlayNextVideo)
}

func TestMalformedLanguagesReadAsNil(t *testing.T) {
	svc, durable, _ := newTestService()

	require.NoError(t, durable.Set(KeyVideoLanguages, "{not json"))
	assert.Nil(t, svc.AnonymousUser().VideoLanguages)
}

func TestEmptyLanguageListIsDistinctFromUnset(t *testing.T) {
	svc, _, _ := newTestService()

	svc.UpdateAnonymousProfile(users.UserUpdateMe{VideoLanguages: []string{}})

	got := svc.AnonymousUser().VideoLanguages
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// failingStore rejects every write but reads fine.
type failingStore struct {
	*MemoryStore
}

func (s *failingStore) Set(key, value string) error {
	return fmt.Errorf("disk full")
}

func TestFailingWriteSkipsButSiblingsPersist(t *testing.T) {
	durable := &failingStore{NewMemoryStore()}
	session := NewMemoryStore()
	svc := NewService(durable, session, nil, nil)

	theme := "dark"
	autoPlayNext := true
	svc.UpdateAnonymousProfile(users.UserUpdateMe{
		Theme:             &theme,
		AutoPlayNextVideo: &autoPlayNext,
	})

	// The durable write failed silently; the session write went through.
	u := svc.AnonymousUser()
	assert.Equal(t, "instance-default", u.Theme)
	assert.True(t, u.AutoPlayNextVideo)
}

func TestAnonymousOrLoggedUser(t *testing.T) {
	t.Run("no session yields the local anonymous user", func(t *testing.T) {
		svc, _, _ := newTestService()
		theme := "dark"
		svc.UpdateAnonymousProfile(users.UserUpdateMe{Theme: &theme})

		u, err := svc.AnonymousOrLoggedUser(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "dark", u.Theme)
	})
}

func TestRegistryLookup(t *testing.T) {
	spec, ok := Lookup(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, DomainDurable, spec.Domain)
	assert.Equal(t, CodecString, spec.Codec)

	spec, ok = Lookup(KeyAutoPlayNextVideo)
	require.True(t, ok)
	assert.Equal(t, DomainSession, spec.Domain)

	_, ok = Lookup("nonsense")
	assert.False(t, ok)
}

func TestWatchedKeysAreDurableOnly(t *testing.T) {
	keys := WatchedKeys()
	assert.Contains(t, keys, KeyTheme)
	assert.Contains(t, keys, KeyVideoLanguages)
	assert.NotContains(t, keys, KeyAutoPlayNextVideo)
}
