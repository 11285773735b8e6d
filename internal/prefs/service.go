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
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"tube-admin/pkg/users"
)

// DefaultTheme is what an unset theme reads back as.
const DefaultTheme = "instance-default"

// Service maintains the anonymous user's preferences across the
// durable and session stores.
type Service struct {
	durable  Store
	session  Store
	loggedIn func() bool
	l        *zap.Logger
}

// NewService wires the two stores. loggedIn reports whether an
// authenticated session is active; it gates the change stream and the
// anonymous-or-logged lookup. A nil loggedIn means never logged in.
func NewService(durable, session Store, loggedIn func() bool, l *zap.Logger) *Service {
	if loggedIn == nil {
		loggedIn = func() bool { return false }
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{
		durable:  durable,
		session:  session,
		loggedIn: loggedIn,
		l:        l,
	}
}

// DurableStore exposes the durable store, mainly for the watcher.
func (s *Service) DurableStore() Store { return s.durable }

// UpdateAnonymousProfile persists every preference field present in the
// partial update into its registered store. Unknown keys do not exist
// on the typed payload; fields that are nil are absent. A failing write
// is logged and skipped without aborting the remaining writes.
func (s *Service) UpdateAnonymousProfile(profile users.UserUpdateMe) {
	for _, pending := range s.collectWrites(profile) {
		s.write(pending.spec, pending.value)
	}
}

type pendingWrite struct {
	spec  Spec
	value string
}

// collectWrites encodes the present fields per the registry codecs.
// Values that cannot be serialized are logged and dropped here, before
// any store is touched.
func (s *Service) collectWrites(profile users.UserUpdateMe) []pendingWrite {
	var writes []pendingWrite

	add := func(key, value string) {
		spec, ok := Lookup(key)
		if !ok {
			// Not a registered preference key; ignore.
			return
		}
		writes = append(writes, pendingWrite{spec: spec, value: value})
	}

	if profile.NSFWPolicy != nil {
		add(KeyNSFWPolicy, string(*profile.NSFWPolicy))
	}
	if profile.WebTorrentEnabled != nil {
		add(KeyWebTorrentEnabled, strconv.FormatBool(*profile.WebTorrentEnabled))
	}
	if profile.AutoPlayVideo != nil {
		add(KeyAutoPlayVideo, strconv.FormatBool(*profile.AutoPlayVideo))
	}
	if profile.AutoPlayNextVideoPlaylist != nil {
		add(KeyAutoPlayVideoPlaylist, strconv.FormatBool(*profile.AutoPlayNextVideoPlaylist))
	}
	if profile.Theme != nil {
		add(KeyTheme, *profile.Theme)
	}
	if profile.VideoLanguages != nil {
		encoded, err := json.Marshal(profile.VideoLanguages)
		if err != nil {
			s.l.Error("cannot serialize preference value, skipping",
				zap.String("key", KeyVideoLanguages),
				zap.Error(err),
			)
		} else {
			add(KeyVideoLanguages, string(encoded))
		}
	}
	if profile.AutoPlayNextVideo != nil {
		add(KeyAutoPlayNextVideo, strconv.FormatBool(*profile.AutoPlayNextVideo))
	}

	return writes
}

func (s *Service) write(spec Spec, value string) {
	store := s.storeFor(spec.Domain)
	if err := store.Set(spec.Key, value); err != nil {
		s.l.Error("cannot persist preference, skipping",
			zap.String("key", spec.Key),
			zap.Error(err),
		)
	}
}

func (s *Service) storeFor(domain Domain) Store {
	if domain == DomainSession {
		return s.session
	}
	return s.durable
}

// AnonymousUser synthesizes a User-shaped value from both stores,
// applying the documented defaults for missing keys.
func (s *Service) AnonymousUser() *users.User {
	u := &users.User{
		NSFWPolicy: users.NSFWPolicy(s.stringValue(s.durable, KeyNSFWPolicy, "")),
		Theme:      s.stringValue(s.durable, KeyTheme, DefaultTheme),

		// Opt-out flags default on, opt-in flags default off.
		WebTorrentEnabled:         s.stringValue(s.durable, KeyWebTorrentEnabled, "") != "false",
		AutoPlayNextVideoPlaylist: s.stringValue(s.durable, KeyAutoPlayVideoPlaylist, "") != "false",
		AutoPlayVideo:             s.stringValue(s.durable, KeyAutoPlayVideo, "") == "true",
		AutoPlayNextVideo:         s.stringValue(s.session, KeyAutoPlayNextVideo, "") == "true",
	}

	u.VideoLanguages = s.videoLanguages()
	return u
}

// AnonymousOrLoggedUser returns the local anonymous user when no
// session is active, otherwise the authenticated profile from svc.
func (s *Service) AnonymousOrLoggedUser(ctx context.Context, svc users.Service) (*users.User, error) {
	if !s.loggedIn() {
		return s.AnonymousUser(), nil
	}
	return svc.GetMyProfile(ctx)
}

func (s *Service) stringValue(store Store, key, fallback string) string {
	value, ok, err := store.Get(key)
	if err != nil {
		s.l.Error("cannot read preference, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		return fallback
	}
	if !ok || value == "" {
		return fallback
	}
	return value
}

// videoLanguages parses the JSON-encoded language list defensively: a
// malformed value is logged and read back as an explicit nil.
func (s *Service) videoLanguages() []string {
	raw, ok, err := s.durable.Get(KeyVideoLanguages)
	if err != nil {
		s.l.Error("cannot read preference, using default",
			zap.String("key", KeyVideoLanguages),
			zap.Error(err),
		)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var languages []string
	if err := json.Unmarshal([]byte(raw), &languages); err != nil {
		s.l.Error("cannot parse stored video languages",
			zap.String("key", KeyVideoLanguages),
			zap.Error(err),
		)
		return nil
	}
	return languages
}
