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
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"tube-admin/pkg/users"
)

// DefaultWatchThrottle coalesces bursts of preference writes into at
// most one emission per interval.
const DefaultWatchThrottle = 200 * time.Millisecond

// Watch streams the anonymous user whenever the durable preference
// store changes, throttled to one emission per throttle interval.
// Emissions are suppressed while an authenticated session is active.
// The channel closes when ctx is done. Only file-backed durable stores
// can be watched.
func (s *Service) Watch(ctx context.Context) (<-chan *users.User, error) {
	return s.watch(ctx, DefaultWatchThrottle)
}

func (s *Service) watch(ctx context.Context, throttle time.Duration) (<-chan *users.User, error) {
	path := s.durable.Path()
	if path == "" {
		return nil, &watchUnsupportedError{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: the store writes via atomic
	// rename, which replaces the inode a file watch would be pinned to.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan *users.User)
	go s.watchLoop(ctx, watcher, path, throttle, out)
	return out, nil
}

func (s *Service) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, throttle time.Duration, out chan<- *users.User) {
	defer watcher.Close()
	defer close(out)

	var lastEmit time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if s.loggedIn() {
				continue
			}
			if now := time.Now(); now.Sub(lastEmit) >= throttle {
				lastEmit = now
				select {
				case out <- s.AnonymousUser():
				case <-ctx.Done():
					return
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.l.Error("preference watcher error", zap.Error(err))
		}
	}
}

type watchUnsupportedError struct{}

func (*watchUnsupportedError) Error() string {
	return "preference store is not file-backed, cannot watch for changes"
}
