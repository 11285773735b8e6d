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

package client

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"tube-admin/pkg/users"
)

// userCache memoizes single-user fetches by id. Concurrent callers for
// the same id share one in-flight request through the singleflight
// group. Entries live until explicitly invalidated; the client
// invalidates on every mutation of the corresponding user.
type userCache struct {
	mu    sync.RWMutex
	byID  map[int64]*users.User
	group singleflight.Group
}

func newUserCache() *userCache {
	return &userCache{byID: make(map[int64]*users.User)}
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// get returns the cached record for id, fetching it via fetch on a
// miss. Errors are not cached, so a failed fetch can be retried.
func (c *userCache) get(id int64, fetch func() (*users.User, error)) (*users.User, error) {
	c.mu.RLock()
	if u, ok := c.byID[id]; ok {
		c.mu.RUnlock()
		return u, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(cacheKey(id), func() (any, error) {
		u, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.byID[id] = u
		c.mu.Unlock()
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*users.User), nil
}

// invalidate drops the cached record for id, if any, and forgets any
// in-flight fetch so the next caller gets a fresh request.
func (c *userCache) invalidate(id int64) {
	c.mu.Lock()
	delete(c.byID, id)
	c.mu.Unlock()
	c.group.Forget(cacheKey(id))
}
