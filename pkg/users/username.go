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

package users

import (
	"strings"
	"unicode"
)

// UsernameFromDisplayName derives a canonical username from a display
// name: lowercase, whitespace replaced with underscores, and every
// character outside [a-z0-9_.] stripped.
func UsernameFromDisplayName(displayName string) string {
	if displayName == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range strings.ToLower(displayName) {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte('_')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RecommendedUsername re-derives a username after a display-name edit,
// but only if the current username still matches what the previous
// display name would have produced. A username the user chose by hand
// is left alone.
func RecommendedUsername(oldDisplayName, newDisplayName, currentUsername string) string {
	if UsernameFromDisplayName(oldDisplayName) != currentUsername {
		return currentUsername
	}
	return UsernameFromDisplayName(newDisplayName)
}
