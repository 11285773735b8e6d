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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameFromDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		want        string
	}{
		{"simple name", "John Smith", "john_smith"},
		{"already valid", "john_smith", "john_smith"},
		{"mixed case", "JohnSmith", "johnsmith"},
		{"punctuation stripped", "John O'Brien!", "john_obrien"},
		{"dots kept", "j.smith", "j.smith"},
		{"digits kept", "user42", "user42"},
		{"multiple spaces", "a  b", "a__b"},
		{"tabs and newlines", "a\tb\nc", "a_b_c"},
		{"accents stripped", "Héloïse", "hlose"},
		{"empty", "", ""},
		{"only invalid characters", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsernameFromDisplayName(tt.displayName))
		})
	}
}

func TestRecommendedUsername(t *testing.T) {
	t.Run("re-derives when username tracked the old display name", func(t *testing.T) {
		got := RecommendedUsername("John Smith", "Jane Doe", "john_smith")
		assert.Equal(t, "jane_doe", got)
	})

	t.Run("keeps a hand-picked username", func(t *testing.T) {
		got := RecommendedUsername("John Smith", "Jane Doe", "cooldude")
		assert.Equal(t, "cooldude", got)
	})

	t.Run("fresh profile derives from the new name", func(t *testing.T) {
		got := RecommendedUsername("", "Jane Doe", "")
		assert.Equal(t, "jane_doe", got)
	})
}
