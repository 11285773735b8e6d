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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-admin/pkg/users"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    users.UserRole
		wantErr bool
	}{
		{"admin", users.RoleAdministrator, false},
		{"administrator", users.RoleAdministrator, false},
		{"Moderator", users.RoleModerator, false},
		{"user", users.RoleUser, false},
		{" user ", users.RoleUser, false},
		{"superuser", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := parseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestParseQuota(t *testing.T) {
	t.Run("unlimited keyword", func(t *testing.T) {
		quota, err := parseQuota("unlimited")
		require.NoError(t, err)
		assert.Equal(t, users.UnlimitedVideoQuota, quota)
	})

	t.Run("byte count", func(t *testing.T) {
		quota, err := parseQuota("5368709120")
		require.NoError(t, err)
		assert.EqualValues(t, 5368709120, quota)
	})

	t.Run("negative below sentinel rejected", func(t *testing.T) {
		_, err := parseQuota("-2")
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := parseQuota("lots")
		assert.Error(t, err)
	})
}

func TestParseSortParam(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		sort, err := parseSortParam("username")
		require.NoError(t, err)
		assert.Equal(t, users.Sort{Field: "username"}, sort)
	})

	t.Run("descending", func(t *testing.T) {
		sort, err := parseSortParam("-createdAt")
		require.NoError(t, err)
		assert.Equal(t, users.Sort{Field: "createdAt", Descending: true}, sort)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := parseSortParam("height")
		assert.Error(t, err)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := parseSortParam("")
		assert.Error(t, err)

		_, err = parseSortParam("-")
		assert.Error(t, err)
	})
}

func TestParseLanguageList(t *testing.T) {
	assert.Equal(t, []string{"en", "fr"}, parseLanguageList("en,fr"))
	assert.Equal(t, []string{"en", "fr"}, parseLanguageList(" en , fr "))
	assert.Equal(t, []string{"en"}, parseLanguageList("en,,"))
	assert.Equal(t, []string{}, parseLanguageList(""))
}

func TestPrefsUpdateFor(t *testing.T) {
	t.Run("theme", func(t *testing.T) {
		update, err := prefsUpdateFor("theme", "dark")
		require.NoError(t, err)
		require.NotNil(t, update.Theme)
		assert.Equal(t, "dark", *update.Theme)
	})

	t.Run("nsfw policy validates", func(t *testing.T) {
		update, err := prefsUpdateFor("nsfw_policy", "blur")
		require.NoError(t, err)
		require.NotNil(t, update.NSFWPolicy)
		assert.Equal(t, users.NSFWPolicyBlur, *update.NSFWPolicy)

		_, err = prefsUpdateFor("nsfw_policy", "sometimes")
		assert.Error(t, err)
	})

	t.Run("booleans validate", func(t *testing.T) {
		update, err := prefsUpdateFor("auto_play_video", "true")
		require.NoError(t, err)
		require.NotNil(t, update.AutoPlayVideo)
		assert.True(t, *update.AutoPlayVideo)

		_, err = prefsUpdateFor("auto_play_video", "yes")
		assert.Error(t, err)
	})

	t.Run("languages split on commas", func(t *testing.T) {
		update, err := prefsUpdateFor("video_languages", "en,fr")
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr"}, update.VideoLanguages)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		_, err := prefsUpdateFor("volume", "11")
		assert.Error(t, err)
	})
}

func TestUserStateDisplay(t *testing.T) {
	assert.Equal(t, "active", userStateDisplay(&users.User{EmailVerified: true}))
	assert.Equal(t, "unverified", userStateDisplay(&users.User{}))
	assert.Equal(t, "banned", userStateDisplay(&users.User{Blocked: true, EmailVerified: true}))
	assert.Equal(t, "banned (spam)", userStateDisplay(&users.User{Blocked: true, BlockedReason: "spam"}))
}

func TestVideoLanguagesDisplay(t *testing.T) {
	assert.Equal(t, "(all)", videoLanguagesDisplay(nil))
	assert.Equal(t, "(none)", videoLanguagesDisplay([]string{}))
	assert.Equal(t, "en, fr", videoLanguagesDisplay([]string{"en", "fr"}))
}
