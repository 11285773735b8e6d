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

import "time"

// RootUsername is the designated account that can never be deleted or banned.
const RootUsername = "root"

// UserRole mirrors the numeric role values used on the wire.
type UserRole int

const (
	RoleAdministrator UserRole = 0
	RoleModerator     UserRole = 1
	RoleUser          UserRole = 2
)

// Label returns the fixed display label for a role. Unknown roles
// return an empty string rather than guessing.
func (r UserRole) Label() string {
	switch r {
	case RoleAdministrator:
		return "Administrator"
	case RoleModerator:
		return "Moderator"
	case RoleUser:
		return "User"
	default:
		return ""
	}
}

// NSFWPolicy controls how sensitive videos are presented.
type NSFWPolicy string

const (
	NSFWPolicyDoNotList NSFWPolicy = "do_not_list"
	NSFWPolicyBlur      NSFWPolicy = "blur"
	NSFWPolicyDisplay   NSFWPolicy = "display"
)

// UnlimitedVideoQuota is the sentinel quota value meaning "no limit".
const UnlimitedVideoQuota int64 = -1

// User is a user account as returned by the API, plus the client-side
// display fields filled in when records pass through list formatting.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName,omitempty"`
	Role           UserRole  `json:"role"`
	Blocked        bool      `json:"blocked"`
	BlockedReason  string    `json:"blockedReason,omitempty"`
	EmailVerified  bool      `json:"emailVerified"`
	VideoQuota     int64     `json:"videoQuota"`
	VideoQuotaUsed int64     `json:"videoQuotaUsed"`
	CreatedAt      time.Time `json:"createdAt"`

	// Preference fields. For authenticated users they come from the
	// server; for the anonymous user they are synthesized from the
	// local preference stores.
	NSFWPolicy                NSFWPolicy `json:"nsfwPolicy,omitempty"`
	Theme                     string     `json:"theme,omitempty"`
	WebTorrentEnabled         bool       `json:"webTorrentEnabled"`
	AutoPlayVideo             bool       `json:"autoPlayVideo"`
	AutoPlayNextVideo         bool       `json:"autoPlayNextVideo"`
	AutoPlayNextVideoPlaylist bool       `json:"autoPlayNextVideoPlaylist"`
	VideoLanguages            []string   `json:"videoLanguages,omitempty"`

	// Display transforms, never sent on the wire.
	RoleLabel           string `json:"-"`
	VideoQuotaLabel     string `json:"-"`
	VideoQuotaUsedLabel string `json:"-"`
	CreatedAtLabel      string `json:"-"`
}

// IsRoot reports whether this is the root account.
func (u *User) IsRoot() bool {
	return u.Username == RootUsername
}

// CanManage reports whether this user has management rights over target.
// Administrators manage everyone; moderators manage plain users only.
func (u *User) CanManage(target *User) bool {
	if u.Role == RoleAdministrator {
		return true
	}
	if u.Role == RoleModerator {
		return target.Role == RoleUser
	}
	return false
}

// UserCreate is the payload for creating a user from the admin surface.
type UserCreate struct {
	Username   string   `json:"username"`
	Password   string   `json:"password"`
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	VideoQuota int64    `json:"videoQuota"`
}

// UserUpdate is a partial update applied to another user's account.
// Nil fields are left untouched server-side.
type UserUpdate struct {
	Email         *string   `json:"email,omitempty"`
	EmailVerified *bool     `json:"emailVerified,omitempty"`
	Role          *UserRole `json:"role,omitempty"`
	VideoQuota    *int64    `json:"videoQuota,omitempty"`
}

// UserUpdateMe is a partial update of the current user's own profile and
// preferences. The preference fields double as the anonymous-profile
// update payload handled by the local preference stores.
type UserUpdateMe struct {
	DisplayName     *string `json:"displayName,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	Password        *string `json:"password,omitempty"`

	NSFWPolicy                *NSFWPolicy `json:"nsfwPolicy,omitempty"`
	Theme                     *string     `json:"theme,omitempty"`
	WebTorrentEnabled         *bool       `json:"webTorrentEnabled,omitempty"`
	AutoPlayVideo             *bool       `json:"autoPlayVideo,omitempty"`
	AutoPlayNextVideo         *bool       `json:"autoPlayNextVideo,omitempty"`
	AutoPlayNextVideoPlaylist *bool       `json:"autoPlayNextVideoPlaylist,omitempty"`
	VideoLanguages            []string    `json:"videoLanguages,omitempty"`
}

// UserRegister is the self-service signup payload.
type UserRegister struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Avatar is the server's record of a picked avatar image.
type Avatar struct {
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VideoQuotaUsed reports how much of the video quota is consumed.
type VideoQuotaUsed struct {
	VideoQuotaUsed int64 `json:"videoQuotaUsed"`
}

// ResultList is the standard paginated list envelope.
type ResultList struct {
	Total int64   `json:"total"`
	Data  []*User `json:"data"`
}

// Pagination is an offset/count window into a list.
type Pagination struct {
	Start int
	Count int
}

// Sort names a sort field and direction.
type Sort struct {
	Field      string
	Descending bool
}

// Param renders the sort in wire form, e.g. "-createdAt" for descending.
func (s Sort) Param() string {
	if s.Field == "" {
		return ""
	}
	if s.Descending {
		return "-" + s.Field
	}
	return s.Field
}

// ListParams bundles everything a paginated user listing accepts.
type ListParams struct {
	Pagination Pagination
	Sort       Sort

	// Search is the raw free-text filter. Recognized prefixes such as
	// "banned:true" are parsed into structured query parameters; the
	// rest is passed through as a plain search string.
	Search string
}

// ServerConfig is the subset of the instance configuration the admin
// surface cares about.
type ServerConfig struct {
	Signup struct {
		RequiresEmailVerification bool `json:"requiresEmailVerification"`
	} `json:"signup"`
}
