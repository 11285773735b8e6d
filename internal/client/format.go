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
	"github.com/dustin/go-humanize"

	"tube-admin/pkg/users"
)

// UnlimitedQuotaLabel is what a -1 video quota renders as.
const UnlimitedQuotaLabel = "Unlimited"

// formatUser fills in the display fields of a record coming back from
// the list endpoint: localized role label, human byte sizes for the
// quota fields, and a humanized creation date.
func formatUser(u *users.User) {
	u.RoleLabel = u.Role.Label()
	u.VideoQuotaLabel = formatVideoQuota(u.VideoQuota)
	u.VideoQuotaUsedLabel = formatBytes(u.VideoQuotaUsed)
	if !u.CreatedAt.IsZero() {
		u.CreatedAtLabel = humanize.Time(u.CreatedAt)
	}
}

func formatVideoQuota(quota int64) string {
	if quota == users.UnlimitedVideoQuota {
		return UnlimitedQuotaLabel
	}
	return formatBytes(quota)
}

func formatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
