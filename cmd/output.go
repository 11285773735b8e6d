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
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"tube-admin/pkg/users"
)

// printNotifier reports operation outcomes on stdout/stderr. It is the
// CLI's implementation of view.Notifier.
type printNotifier struct{}

func (printNotifier) Success(message string) {
	fmt.Printf("✅ %s\n", message)
}

func (printNotifier) Error(message string) {
	fmt.Fprintf(os.Stderr, "❌ %s\n", message)
}

// printUserTable renders one page of users as a column-aligned table.
func printUserTable(w io.Writer, list []*users.User, total int64) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(no users)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATE\tQUOTA USED\tQUOTA\tCREATED")
	for _, u := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID,
			u.Username,
			userEmailDisplay(u),
			u.RoleLabel,
			userStateDisplay(u),
			u.VideoQuotaUsedLabel,
			u.VideoQuotaLabel,
			u.CreatedAtLabel,
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nShowing %d of %d user(s)\n", len(list), total)
}

func userEmailDisplay(u *users.User) string {
	if u.Email == "" {
		return "-"
	}
	return u.Email
}

func userStateDisplay(u *users.User) string {
	if u.Blocked {
		if u.BlockedReason != "" {
			return fmt.Sprintf("banned (%s)", u.BlockedReason)
		}
		return "banned"
	}
	if !u.EmailVerified {
		return "unverified"
	}
	return "active"
}

// printAnonymousPrefs renders the synthesized anonymous user's
// preference fields.
func printAnonymousPrefs(w io.Writer, u *users.User) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "theme\t%s\n", u.Theme)
	fmt.Fprintf(tw, "nsfw_policy\t%s\n", nsfwPolicyDisplay(u.NSFWPolicy))
	fmt.Fprintf(tw, "webtorrent_enabled\t%t\n", u.WebTorrentEnabled)
	fmt.Fprintf(tw, "auto_play_video\t%t\n", u.AutoPlayVideo)
	fmt.Fprintf(tw, "auto_play_video_playlist\t%t\n", u.AutoPlayNextVideoPlaylist)
	fmt.Fprintf(tw, "auto_play_next_video\t%t (session)\n", u.AutoPlayNextVideo)
	fmt.Fprintf(tw, "video_languages\t%s\n", videoLanguagesDisplay(u.VideoLanguages))
	tw.Flush()
}

func nsfwPolicyDisplay(policy users.NSFWPolicy) string {
	if policy == "" {
		return "(unset)"
	}
	return string(policy)
}

func videoLanguagesDisplay(languages []string) string {
	if languages == nil {
		return "(all)"
	}
	if len(languages) == 0 {
		return "(none)"
	}
	out := languages[0]
	for _, l := range languages[1:] {
		out += ", " + l
	}
	return out
}
