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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"tube-admin/internal/platform"
	"tube-admin/internal/prefs"
	"tube-admin/pkg/config"
	"tube-admin/pkg/users"

	"github.com/spf13/cobra"
)

// prefsCmd represents the consolidated prefs command
var prefsCmd = &cobra.Command{
	Use:   "prefs [get|set|list|watch]",
	Short: "Manage anonymous viewing preferences",
	Long: `Manage the anonymous user's locally stored viewing preferences:
  • get   - Print one preference value
  • set   - Store one preference value
  • list  - Print the full synthesized anonymous profile
  • watch - Stream preference changes made by other processes

Durable keys persist in ~/.tube-admin/prefs.json; session keys live only
for the current process. Keys: nsfw_policy, webtorrent_enabled,
auto_play_video, auto_play_video_playlist, theme, video_languages,
auto_play_next_video.`,
	Example: `  tube-admin prefs set theme dark
  tube-admin prefs get theme
  tube-admin prefs set video_languages en,fr
  tube-admin prefs list
  tube-admin prefs watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "get":
			if len(args) != 2 {
				return fmt.Errorf("usage: tube-admin prefs get <key>")
			}
			return prefsGet(args[1])
		case "set":
			if len(args) != 3 {
				return fmt.Errorf("usage: tube-admin prefs set <key> <value>")
			}
			return prefsSet(args[1], args[2])
		case "list":
			return prefsList()
		case "watch":
			return prefsWatch()
		default:
			return NewUnknownTypeError("prefs", args[0], "'get', 'set', 'list', or 'watch'")
		}
	},
}

// getPrefsService builds the preference service on local state alone.
// Preference commands never talk to the instance, so no server URL or
// token is required.
func getPrefsService() (*prefs.Service, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get data directory: %w", err)
	}
	if err := config.EnsureDataDirectory(filepath.Join(dataDir, platform.PrefsFileName)); err != nil {
		return nil, err
	}

	l, err := platform.Logger(DebugFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	durable := prefs.NewFileStore(filepath.Join(dataDir, platform.PrefsFileName))
	session := prefs.NewMemoryStore()
	return prefs.NewService(durable, session, nil, l), nil
}

func prefsGet(key string) error {
	spec, ok := prefs.Lookup(key)
	if !ok {
		return NewUnknownPreferenceError(key)
	}

	svc, err := getPrefsService()
	if err != nil {
		return err
	}

	store := svc.DurableStore()
	if spec.Domain == prefs.DomainSession {
		return fmt.Errorf("preference '%s' is session-scoped and does not persist across runs", key)
	}

	value, found, err := store.Get(key)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("(unset)")
		return nil
	}

	fmt.Println(value)
	return nil
}

func prefsSet(key, value string) error {
	svc, err := getPrefsService()
	if err != nil {
		return err
	}

	update, err := prefsUpdateFor(key, value)
	if err != nil {
		return err
	}

	svc.UpdateAnonymousProfile(*update)
	printNotifier{}.Success(fmt.Sprintf("Preference '%s' set.", key))
	return nil
}

// prefsUpdateFor translates a raw key/value pair into the typed partial
// profile update the preference service accepts.
func prefsUpdateFor(key, value string) (*users.UserUpdateMe, error) {
	var update users.UserUpdateMe

	switch key {
	case prefs.KeyNSFWPolicy:
		policy, err := parseNSFWPolicy(value)
		if err != nil {
			return nil, err
		}
		update.NSFWPolicy = &policy
	case prefs.KeyTheme:
		theme := value
		update.Theme = &theme
	case prefs.KeyWebTorrentEnabled:
		b, err := parsePrefBool(key, value)
		if err != nil {
			return nil, err
		}
		update.WebTorrentEnabled = &b
	case prefs.KeyAutoPlayVideo:
		b, err := parsePrefBool(key, value)
		if err != nil {
			return nil, err
		}
		update.AutoPlayVideo = &b
	case prefs.KeyAutoPlayVideoPlaylist:
		b, err := parsePrefBool(key, value)
		if err != nil {
			return nil, err
		}
		update.AutoPlayNextVideoPlaylist = &b
	case prefs.KeyAutoPlayNextVideo:
		b, err := parsePrefBool(key, value)
		if err != nil {
			return nil, err
		}
		update.AutoPlayNextVideo = &b
	case prefs.KeyVideoLanguages:
		update.VideoLanguages = parseLanguageList(value)
	default:
		return nil, NewUnknownPreferenceError(key)
	}

	return &update, nil
}

func parseNSFWPolicy(value string) (users.NSFWPolicy, error) {
	switch users.NSFWPolicy(value) {
	case users.NSFWPolicyDoNotList, users.NSFWPolicyBlur, users.NSFWPolicyDisplay:
		return users.NSFWPolicy(value), nil
	default:
		return "", NewUnknownTypeError("nsfw policy", value, "'do_not_list', 'blur', or 'display'")
	}
}

func parsePrefBool(key, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, NewUnknownTypeError(key, value, "'true' or 'false'")
	}
}

// parseLanguageList splits a comma-separated language list. An empty
// string means "no languages selected", which is distinct from unset.
func parseLanguageList(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	languages := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			languages = append(languages, trimmed)
		}
	}
	return languages
}

func prefsList() error {
	svc, err := getPrefsService()
	if err != nil {
		return err
	}

	printAnonymousPrefs(os.Stdout, svc.AnonymousUser())
	return nil
}

// prefsWatch streams the synthesized anonymous profile every time the
// durable store changes on disk, until interrupted.
func prefsWatch() error {
	svc, err := getPrefsService()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	changes, err := svc.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Watching for preference changes (Ctrl-C to stop)...")
	for user := range changes {
		payload, err := json.Marshal(anonymousPrefsPayload(user))
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
	}
	return nil
}

// anonymousPrefsPayload shapes the watch stream output as one flat
// JSON object per change.
func anonymousPrefsPayload(u *users.User) map[string]any {
	return map[string]any{
		prefs.KeyTheme:                 u.Theme,
		prefs.KeyNSFWPolicy:            string(u.NSFWPolicy),
		prefs.KeyWebTorrentEnabled:     u.WebTorrentEnabled,
		prefs.KeyAutoPlayVideo:         u.AutoPlayVideo,
		prefs.KeyAutoPlayVideoPlaylist: u.AutoPlayNextVideoPlaylist,
		prefs.KeyVideoLanguages:        u.VideoLanguages,
	}
}

func init() {
	rootCmd.AddCommand(prefsCmd)
}
