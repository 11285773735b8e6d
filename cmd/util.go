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
	"fmt"
	"strconv"
	"strings"

	"tube-admin/internal/platform"
	"tube-admin/internal/view"
	"tube-admin/pkg/users"

	"github.com/spf13/cobra"
)

// resolveUserPageSize caps how many fuzzy hits each page fetches while
// scanning for the exact username.
const resolveUserPageSize = 100

// resolveUser finds a user record by exact username. The listing
// endpoint does fuzzy matching, so every page of hits is scanned until
// the exact one turns up or the results run out.
func resolveUser(ctx context.Context, app *platform.Platform, username string) (*users.User, error) {
	for start := 0; ; start += resolveUserPageSize {
		result, err := app.Users.ListUsers(ctx, users.ListParams{
			Pagination: users.Pagination{Start: start, Count: resolveUserPageSize},
			Sort:       users.Sort{Field: "username"},
			Search:     username,
		})
		if err != nil {
			return nil, err
		}

		for _, u := range result.Data {
			if u.Username == username {
				return u, nil
			}
		}

		if len(result.Data) == 0 || int64(start+len(result.Data)) >= result.Total {
			return nil, NewUserNotFoundError(username)
		}
	}
}

// resolveUsers resolves every username or fails on the first unknown one.
func resolveUsers(ctx context.Context, app *platform.Platform, usernames []string) ([]*users.User, error) {
	targets := make([]*users.User, 0, len(usernames))
	for _, name := range usernames {
		u, err := resolveUser(ctx, app, name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, u)
	}
	return targets, nil
}

// getAuthUser resolves who is driving the session: the authenticated
// profile when a token is configured, otherwise the local anonymous
// user (who holds no management rights over anyone).
func getAuthUser(ctx context.Context, app *platform.Platform) (*users.User, error) {
	user, err := app.Prefs.AnonymousOrLoggedUser(ctx, app.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to load own profile: %w", err)
	}
	return user, nil
}

// newUserTable wires the user-list controller to terminal
// collaborators: printed notifications, stdin confirmations, and the
// interactive ban prompt.
func newUserTable(ctx context.Context, app *platform.Platform, search string) (*view.UserTable, error) {
	authUser, err := getAuthUser(ctx, app)
	if err != nil {
		return nil, err
	}

	return view.NewUserTable(
		ctx,
		app.Users,
		printNotifier{},
		newConfirmer(),
		&cliBanPrompt{svc: app.Users},
		authUser,
		search,
	)
}

// parseRole maps a role name to its wire value.
func parseRole(roleStr string) (users.UserRole, error) {
	switch strings.ToLower(strings.TrimSpace(roleStr)) {
	case "admin", "administrator":
		return users.RoleAdministrator, nil
	case "moderator":
		return users.RoleModerator, nil
	case "user":
		return users.RoleUser, nil
	default:
		return 0, NewUnknownTypeError("role", roleStr, "'admin', 'moderator', or 'user'")
	}
}

// parseQuota accepts a byte count or "unlimited".
func parseQuota(quotaStr string) (int64, error) {
	if strings.EqualFold(strings.TrimSpace(quotaStr), "unlimited") {
		return users.UnlimitedVideoQuota, nil
	}
	quota, err := strconv.ParseInt(strings.TrimSpace(quotaStr), 10, 64)
	if err != nil || quota < users.UnlimitedVideoQuota {
		return 0, NewUnknownTypeError("quota", quotaStr, "a byte count or 'unlimited'")
	}
	return quota, nil
}

// checkExplicitEmptyToken rejects a --token flag explicitly set to "".
func checkExplicitEmptyToken(cmd *cobra.Command) error {
	if flag := cmd.Flag("token"); flag != nil && flag.Changed && TokenFlag == "" {
		return ErrAuthenticationRequired
	}
	return nil
}
