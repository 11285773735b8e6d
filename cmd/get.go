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

	"tube-admin/pkg/users"

	"github.com/spf13/cobra"
)

var getWithStats bool

var getCmd = &cobra.Command{
	Use:     "get [username]",
	Short:   "Show a single user account.",
	Long:    "Fetch one user by username and print the full record, optionally with usage statistics.",
	Example: "tube-admin get alice\ntube-admin get alice --stats",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkExplicitEmptyToken(cmd); err != nil {
			return err
		}

		app, err := getPlatformFromCommand(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := context.Background()
		target, err := resolveUser(ctx, app, args[0])
		if err != nil {
			return err
		}

		// Stats are per-request; the plain record goes through the
		// memoized fetch path.
		var user *users.User
		if getWithStats {
			user, err = app.Users.GetUser(ctx, target.ID, true)
		} else {
			user, err = app.Users.GetUserWithCache(ctx, target.ID)
		}
		if err != nil {
			return err
		}

		fmt.Printf("ID:            %d\n", user.ID)
		fmt.Printf("Username:      %s\n", user.Username)
		if user.DisplayName != "" {
			fmt.Printf("Display name:  %s\n", user.DisplayName)
		}
		fmt.Printf("Email:         %s (verified: %t)\n", user.Email, user.EmailVerified)
		fmt.Printf("Role:          %s\n", user.Role.Label())
		fmt.Printf("State:         %s\n", userStateDisplay(user))
		if getWithStats {
			fmt.Printf("Quota used:    %d bytes\n", user.VideoQuotaUsed)
		}
		if !user.CreatedAt.IsZero() {
			fmt.Printf("Created:       %s\n", user.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&getWithStats, "stats", false, "include usage statistics")
	rootCmd.AddCommand(getCmd)
}
