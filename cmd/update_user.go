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

var (
	updateUserEmail string
	updateUserRole  string
	updateUserQuota string
)

var updateUserCmd = &cobra.Command{
	Use:   "update-user [username]",
	Short: "Update another user's email, role, or video quota.",
	Long:  "Apply a partial update to a user account. Only the fields passed as flags are changed; everything else is left untouched.",
	Example: `  tube-admin update-user alice --role moderator
  tube-admin update-user bob --quota 5368709120 --email bob@example.net`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkExplicitEmptyToken(cmd); err != nil {
			return err
		}

		update, err := buildUserUpdate(cmd)
		if err != nil {
			return err
		}
		if update == nil {
			return fmt.Errorf("nothing to update: pass at least one of --email, --role, --quota")
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

		if err := app.Users.UpdateUser(ctx, target.ID, *update); err != nil {
			return err
		}

		printNotifier{}.Success(fmt.Sprintf("User '%s' updated.", target.Username))
		return nil
	},
}

// buildUserUpdate translates the changed flags into a partial update.
// Returns nil when no update flag was passed at all.
func buildUserUpdate(cmd *cobra.Command) (*users.UserUpdate, error) {
	var update users.UserUpdate
	changed := false

	if cmd.Flag("email").Changed {
		email := updateUserEmail
		update.Email = &email
		changed = true
	}
	if cmd.Flag("role").Changed {
		role, err := parseRole(updateUserRole)
		if err != nil {
			return nil, err
		}
		update.Role = &role
		changed = true
	}
	if cmd.Flag("quota").Changed {
		quota, err := parseQuota(updateUserQuota)
		if err != nil {
			return nil, err
		}
		update.VideoQuota = &quota
		changed = true
	}

	if !changed {
		return nil, nil
	}
	return &update, nil
}

func init() {
	updateUserCmd.Flags().StringVar(&updateUserEmail, "email", "", "new email address")
	updateUserCmd.Flags().StringVar(&updateUserRole, "role", "", "new role: admin, moderator, or user")
	updateUserCmd.Flags().StringVar(&updateUserQuota, "quota", "", "new video quota in bytes, or 'unlimited'")
	rootCmd.AddCommand(updateUserCmd)
}
