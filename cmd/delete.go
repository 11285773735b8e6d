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

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [username]...",
	Aliases: []string{"del", "rm"},
	Short:   "Delete one or more user accounts.",
	Long:    "Delete user accounts. Their videos are deleted and their comments tombstoned. This cannot be undone, and the usernames cannot be reused. The root account can never be deleted; including it aborts the whole operation before any account is touched.",
	Example: "tube-admin delete alice\ntube-admin delete alice bob --yes",
	Args:    cobra.MinimumNArgs(1),
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
		table, err := newUserTable(ctx, app, "")
		if err != nil {
			return err
		}

		targets, err := resolveUsers(ctx, app, args)
		if err != nil {
			return err
		}

		return table.RemoveUsers(ctx, targets)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
