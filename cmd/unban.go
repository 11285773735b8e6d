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

var unbanCmd = &cobra.Command{
	Use:     "unban [username]...",
	Short:   "Unban one or more user accounts.",
	Long:    "Lift the ban on user accounts so they can log in again.",
	Example: "tube-admin unban alice\ntube-admin unban alice bob --yes",
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

		return table.UnbanUsers(ctx, targets)
	},
}

func init() {
	rootCmd.AddCommand(unbanCmd)
}
