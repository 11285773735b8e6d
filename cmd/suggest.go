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

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var suggestCopy bool

var suggestUsernameCmd = &cobra.Command{
	Use:   "suggest-username [display name]",
	Short: "Derive a valid username from a display name.",
	Long: `Derive a username from a free-form display name: lowercased, spaces
become underscores, and anything outside [a-z0-9_.] is dropped.`,
	Example: `  tube-admin suggest-username "John Smith"      # john_smith
  tube-admin suggest-username "Ava Lovelace!" --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := users.UsernameFromDisplayName(args[0])
		if username == "" {
			return fmt.Errorf("display name %q yields no valid username characters", args[0])
		}

		fmt.Println(username)

		if suggestCopy {
			if err := clipboard.WriteAll(username); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Println("✅ Copied to clipboard")
		}
		return nil
	},
}

var autocompleteCmd = &cobra.Command{
	Use:     "autocomplete [search]",
	Short:   "Suggest existing usernames matching a search string.",
	Example: "tube-admin autocomplete jo",
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

		names, err := app.Users.Autocomplete(context.Background(), args[0])
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Println("(no matches)")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	suggestUsernameCmd.Flags().BoolVar(&suggestCopy, "copy", false, "copy the suggestion to the clipboard")
	rootCmd.AddCommand(suggestUsernameCmd)
	rootCmd.AddCommand(autocompleteCmd)
}
