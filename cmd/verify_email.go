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

	"github.com/spf13/cobra"
)

var verifyEmailCmd = &cobra.Command{
	Use:     "verify-email [username]...",
	Short:   "Mark users' email addresses as verified.",
	Long:    "Set the email addresses of user accounts as verified without sending a verification email. Only available on instances whose signup policy requires verified emails.",
	Example: "tube-admin verify-email alice\ntube-admin verify-email alice bob",
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

		if !table.RequiresEmailVerification() {
			return fmt.Errorf("this instance does not require email verification")
		}

		targets, err := resolveUsers(ctx, app, args)
		if err != nil {
			return err
		}

		return table.SetEmailsAsVerified(ctx, targets)
	},
}

func init() {
	rootCmd.AddCommand(verifyEmailCmd)
}
