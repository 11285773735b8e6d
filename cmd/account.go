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

	"tube-admin/internal/platform"
	"tube-admin/pkg/users"

	"github.com/spf13/cobra"
)

var (
	accountPassword    string
	accountDisplayName string
	accountPending     bool
)

// accountCmd represents the registration and recovery flows, which all
// run without a token.
var accountCmd = &cobra.Command{
	Use:   "account [register|ask-reset-password|reset-password|verify-email|ask-send-verify-email]",
	Short: "Register an account or recover access",
	Long: `Anonymous account flows:
  • register              - Sign up for a new account
  • ask-reset-password    - Request a password reset email
  • reset-password        - Set a new password using an emailed code
  • verify-email          - Confirm an email address using an emailed code
  • ask-send-verify-email - Request the verification email again`,
	Example: `  tube-admin account register alice alice@example.com
  tube-admin account ask-reset-password alice@example.com
  tube-admin account reset-password 42 <verification code> --password newpass
  tube-admin account verify-email 42 <verification code>
  tube-admin account ask-send-verify-email alice@example.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getPlatformFromCommand(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := context.Background()

		switch args[0] {
		case "register":
			if len(args) != 3 {
				return fmt.Errorf("usage: tube-admin account register <username> <email>")
			}
			return accountRegister(ctx, app, args[1], args[2])
		case "ask-reset-password":
			if len(args) != 2 {
				return fmt.Errorf("usage: tube-admin account ask-reset-password <email>")
			}
			if err := app.Users.AskResetPassword(ctx, args[1]); err != nil {
				return err
			}
			printNotifier{}.Success("Password reset email sent. Check your inbox.")
			return nil
		case "reset-password":
			if len(args) != 3 {
				return fmt.Errorf("usage: tube-admin account reset-password <user id> <verification code>")
			}
			return accountResetPassword(ctx, app, args[1], args[2])
		case "verify-email":
			if len(args) != 3 {
				return fmt.Errorf("usage: tube-admin account verify-email <user id> <verification code>")
			}
			return accountVerifyEmail(ctx, app, args[1], args[2])
		case "ask-send-verify-email":
			if len(args) != 2 {
				return fmt.Errorf("usage: tube-admin account ask-send-verify-email <email>")
			}
			if err := app.Users.AskSendVerifyEmail(ctx, args[1]); err != nil {
				return err
			}
			printNotifier{}.Success("Verification email sent. Check your inbox.")
			return nil
		default:
			return NewUnknownTypeError("account", args[0],
				"'register', 'ask-reset-password', 'reset-password', 'verify-email', or 'ask-send-verify-email'")
		}
	},
}

func accountRegister(ctx context.Context, app *platform.Platform, username, email string) error {
	password := accountPassword
	var err error
	if password == "" {
		if password, err = promptLine("Password: "); err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	register := users.UserRegister{
		Username:    username,
		Password:    password,
		Email:       email,
		DisplayName: accountDisplayName,
	}
	if err := app.Users.Register(ctx, register); err != nil {
		return err
	}

	printNotifier{}.Success(fmt.Sprintf("Account '%s' registered. Check %s for a verification email.", username, email))
	return nil
}

func accountResetPassword(ctx context.Context, app *platform.Platform, idStr, code string) error {
	id, err := parseUserID(idStr)
	if err != nil {
		return err
	}

	password := accountPassword
	if password == "" {
		if password, err = promptLine("New password: "); err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if err := app.Users.ResetPassword(ctx, id, code, password); err != nil {
		return err
	}

	printNotifier{}.Success("Password reset.")
	return nil
}

func accountVerifyEmail(ctx context.Context, app *platform.Platform, idStr, code string) error {
	id, err := parseUserID(idStr)
	if err != nil {
		return err
	}

	if err := app.Users.VerifyEmail(ctx, id, code, accountPending); err != nil {
		return err
	}

	printNotifier{}.Success("Email verified.")
	return nil
}

func parseUserID(idStr string) (int64, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", idStr)
	}
	return id, nil
}

func init() {
	accountCmd.Flags().StringVar(&accountPassword, "password", "", "password (prompted when omitted)")
	accountCmd.Flags().StringVar(&accountDisplayName, "display-name", "", "display name shown instead of the username")
	accountCmd.Flags().BoolVar(&accountPending, "pending-email", false, "confirm a pending email change instead of the signup email")
	rootCmd.AddCommand(accountCmd)
}
