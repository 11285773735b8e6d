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
	"os"
	"path/filepath"

	"tube-admin/internal/platform"
	"tube-admin/pkg/users"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	meDisplayName     string
	meTheme           string
	meNSFWPolicy      string
	meCurrentPassword string
	meNewPassword     string
	meNewEmail        string
)

// meCmd represents the consolidated self-service command
var meCmd = &cobra.Command{
	Use:   "me [show|update|change-password|change-email|quota|avatar|delete]",
	Short: "Manage your own account",
	Long: `Manage the authenticated user's own account:
  • show            - Print your profile
  • update          - Update display name, theme, or NSFW policy
  • change-password - Change your password
  • change-email    - Change your email address
  • quota           - Show video quota usage
  • avatar          - Upload a new avatar image
  • delete          - Delete your own account`,
	Example: `  tube-admin me show
  tube-admin me update --display-name "John Smith"
  tube-admin me change-password --current-password old --password new
  tube-admin me avatar ./avatar.png
  tube-admin me quota`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkExplicitEmptyToken(cmd); err != nil {
			return err
		}
		if _, err := requireToken(cmd); err != nil {
			return err
		}

		app, err := getPlatformFromCommand(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := context.Background()

		switch args[0] {
		case "show":
			return meShow(ctx, app)
		case "update":
			return meUpdate(ctx, app, cmd)
		case "change-password":
			return meChangePassword(ctx, app)
		case "change-email":
			return meChangeEmail(ctx, app)
		case "quota":
			return meQuota(ctx, app)
		case "avatar":
			if len(args) != 2 {
				return fmt.Errorf("usage: tube-admin me avatar <image file>")
			}
			return meAvatar(ctx, app, args[1])
		case "delete":
			return meDelete(ctx, app)
		default:
			return NewUnknownTypeError("me", args[0],
				"'show', 'update', 'change-password', 'change-email', 'quota', 'avatar', or 'delete'")
		}
	},
}

func meShow(ctx context.Context, app *platform.Platform) error {
	user, err := app.Users.GetMyProfile(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Username:     %s\n", user.Username)
	if user.DisplayName != "" {
		fmt.Printf("Display name: %s\n", user.DisplayName)
	}
	fmt.Printf("Email:        %s (verified: %t)\n", user.Email, user.EmailVerified)
	fmt.Printf("Role:         %s\n", user.Role.Label())
	fmt.Printf("Theme:        %s\n", user.Theme)
	fmt.Printf("NSFW policy:  %s\n", nsfwPolicyDisplay(user.NSFWPolicy))
	return nil
}

func meUpdate(ctx context.Context, app *platform.Platform, cmd *cobra.Command) error {
	update, err := buildMeUpdate(cmd)
	if err != nil {
		return err
	}
	if update == nil {
		return fmt.Errorf("nothing to update: pass at least one of --display-name, --theme, --nsfw-policy")
	}

	if err := app.Users.UpdateMyProfile(ctx, *update); err != nil {
		return err
	}

	printNotifier{}.Success("Profile updated.")
	return nil
}

func buildMeUpdate(cmd *cobra.Command) (*users.UserUpdateMe, error) {
	var update users.UserUpdateMe
	changed := false

	if cmd.Flag("display-name").Changed {
		name := meDisplayName
		update.DisplayName = &name
		changed = true
	}
	if cmd.Flag("theme").Changed {
		theme := meTheme
		update.Theme = &theme
		changed = true
	}
	if cmd.Flag("nsfw-policy").Changed {
		policy, err := parseNSFWPolicy(meNSFWPolicy)
		if err != nil {
			return nil, err
		}
		update.NSFWPolicy = &policy
		changed = true
	}

	if !changed {
		return nil, nil
	}
	return &update, nil
}

func meChangePassword(ctx context.Context, app *platform.Platform) error {
	current, newPassword := meCurrentPassword, meNewPassword
	var err error
	if current == "" {
		if current, err = promptLine("Current password: "); err != nil {
			return err
		}
	}
	if newPassword == "" {
		if newPassword, err = promptLine("New password: "); err != nil {
			return err
		}
	}
	if newPassword == "" {
		return fmt.Errorf("new password cannot be empty")
	}

	if err := app.Users.ChangePassword(ctx, current, newPassword); err != nil {
		return err
	}

	printNotifier{}.Success("Password changed.")
	return nil
}

func meChangeEmail(ctx context.Context, app *platform.Platform) error {
	if meNewEmail == "" {
		return fmt.Errorf("pass the new address with --email")
	}

	password := meCurrentPassword
	var err error
	if password == "" {
		if password, err = promptLine("Current password: "); err != nil {
			return err
		}
	}

	if err := app.Users.ChangeEmail(ctx, password, meNewEmail); err != nil {
		return err
	}

	printNotifier{}.Success("Email change requested. Check the new address for a verification link.")
	return nil
}

func meQuota(ctx context.Context, app *platform.Platform) error {
	user, err := app.Users.GetMyProfile(ctx)
	if err != nil {
		return err
	}

	used, err := app.Users.GetMyVideoQuotaUsed(ctx)
	if err != nil {
		return err
	}

	quotaLabel := "Unlimited"
	if user.VideoQuota != users.UnlimitedVideoQuota {
		quotaLabel = humanize.Bytes(uint64(user.VideoQuota))
	}

	fmt.Printf("Video quota: %s used of %s\n", humanize.Bytes(uint64(used.VideoQuotaUsed)), quotaLabel)
	return nil
}

func meAvatar(ctx context.Context, app *platform.Platform, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open avatar file: %w", err)
	}
	defer file.Close()

	avatar, err := app.Users.ChangeAvatar(ctx, filepath.Base(path), file)
	if err != nil {
		return err
	}

	printNotifier{}.Success(fmt.Sprintf("Avatar updated (%s).", avatar.Path))
	return nil
}

func meDelete(ctx context.Context, app *platform.Platform) error {
	confirm := newConfirmer()
	ok, err := confirm.Confirm("Your account and all its videos will be deleted. This cannot be undone.", "Delete my account")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := app.Users.DeleteMe(ctx); err != nil {
		return err
	}

	printNotifier{}.Success("Account deleted.")
	return nil
}

func init() {
	meCmd.Flags().StringVar(&meDisplayName, "display-name", "", "new display name")
	meCmd.Flags().StringVar(&meTheme, "theme", "", "new interface theme")
	meCmd.Flags().StringVar(&meNSFWPolicy, "nsfw-policy", "", "sensitive content policy: do_not_list, blur, or display")
	meCmd.Flags().StringVar(&meCurrentPassword, "current-password", "", "current password (prompted when omitted)")
	meCmd.Flags().StringVar(&meNewPassword, "password", "", "new password (prompted when omitted)")
	meCmd.Flags().StringVar(&meNewEmail, "email", "", "new email address")
	rootCmd.AddCommand(meCmd)
}
