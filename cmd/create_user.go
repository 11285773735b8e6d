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
	createUserPassword string
	createUserRole     string
	createUserQuota    string
)

var createUserCmd = &cobra.Command{
	Use:     "create-user [username] [email]",
	Short:   "Create a new user (admin, moderator, or user).",
	Long:    "Create a new user account with a role and video quota. Administrators manage everyone; moderators manage plain users; users manage nobody.",
	Example: "tube-admin create-user alice alice@example.com --role user --quota unlimited\ntube-admin create-user bob bob@example.com --role moderator --password hunter2",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkExplicitEmptyToken(cmd); err != nil {
			return err
		}

		input, err := collectCreateUserInput(args)
		if err != nil {
			return err
		}

		app, err := getPlatformFromCommand(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Users.CreateUser(context.Background(), *input); err != nil {
			return err
		}

		printNotifier{}.Success(fmt.Sprintf("User '%s' created.", input.Username))
		return nil
	},
}

// collectCreateUserInput gathers the creation payload from args, flags,
// and interactive prompts for anything still missing.
func collectCreateUserInput(args []string) (*users.UserCreate, error) {
	username := args[0]
	email := args[1]

	role, err := parseRole(createUserRole)
	if err != nil {
		return nil, err
	}

	quota, err := parseQuota(createUserQuota)
	if err != nil {
		return nil, err
	}

	password := createUserPassword
	if password == "" {
		password, err = promptLine("Password: ")
		if err != nil {
			return nil, err
		}
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	return &users.UserCreate{
		Username:   username,
		Password:   password,
		Email:      email,
		Role:       role,
		VideoQuota: quota,
	}, nil
}

func init() {
	createUserCmd.Flags().StringVar(&createUserPassword, "password", "", "initial password (prompted when omitted)")
	createUserCmd.Flags().StringVar(&createUserRole, "role", "user", "account role: admin, moderator, or user")
	createUserCmd.Flags().StringVar(&createUserQuota, "quota", "unlimited", "video quota in bytes, or 'unlimited'")
	rootCmd.AddCommand(createUserCmd)
}
