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

var banReason string

var banCmd = &cobra.Command{
	Use:   "ban [username]...",
	Short: "Ban one or more user accounts.",
	Long:  "Ban user accounts. Banned users cannot log in anymore, but their videos and comments are kept as is. The root account can never be banned; including it aborts the whole operation before any account is touched.",
	Example: `  tube-admin ban alice --reason "spam"
  tube-admin ban alice bob --yes`,
	Args: cobra.MinimumNArgs(1),
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

		return table.OpenBanPrompt(ctx, targets)
	},
}

// cliBanPrompt is the terminal ban flow: collect a reason (flag or
// prompt), confirm, then ban. It runs after the root guard has already
// passed so it never sees the root account.
type cliBanPrompt struct {
	svc users.Service
}

func (p *cliBanPrompt) Open(ctx context.Context, targets []*users.User) error {
	reason := banReason
	if reason == "" && !YesFlag {
		var err error
		reason, err = promptLine("Reason (optional): ")
		if err != nil {
			return err
		}
	}

	confirm := newConfirmer()
	message := fmt.Sprintf("Do you really want to ban %d %s? They will not be able to login.", len(targets), pluralizeUsers(len(targets)))
	ok, err := confirm.Confirm(message, "Ban")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := p.svc.BanUsers(ctx, targets, reason); err != nil {
		return err
	}

	printNotifier{}.Success(fmt.Sprintf("%d %s banned.", len(targets), pluralizeUsers(len(targets))))
	return nil
}

func pluralizeUsers(n int) string {
	if n == 1 {
		return "user"
	}
	return "users"
}

func init() {
	banCmd.Flags().StringVar(&banReason, "reason", "", "reason shown alongside the banned state")
	rootCmd.AddCommand(banCmd)
}
