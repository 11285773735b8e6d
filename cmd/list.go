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
	"strings"

	"tube-admin/internal/view"
	"tube-admin/pkg/users"

	"github.com/spf13/cobra"
)

var (
	listStart  int
	listCount  int
	listSort   string
	listSearch string
)

// listCmd represents the consolidated list command
var listCmd = &cobra.Command{
	Use:   "list [users|actions]",
	Short: "List users on the instance",
	Long: `List different types of data on the instance:
  • users   - Paginated, sortable, searchable user listing
  • actions - Moderation actions available for the named users

Search supports the "banned:true" and "banned:false" prefixes to filter
on blocked state; the rest of the search string matches usernames and
emails. Sort fields are prefixed with "-" for descending order, e.g.
"-createdAt".`,
	Example: `  tube-admin list users
  tube-admin list users --count 25 --sort -createdAt
  tube-admin list users --search "banned:true spam"
  tube-admin list actions alice bob`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkExplicitEmptyToken(cmd); err != nil {
			return err
		}

		switch args[0] {
		case "users":
			return listUsers(cmd)
		case "actions":
			if len(args) < 2 {
				return fmt.Errorf("usage: tube-admin list actions <username>...")
			}
			return listActions(cmd, args[1:])
		default:
			return NewUnknownTypeError("list", args[0], "'users' or 'actions'")
		}
	},
}

func listUsers(cmd *cobra.Command) error {
	app, err := getPlatformFromCommand(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	sort, err := parseSortParam(listSort)
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := app.Users.ListUsers(ctx, users.ListParams{
		Pagination: users.Pagination{Start: listStart, Count: listCount},
		Sort:       sort,
		Search:     listSearch,
	})
	if err != nil {
		return err
	}

	printUserTable(os.Stdout, result.Data, result.Total)
	return nil
}

// listActions shows which moderation actions apply to a selection of
// users, given the caller's own rights and the targets' state.
func listActions(cmd *cobra.Command, usernames []string) error {
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

	targets, err := resolveUsers(ctx, app, usernames)
	if err != nil {
		return err
	}

	visible := view.Displayed(table.BulkActions(), targets)
	if len(visible) == 0 {
		fmt.Println("(no actions available)")
		return nil
	}

	for _, action := range visible {
		if action.Description != "" {
			fmt.Printf("%s - %s\n", action.Label, action.Description)
			continue
		}
		fmt.Println(action.Label)
	}
	return nil
}

// parseSortParam parses a wire-form sort string such as "-createdAt".
func parseSortParam(param string) (users.Sort, error) {
	field := strings.TrimPrefix(param, "-")
	if field == "" {
		return users.Sort{}, fmt.Errorf("sort field cannot be empty")
	}

	switch field {
	case "id", "username", "email", "role", "videoQuotaUsed", "createdAt":
	default:
		return users.Sort{}, NewUnknownTypeError("sort", param,
			"'id', 'username', 'email', 'role', 'videoQuotaUsed', or 'createdAt' (prefix with '-' for descending)")
	}

	return users.Sort{
		Field:      field,
		Descending: strings.HasPrefix(param, "-"),
	}, nil
}

func init() {
	listCmd.Flags().IntVar(&listStart, "start", 0, "pagination offset")
	listCmd.Flags().IntVar(&listCount, "count", 10, "page size")
	listCmd.Flags().StringVar(&listSort, "sort", "createdAt", "sort field, '-' prefix for descending")
	listCmd.Flags().StringVar(&listSearch, "search", "", "search filter, supports 'banned:true'")
	rootCmd.AddCommand(listCmd)
}
