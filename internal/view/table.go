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

package view

import (
	"context"
	"fmt"

	"tube-admin/pkg/errors"
	"tube-admin/pkg/users"
)

// DefaultPageSize is the initial pagination window.
const DefaultPageSize = 10

// UserTable is the admin user list: one page of users plus the
// sort/pagination/search state that produced it and the current
// selection. All mutations of the list go through the data-access
// service; the table only reports outcomes through its Notifier.
type UserTable struct {
	svc       users.Service
	notifier  Notifier
	confirm   Confirmer
	banPrompt BanPrompt
	authUser  *users.User

	serverConfig *users.ServerConfig

	Users      []*users.User
	Total      int64
	Sort       users.Sort
	Pagination users.Pagination

	search   string
	selected []*users.User
}

// NewUserTable builds the table, reads the server configuration (which
// decides whether the verify-email action exists) and loads the first
// page matching initialSearch.
func NewUserTable(ctx context.Context, svc users.Service, notifier Notifier, confirm Confirmer, banPrompt BanPrompt, authUser *users.User, initialSearch string) (*UserTable, error) {
	t := &UserTable{
		svc:       svc,
		notifier:  notifier,
		confirm:   confirm,
		banPrompt: banPrompt,
		authUser:  authUser,
		Sort:      users.Sort{Field: "createdAt"},
		Pagination: users.Pagination{
			Start: 0,
			Count: DefaultPageSize,
		},
		search: initialSearch,
	}

	cfg, err := svc.ServerConfig(ctx)
	if err != nil {
		return nil, err
	}
	t.serverConfig = cfg

	if err := t.LoadData(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// RequiresEmailVerification reports the instance signup policy.
func (t *UserTable) RequiresEmailVerification() bool {
	return t.serverConfig.Signup.RequiresEmailVerification
}

// LoadData reloads the current page. Every reload clears the selection.
func (t *UserTable) LoadData(ctx context.Context) error {
	t.selected = nil

	result, err := t.svc.ListUsers(ctx, users.ListParams{
		Pagination: t.Pagination,
		Sort:       t.Sort,
		Search:     t.search,
	})
	if err != nil {
		t.notifier.Error(errors.DisplayMessage(err))
		return err
	}

	t.Users = result.Data
	t.Total = result.Total
	return nil
}

// Search returns the raw search string currently applied.
func (t *UserTable) Search() string { return t.search }

// SetSearch applies a new search string and reloads.
func (t *UserTable) SetSearch(ctx context.Context, search string) error {
	t.search = search
	return t.LoadData(ctx)
}

// ResetFilter clears the search string and reloads.
func (t *UserTable) ResetFilter(ctx context.Context) error {
	return t.SetSearch(ctx, "")
}

// Select adds users to the selection.
func (t *UserTable) Select(targets ...*users.User) {
	t.selected = append(t.selected, targets...)
}

// ClearSelection empties the selection.
func (t *UserTable) ClearSelection() { t.selected = nil }

// Selected returns the current selection.
func (t *UserTable) Selected() []*users.User { return t.selected }

// IsInSelectionMode reports whether any users are selected.
func (t *UserTable) IsInSelectionMode() bool { return len(t.selected) != 0 }

// BulkActions returns the action groups for the current view. The
// first group is moderation (delete/ban/unban); the second is the
// email-verification action, shown only when the instance requires
// verified emails.
func (t *UserTable) BulkActions() [][]BulkAction {
	return [][]BulkAction{
		{
			{
				Label:       "Delete",
				Description: "Videos will be deleted, comments will be tombstoned.",
				Handler:     t.RemoveUsers,
				IsDisplayed: func(targets []*users.User) bool {
					return t.canManageAll(targets)
				},
			},
			{
				Label:       "Ban",
				Description: "User won't be able to login anymore, but videos and comments will be kept as is.",
				Handler:     t.OpenBanPrompt,
				IsDisplayed: func(targets []*users.User) bool {
					return t.canManageAll(targets) && noneMatch(targets, func(u *users.User) bool { return u.Blocked })
				},
			},
			{
				Label:   "Unban",
				Handler: t.UnbanUsers,
				IsDisplayed: func(targets []*users.User) bool {
					return t.canManageAll(targets) && allMatch(targets, func(u *users.User) bool { return u.Blocked })
				},
			},
		},
		{
			{
				Label:   "Set Email as Verified",
				Handler: t.SetEmailsAsVerified,
				IsDisplayed: func(targets []*users.User) bool {
					return t.RequiresEmailVerification() &&
						t.canManageAll(targets) &&
						allMatch(targets, func(u *users.User) bool { return !u.Blocked && !u.EmailVerified })
				},
			},
		},
	}
}

// RemoveUsers deletes the targets after confirmation. Including the
// root account aborts the whole operation before any request is made.
func (t *UserTable) RemoveUsers(ctx context.Context, targets []*users.User) error {
	if err := guardRoot(targets, "You cannot delete root."); err != nil {
		t.notifier.Error(err.Error())
		return err
	}

	message := "If you remove these users, you will not be able to create others with the same username!"
	ok, err := t.confirm.Confirm(message, "Delete")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := t.svc.RemoveUsers(ctx, targets); err != nil {
		t.notifier.Error(errors.DisplayMessage(err))
		return err
	}

	t.notifier.Success(fmt.Sprintf("%d %s deleted.", len(targets), pluralUsers(len(targets))))
	return t.LoadData(ctx)
}

// OpenBanPrompt starts the ban flow for the targets. The root guard
// runs here so the prompt collaborator never even opens for root.
func (t *UserTable) OpenBanPrompt(ctx context.Context, targets []*users.User) error {
	if err := guardRoot(targets, "You cannot ban root."); err != nil {
		t.notifier.Error(err.Error())
		return err
	}
	return t.banPrompt.Open(ctx, targets)
}

// UnbanUsers unblocks the targets after a pluralized confirmation.
func (t *UserTable) UnbanUsers(ctx context.Context, targets []*users.User) error {
	message := fmt.Sprintf("Do you really want to unban %d %s?", len(targets), pluralUsers(len(targets)))
	ok, err := t.confirm.Confirm(message, "Unban")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := t.svc.UnbanUsers(ctx, targets); err != nil {
		t.notifier.Error(errors.DisplayMessage(err))
		return err
	}

	t.notifier.Success(fmt.Sprintf("%d %s unbanned.", len(targets), pluralUsers(len(targets))))
	return t.LoadData(ctx)
}

// SetEmailsAsVerified marks the targets' emails verified via a generic
// per-user update carrying the single changed field.
func (t *UserTable) SetEmailsAsVerified(ctx context.Context, targets []*users.User) error {
	verified := true
	if err := t.svc.UpdateUsers(ctx, targets, users.UserUpdate{EmailVerified: &verified}); err != nil {
		t.notifier.Error(errors.DisplayMessage(err))
		return err
	}

	t.notifier.Success(fmt.Sprintf("%d %s email set as verified.", len(targets), pluralUsers(len(targets))))
	return t.LoadData(ctx)
}

func (t *UserTable) canManageAll(targets []*users.User) bool {
	return allMatch(targets, t.authUser.CanManage)
}

func guardRoot(targets []*users.User, message string) error {
	for _, u := range targets {
		if u.IsRoot() {
			return errors.NewGuardError(message)
		}
	}
	return nil
}

func allMatch(targets []*users.User, predicate func(*users.User) bool) bool {
	for _, u := range targets {
		if !predicate(u) {
			return false
		}
	}
	return true
}

func noneMatch(targets []*users.User, predicate func(*users.User) bool) bool {
	for _, u := range targets {
		if predicate(u) {
			return false
		}
	}
	return true
}

func pluralUsers(n int) string {
	if n == 1 {
		return "user"
	}
	return "users"
}
