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

// Package view holds the admin user-list controller: list state
// (pagination, sort, search, selection) and the bulk moderation actions
// over the current selection. It is deliberately free of any terminal
// concerns so the command layer stays a thin shell around it.
package view

import (
	"context"

	"tube-admin/pkg/users"
)

// Notifier reports operation outcomes to the person driving the view.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer asks for confirmation before a destructive operation.
type Confirmer interface {
	Confirm(message, title string) (bool, error)
}

// BanPrompt is the external collaborator handling the ban flow: it
// collects an optional reason and performs the ban itself. The view
// only guards and delegates, mirroring how banning is confirmed
// separately from the plain yes/no prompt.
type BanPrompt interface {
	Open(ctx context.Context, targets []*users.User) error
}

// BulkAction describes one operation over the current selection:
// a label, an optional description, a visibility predicate and the
// handler invoked with the selected users.
type BulkAction struct {
	Label       string
	Description string
	Handler     func(ctx context.Context, targets []*users.User) error
	IsDisplayed func(targets []*users.User) bool
}

// Displayed filters actions to the ones visible for the selection. An
// empty selection shows nothing: every action requires selected users.
func Displayed(groups [][]BulkAction, selection []*users.User) []BulkAction {
	if len(selection) == 0 {
		return nil
	}

	var visible []BulkAction
	for _, group := range groups {
		for _, action := range group {
			if action.IsDisplayed == nil || action.IsDisplayed(selection) {
				visible = append(visible, action)
			}
		}
	}
	return visible
}
