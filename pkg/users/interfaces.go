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

// Package users provides the public contracts of the users domain: the
// user model, request/response payloads, and the Service interface the
// HTTP client implements. These are considered stable for extension.
package users

import (
	"context"
	"io"
)

// Service is the data-access contract over the users REST resource.
//
// Every call issues exactly one network request, except the bulk
// helpers, which issue one request per element strictly in order: a
// request is not dispatched until the previous one has settled, and the
// first failure aborts the rest of the chain. Already-applied changes
// are not rolled back.
type Service interface {
	// ListUsers fetches one page of users matching params.
	ListUsers(ctx context.Context, params ListParams) (*ResultList, error)

	// GetUser fetches a single user, optionally with usage stats.
	GetUser(ctx context.Context, id int64, withStats bool) (*User, error)

	// GetUserWithCache is a memoized GetUser: concurrent callers for
	// the same id share one request, and the result is cached until
	// InvalidateUser is called for that id.
	GetUserWithCache(ctx context.Context, id int64) (*User, error)

	// InvalidateUser drops any cached record for id.
	InvalidateUser(id int64)

	CreateUser(ctx context.Context, create UserCreate) error
	UpdateUser(ctx context.Context, id int64, update UserUpdate) error

	// Bulk moderation helpers. The singular variants are one-element
	// chains with identical semantics.
	UpdateUsers(ctx context.Context, targets []*User, update UserUpdate) error
	RemoveUser(ctx context.Context, target *User) error
	RemoveUsers(ctx context.Context, targets []*User) error
	BanUser(ctx context.Context, target *User, reason string) error
	BanUsers(ctx context.Context, targets []*User, reason string) error
	UnbanUser(ctx context.Context, target *User) error
	UnbanUsers(ctx context.Context, targets []*User) error

	// Autocomplete returns username suggestions for a search string.
	Autocomplete(ctx context.Context, search string) ([]string, error)

	// Self-service endpoints.
	GetMyProfile(ctx context.Context) (*User, error)
	UpdateMyProfile(ctx context.Context, update UserUpdateMe) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	ChangeEmail(ctx context.Context, password, newEmail string) error
	DeleteMe(ctx context.Context) error
	ChangeAvatar(ctx context.Context, filename string, avatar io.Reader) (*Avatar, error)
	GetMyVideoQuotaUsed(ctx context.Context) (*VideoQuotaUsed, error)

	// Registration and credential recovery.
	Register(ctx context.Context, register UserRegister) error
	AskResetPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, id int64, verificationString, password string) error
	VerifyEmail(ctx context.Context, id int64, verificationString string, isPendingEmail bool) error
	AskSendVerifyEmail(ctx context.Context, email string) error

	// ServerConfig fetches the instance configuration.
	ServerConfig(ctx context.Context) (*ServerConfig, error)
}
