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

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"tube-admin/pkg/errors"
	"tube-admin/pkg/users"
)

// ListUsers fetches one page of users. The free-text search is parsed
// into structured filters (currently the "banned:" boolean prefix) and
// each returned record gets its display fields formatted.
func (c *Client) ListUsers(ctx context.Context, params users.ListParams) (*users.ResultList, error) {
	var result users.ResultList
	if err := c.do(ctx, http.MethodGet, c.usersURL("", buildListQuery(params)), nil, &result); err != nil {
		return nil, err
	}

	for _, u := range result.Data {
		formatUser(u)
	}
	return &result, nil
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(ctx context.Context, id int64, withStats bool) (*users.User, error) {
	query := url.Values{}
	query.Set("withStats", strconv.FormatBool(withStats))

	var u users.User
	if err := c.do(ctx, http.MethodGet, c.usersURL(idPath(id), query), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserWithCache is a memoized GetUser. The cache entry lives until
// InvalidateUser is called for the id; mutations through this client
// invalidate automatically.
func (c *Client) GetUserWithCache(ctx context.Context, id int64) (*users.User, error) {
	return c.cache.get(id, func() (*users.User, error) {
		return c.GetUser(ctx, id, false)
	})
}

// InvalidateUser drops any cached record for id.
func (c *Client) InvalidateUser(id int64) {
	c.cache.invalidate(id)
}

// CreateUser creates a user from the admin surface.
func (c *Client) CreateUser(ctx context.Context, create users.UserCreate) error {
	return c.do(ctx, http.MethodPost, c.usersURL("", nil), create, nil)
}

// UpdateUser applies a partial update to one user.
func (c *Client) UpdateUser(ctx context.Context, id int64, update users.UserUpdate) error {
	if err := c.do(ctx, http.MethodPut, c.usersURL(idPath(id), nil), update, nil); err != nil {
		return err
	}
	c.cache.invalidate(id)
	return nil
}

// UpdateUsers applies the same partial update to every target, one
// sequential request per target.
func (c *Client) UpdateUsers(ctx context.Context, targets []*users.User, update users.UserUpdate) error {
	return c.forEachSequential(targets, func(u *users.User) error {
		return c.UpdateUser(ctx, u.ID, update)
	})
}

// RemoveUser deletes one user.
func (c *Client) RemoveUser(ctx context.Context, target *users.User) error {
	return c.RemoveUsers(ctx, []*users.User{target})
}

// RemoveUsers deletes every target sequentially, failing fast on the
// first error.
func (c *Client) RemoveUsers(ctx context.Context, targets []*users.User) error {
	return c.forEachSequential(targets, func(u *users.User) error {
		if err := c.do(ctx, http.MethodDelete, c.usersURL(idPath(u.ID), nil), nil, nil); err != nil {
			return err
		}
		c.cache.invalidate(u.ID)
		return nil
	})
}

// BanUser blocks one user, with an optional reason.
func (c *Client) BanUser(ctx context.Context, target *users.User, reason string) error {
	return c.BanUsers(ctx, []*users.User{target}, reason)
}

// BanUsers blocks every target sequentially. The reason is sent only
// when non-empty.
func (c *Client) BanUsers(ctx context.Context, targets []*users.User, reason string) error {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}

	return c.forEachSequential(targets, func(u *users.User) error {
		if err := c.do(ctx, http.MethodPost, c.usersURL(idPath(u.ID)+"/block", nil), body, nil); err != nil {
			return err
		}
		c.cache.invalidate(u.ID)
		return nil
	})
}

// UnbanUser unblocks one user.
func (c *Client) UnbanUser(ctx context.Context, target *users.User) error {
	return c.UnbanUsers(ctx, []*users.User{target})
}

// UnbanUsers unblocks every target sequentially.
func (c *Client) UnbanUsers(ctx context.Context, targets []*users.User) error {
	return c.forEachSequential(targets, func(u *users.User) error {
		if err := c.do(ctx, http.MethodPost, c.usersURL(idPath(u.ID)+"/unblock", nil), struct{}{}, nil); err != nil {
			return err
		}
		c.cache.invalidate(u.ID)
		return nil
	})
}

// Autocomplete returns username suggestions matching search.
func (c *Client) Autocomplete(ctx context.Context, search string) ([]string, error) {
	query := url.Values{}
	query.Set("search", search)

	var names []string
	if err := c.do(ctx, http.MethodGet, c.usersURL("autocomplete", query), nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// GetMyProfile fetches the authenticated user's own record.
func (c *Client) GetMyProfile(ctx context.Context) (*users.User, error) {
	var u users.User
	if err := c.do(ctx, http.MethodGet, c.usersURL("me", nil), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMyProfile applies a partial update to the authenticated user's
// own profile.
func (c *Client) UpdateMyProfile(ctx context.Context, update users.UserUpdateMe) error {
	return c.do(ctx, http.MethodPut, c.usersURL("me", nil), update, nil)
}

// ChangePassword updates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return c.UpdateMyProfile(ctx, users.UserUpdateMe{
		CurrentPassword: &currentPassword,
		Password:        &newPassword,
	})
}

// ChangeEmail updates the current user's email, authenticated by their
// password.
func (c *Client) ChangeEmail(ctx context.Context, password, newEmail string) error {
	return c.UpdateMyProfile(ctx, users.UserUpdateMe{
		CurrentPassword: &password,
		Email:           &newEmail,
	})
}

// DeleteMe removes the authenticated user's own account.
func (c *Client) DeleteMe(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, c.usersURL("me", nil), nil, nil)
}

// ChangeAvatar uploads a new avatar image for the current user.
func (c *Client) ChangeAvatar(ctx context.Context, filename string, avatar io.Reader) (*users.Avatar, error) {
	var res struct {
		Avatar users.Avatar `json:"avatar"`
	}
	if err := c.doMultipart(ctx, c.usersURL("me/avatar/pick", nil), "avatarfile", filename, avatar, &res); err != nil {
		return nil, err
	}
	return &res.Avatar, nil
}

// GetMyVideoQuotaUsed reports the current user's quota consumption.
func (c *Client) GetMyVideoQuotaUsed(ctx context.Context) (*users.VideoQuotaUsed, error) {
	var quota users.VideoQuotaUsed
	if err := c.do(ctx, http.MethodGet, c.usersURL("me/video-quota-used", nil), nil, &quota); err != nil {
		return nil, err
	}
	return &quota, nil
}

// Register signs up a new account.
func (c *Client) Register(ctx context.Context, register users.UserRegister) error {
	return c.do(ctx, http.MethodPost, c.usersURL("register", nil), register, nil)
}

// AskResetPassword requests a password-reset email.
func (c *Client) AskResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, c.usersURL("ask-reset-password", nil), body, nil)
}

// ResetPassword completes a password reset with the emailed
// verification string.
func (c *Client) ResetPassword(ctx context.Context, id int64, verificationString, password string) error {
	body := map[string]string{
		"verificationString": verificationString,
		"password":           password,
	}
	return c.do(ctx, http.MethodPost, c.usersURL(idPath(id)+"/reset-password", nil), body, nil)
}

// VerifyEmail confirms an email address with the emailed verification
// string.
func (c *Client) VerifyEmail(ctx context.Context, id int64, verificationString string, isPendingEmail bool) error {
	body := map[string]any{
		"verificationString": verificationString,
		"isPendingEmail":     isPendingEmail,
	}
	return c.do(ctx, http.MethodPost, c.usersURL(idPath(id)+"/verify-email", nil), body, nil)
}

// AskSendVerifyEmail requests a fresh verification email.
func (c *Client) AskSendVerifyEmail(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, c.usersURL("ask-send-verify-email", nil), body, nil)
}

// ServerConfig fetches the instance configuration.
func (c *Client) ServerConfig(ctx context.Context) (*users.ServerConfig, error) {
	var cfg users.ServerConfig
	if err := c.do(ctx, http.MethodGet, c.endpointURL(serverConfigPath, nil), nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// forEachSequential runs op over targets one at a time: the next
// request is not dispatched until the previous one settled. The first
// failure stops the chain and is wrapped in a BulkError recording how
// far the chain got; earlier changes stay applied.
func (c *Client) forEachSequential(targets []*users.User, op func(*users.User) error) error {
	for i, u := range targets {
		if err := op(u); err != nil {
			return errors.NewBulkError(i, len(targets), err)
		}
	}
	return nil
}

func idPath(id int64) string {
	return fmt.Sprintf("%d", id)
}
