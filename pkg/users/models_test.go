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
package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleLabel(t *testing.T) {
	assert.Equal(t, "Administrator", RoleAdministrator.Label())
	assert.Equal(t, "Moderator", RoleModerator.Label())
	assert.Equal(t, "User", RoleUser.Label())
	assert.Equal(t, "", UserRole(99).Label())
}

func TestUserIsRoot(t *testing.T) {
	assert.True(t, (&User{Username: "root"}).IsRoot())
	assert.False(t, (&User{Username: "rooty"}).IsRoot())
	assert.False(t, (&User{Username: "alice"}).IsRoot())
}

func TestUserCanManage(t *testing.T) {
	admin := &User{Role: RoleAdministrator}
	moderator := &User{Role: RoleModerator}
	plain := &User{Role: RoleUser}

	t.Run("administrators manage everyone", func(t *testing.T) {
		assert.True(t, admin.CanManage(admin))
		assert.True(t, admin.CanManage(moderator))
		assert.True(t, admin.CanManage(plain))
	})

	t.Run("moderators manage plain users only", func(t *testing.T) {
		assert.False(t, moderator.CanManage(admin))
		assert.False(t, moderator.CanManage(moderator))
		assert.True(t, moderator.CanManage(plain))
	})

	t.Run("plain users manage nobody", func(t *testing.T) {
		assert.False(t, plain.CanManage(admin))
		assert.False(t, plain.CanManage(moderator))
		assert.False(t, plain.CanManage(plain))
	})
}

func TestSortParam(t *testing.T) {
	assert.Equal(t, "createdAt", Sort{Field: "createdAt"}.Param())
	assert.Equal(t, "-createdAt", Sort{Field: "createdAt", Descending: true}.Param())
	assert.Equal(t, "", Sort{}.Param())
	assert.Equal(t, "", Sort{Descending: true}.Param())
}
