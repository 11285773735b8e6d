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
package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Run("http failure carries the status", func(t *testing.T) {
		err := NewAPIError(403, "insufficient rights", nil)
		assert.Equal(t, "insufficient rights (HTTP 403)", err.Error())
	})

	t.Run("transport failure has no status", func(t *testing.T) {
		err := NewAPIError(0, "connection refused", nil)
		assert.Equal(t, "connection refused", err.Error())
	})
}

func TestBulkError(t *testing.T) {
	cause := NewAPIError(500, "boom", nil)
	err := NewBulkError(2, 5, cause)

	t.Run("reports position one-based", func(t *testing.T) {
		assert.Equal(t, "bulk operation failed on element 3 of 5: boom (HTTP 500)", err.Error())
	})

	t.Run("applied count equals elements before the failure", func(t *testing.T) {
		assert.Equal(t, 2, err.Applied())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		var apiErr *APIError
		assert.True(t, stderrors.As(err, &apiErr))
		assert.Equal(t, cause, apiErr)
	})
}

func TestDisplayMessage(t *testing.T) {
	t.Run("api error surfaces the server message", func(t *testing.T) {
		err := NewAPIError(409, "username already in use", nil)
		assert.Equal(t, "username already in use", DisplayMessage(err))
	})

	t.Run("api error wrapped in a bulk chain still surfaces", func(t *testing.T) {
		err := NewBulkError(0, 3, NewAPIError(409, "username already in use", nil))
		assert.Equal(t, "username already in use", DisplayMessage(err))
	})

	t.Run("other errors fall back to Error", func(t *testing.T) {
		err := NewGuardError("You cannot delete root.")
		assert.Equal(t, "You cannot delete root.", DisplayMessage(err))
	})

	t.Run("nil yields empty", func(t *testing.T) {
		assert.Equal(t, "", DisplayMessage(nil))
	})
}
