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
	"fmt"

	"tube-admin/pkg/errors"
)

// ErrAuthenticationRequired is returned when a command needs a token
// and none was provided.
var ErrAuthenticationRequired = fmt.Errorf("authentication required: token cannot be empty")

// Common error constructors to reduce duplication
func NewUserNotFoundError(username string) error {
	return errors.NewNotFoundError("user", username)
}

func NewUnknownTypeError(typeName, value, validOptions string) error {
	return fmt.Errorf("unknown %s type: %s. Use %s", typeName, value, validOptions)
}

func NewUnknownPreferenceError(key string) error {
	return fmt.Errorf("unknown preference key: %s", key)
}
