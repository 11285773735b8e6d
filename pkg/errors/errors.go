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

// Package errors defines the error taxonomy of the client: transport
// failures, local guard violations, validation problems and bulk-chain
// failures. Every type exposes a human-readable message suitable for
// direct display.
package errors

import (
	stderrors "errors"
	"fmt"
)

// APIError is the uniform mapping of a failed network request: any
// transport-level error or non-2xx HTTP response becomes one of these.
type APIError struct {
	// Status is the HTTP status code, or 0 for transport failures that
	// never produced a response.
	Status int

	// Message is the displayable description, taken from the response
	// body's error field when present.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// GuardError is a local rule violation caught before any request is
// issued, e.g. trying to delete the root account. The whole operation
// is aborted with zero side effects.
type GuardError struct {
	Message string
}

func (e *GuardError) Error() string { return e.Message }

// ValidationError represents invalid input to a client call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError represents a resource the server does not know about.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// BulkError reports a sequential bulk chain that failed part-way
// through. Elements before Index were already applied and are not
// rolled back; elements after it were never attempted.
type BulkError struct {
	// Index is the zero-based position of the failing element.
	Index int

	// Total is the number of elements the chain was asked to process.
	Total int

	// Err is the failure of the element at Index.
	Err error
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("bulk operation failed on element %d of %d: %v", e.Index+1, e.Total, e.Err)
}

func (e *BulkError) Unwrap() error { return e.Err }

// Applied returns how many elements of the chain were already applied
// when the failure happened.
func (e *BulkError) Applied() int { return e.Index }

// Helper constructors for common cases.

func NewAPIError(status int, message string, err error) *APIError {
	return &APIError{Status: status, Message: message, Err: err}
}

func NewGuardError(message string) *GuardError {
	return &GuardError{Message: message}
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

func NewBulkError(index, total int, err error) *BulkError {
	return &BulkError{Index: index, Total: total, Err: err}
}

// DisplayMessage extracts the message a notifier should show for err.
// API errors surface their server-provided message verbatim, even when
// wrapped in a BulkError; everything else falls back to Error().
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
