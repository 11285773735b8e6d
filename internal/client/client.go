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

// Package client implements the users.Service contract over the
// instance's REST API. It is a thin request/response mapper: one method
// call, one HTTP request, uniform error shaping into pkg/errors types.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"tube-admin/pkg/errors"
	"tube-admin/pkg/users"
)

const (
	usersBasePath    = "/api/v1/users/"
	serverConfigPath = "/api/v1/config"
)

// Client talks to one instance. Safe for concurrent use.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	l       *zap.Logger
	cache   *userCache
}

var _ users.Service = (*Client)(nil)

// New creates a client for the instance at serverURL. token may be
// empty for anonymous access; in that case only unauthenticated
// endpoints will succeed.
func New(serverURL, token string, l *zap.Logger) (*Client, error) {
	if serverURL == "" {
		return nil, errors.NewValidationError("server", "server URL is required")
	}

	parsed, err := url.Parse(serverURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.NewValidationError("server", fmt.Sprintf("invalid server URL %q", serverURL))
	}

	if l == nil {
		l = zap.NewNop()
	}

	return &Client{
		baseURL: parsed,
		token:   token,
		http:    &http.Client{},
		l:       l,
		cache:   newUserCache(),
	}, nil
}

// IsLoggedIn reports whether the client carries an authenticated session.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// usersURL builds an endpoint URL under the users resource.
func (c *Client) usersURL(suffix string, query url.Values) string {
	return c.endpointURL(usersBasePath+suffix, query)
}

func (c *Client) endpointURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do issues one request and decodes a JSON response into out when out
// is non-nil. Request bodies are JSON-encoded. Every failure comes back
// as an *errors.APIError carrying a displayable message.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.NewAPIError(0, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return errors.NewAPIError(0, "failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart issues a multipart/form-data POST with a single file field.
func (c *Client) doMultipart(ctx context.Context, rawURL, fieldName, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return errors.NewAPIError(0, "failed to build multipart request", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.NewAPIError(0, "failed to read upload content", err)
	}
	if err := writer.Close(); err != nil {
		return errors.NewAPIError(0, "failed to finalize multipart request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, &buf)
	if err != nil {
		return errors.NewAPIError(0, "failed to build request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.l.Error("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Path),
			zap.Error(err),
		)
		return errors.NewAPIError(0, err.Error(), err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := decodeErrorResponse(res)
		c.l.Error("request rejected",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Path),
			zap.Int("status", res.StatusCode),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		c.l.Error("failed to decode response",
			zap.String("url", req.URL.Path),
			zap.Error(err),
		)
		return errors.NewAPIError(res.StatusCode, "failed to decode server response", err)
	}
	return nil
}

// decodeErrorResponse shapes a non-2xx response into an APIError,
// preferring the server's own error message when the body carries one.
func decodeErrorResponse(res *http.Response) *errors.APIError {
	message := http.StatusText(res.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	if raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<16)); err == nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
			message = body.Error
		}
	}

	return errors.NewAPIError(res.StatusCode, message, nil)
}
