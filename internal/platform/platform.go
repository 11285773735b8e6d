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

// Package platform provides service composition for the CLI
// application. It wires the HTTP data-access client and the anonymous
// preference stores into one unit the commands can use.
package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tube-admin/internal/client"
	"tube-admin/internal/prefs"
	"tube-admin/pkg/users"
)

// PrefsFileName is the durable preference store inside the data dir.
const PrefsFileName = "prefs.json"

// Platform is the composed service surface behind every command.
type Platform struct {
	// Users is the data-access service over the instance's user API.
	Users users.Service

	// Prefs maintains the anonymous user's local preferences.
	Prefs *prefs.Service

	// Log carries diagnostics; user-facing reporting stays on stdout.
	Log *zap.Logger

	client *client.Client
}

// Config holds what is needed to create a Platform instance.
type Config struct {
	// ServerURL is the base URL of the instance.
	ServerURL string

	// Token is the API token; empty means anonymous.
	Token string

	// DataDir is the base directory for local state.
	DataDir string

	// Debug switches the logger to development output.
	Debug bool
}

// Logger builds the platform logger.
func Logger(debugMode bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debugMode {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

// New creates a Platform with all services wired together.
func New(ctx context.Context, config Config) (*Platform, error) {
	if config.ServerURL == "" {
		return nil, fmt.Errorf("serverURL is required")
	}
	if config.DataDir == "" {
		return nil, fmt.Errorf("dataDir is required")
	}

	l, err := Logger(config.Debug)
	if err != nil {
		return nil, err
	}

	c, err := client.New(config.ServerURL, config.Token, l)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(config.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	durable := prefs.NewFileStore(filepath.Join(config.DataDir, PrefsFileName))
	session := prefs.NewMemoryStore()
	prefsService := prefs.NewService(durable, session, c.IsLoggedIn, l)

	return &Platform{
		Users:  c,
		Prefs:  prefsService,
		Log:    l,
		client: c,
	}, nil
}

// Close flushes the logger. Watchers shut down with their contexts.
func (p *Platform) Close() error {
	// Sync can fail on stderr targets; that is not actionable here.
	_ = p.Log.Sync()
	return nil
}

// Health checks that the instance is reachable.
func (p *Platform) Health(ctx context.Context) error {
	if _, err := p.Users.ServerConfig(ctx); err != nil {
		return fmt.Errorf("instance unreachable: %w", err)
	}
	return nil
}
