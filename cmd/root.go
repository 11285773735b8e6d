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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tube-admin/internal/platform"
	"tube-admin/pkg/config"
	"tube-admin/pkg/version"
)

var (
	// TokenFlag overrides the API token from env/config.
	TokenFlag string

	// ServerFlag overrides the instance URL from env/config.
	ServerFlag string

	// YesFlag skips interactive confirmation prompts.
	YesFlag bool

	// DebugFlag switches diagnostics to development logging.
	DebugFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tube-admin",
	Short: "Administer a video platform instance's users from the command line.",
	Long: `tube-admin is a command-line front end for a video platform's user API.

Features:
	• Paginated, sortable, searchable user listing ("banned:true" filters)
	• Bulk moderation: delete, ban/unban, set emails as verified
	• Root-account guard: root can never be deleted or banned
	• User creation and partial updates (role, email, video quota)
	• Anonymous preference storage (theme, NSFW policy, autoplay, languages)
	• Self-service account commands (profile, avatar, quota, registration)

Authentication uses an API token (flag, env, or config file); state such
as anonymous preferences is kept locally in ~/.tube-admin/.

See 'tube-admin --help' or the README for more info.`,
	Run: handleRootCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&TokenFlag, "token", "", "API token (overrides env/config)")
	rootCmd.PersistentFlags().StringVar(&ServerFlag, "server", "", "instance URL (overrides env/config)")
	rootCmd.PersistentFlags().BoolVar(&YesFlag, "yes", false, "answer yes to confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&DebugFlag, "debug", false, "verbose diagnostic logging")

	rootCmd.Flags().BoolP("version", "v", false, "show version information")
}

// handleRootCommand is called when tube-admin is run without any subcommands
func handleRootCommand(cmd *cobra.Command, args []string) {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Println(version.BuildInfo())
		return
	}

	cmd.Help()
}

// resolveServerURL picks the instance URL: flag > env > config file.
func resolveServerURL() (string, error) {
	if ServerFlag != "" {
		return ServerFlag, nil
	}
	if env := os.Getenv("TUBE_ADMIN_SERVER"); env != "" {
		return env, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.ServerURL != "" {
		return cfg.ServerURL, nil
	}

	return "", fmt.Errorf("no instance configured: pass --server, set TUBE_ADMIN_SERVER, or run 'tube-admin login'")
}

// resolveToken picks the API token: flag > env > config file. An empty
// result is valid and means anonymous access.
func resolveToken(cmd *cobra.Command) (string, error) {
	// A token flag explicitly set to the empty string is a mistake,
	// not a request for anonymous access.
	if flag := cmd.Flag("token"); flag != nil && flag.Changed && TokenFlag == "" {
		return "", ErrAuthenticationRequired
	}
	if TokenFlag != "" {
		return TokenFlag, nil
	}
	if env := os.Getenv("TUBE_ADMIN_TOKEN"); env != "" {
		return env, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Token, nil
}

// getPlatformConfig builds platform configuration from CLI environment
func getPlatformConfig(cmd *cobra.Command) (platform.Config, error) {
	serverURL, err := resolveServerURL()
	if err != nil {
		return platform.Config{}, err
	}

	token, err := resolveToken(cmd)
	if err != nil {
		return platform.Config{}, err
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return platform.Config{}, fmt.Errorf("failed to get data directory: %w", err)
	}

	return platform.Config{
		ServerURL: serverURL,
		Token:     token,
		DataDir:   dataDir,
		Debug:     DebugFlag,
	}, nil
}

// getPlatformFromCommand is a helper that initializes the platform services
func getPlatformFromCommand(cmd *cobra.Command) (*platform.Platform, error) {
	cfg, err := getPlatformConfig(cmd)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	return platform.New(ctx, cfg)
}

// requireToken resolves the token and fails when none is configured.
// Used by commands that cannot work anonymously.
func requireToken(cmd *cobra.Command) (string, error) {
	token, err := resolveToken(cmd)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrAuthenticationRequired
	}
	return token, nil
}
