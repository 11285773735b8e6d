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

	"tube-admin/internal/platform"
	"tube-admin/pkg/config"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [server URL]",
	Short: "Save the instance URL and API token to the config file.",
	Long: `Store the instance URL and API token in ~/.tube-admin/config.json so
they do not need to be passed on every invocation. The connection is
verified before anything is written.`,
	Example: `  tube-admin login https://tube.example.com --token <api token>
  tube-admin login https://tube.example.com          # anonymous browsing only`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkExplicitEmptyToken(cmd); err != nil {
			return err
		}

		serverURL := args[0]

		token := TokenFlag
		if token == "" {
			var err error
			if token, err = promptLine("API token (leave empty for anonymous access): "); err != nil {
				return err
			}
		}

		if err := verifyConnection(cmd, serverURL, token); err != nil {
			return fmt.Errorf("could not reach %s: %w", serverURL, err)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.ServerURL = serverURL
		cfg.Token = token
		if err := config.Save(cfg); err != nil {
			return err
		}

		path, err := config.DefaultPath("config.json")
		if err != nil {
			return err
		}
		printNotifier{}.Success(fmt.Sprintf("Configuration saved to %s", path))
		return nil
	},
}

// verifyConnection checks the instance answers before persisting
// anything.
func verifyConnection(cmd *cobra.Command, serverURL, token string) error {
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}

	app, err := platform.New(context.Background(), platform.Config{
		ServerURL: serverURL,
		Token:     token,
		DataDir:   dataDir,
		Debug:     DebugFlag,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Health(context.Background())
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
