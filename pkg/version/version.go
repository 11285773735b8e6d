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

// Package version exposes the build metadata stamped in at link time
// via -ldflags "-X tube-admin/pkg/version.Version=...".
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, or "dev" for untagged builds.
	Version = "dev"

	// GitCommit is the hash the binary was built from.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// BuildInfo describes the binary in full, one field per line.
func BuildInfo() string {
	return fmt.Sprintf("tube-admin %s\ncommit:   %s\nbuilt:    %s\nruntime:  %s %s/%s",
		Version,
		GitCommit,
		BuildDate,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// Short is the one-token version string. Untagged builds append the
// abbreviated commit when one was stamped in.
func Short() string {
	if Version == "dev" && len(GitCommit) >= 7 {
		return fmt.Sprintf("dev-%s", GitCommit[:7])
	}
	return Version
}
