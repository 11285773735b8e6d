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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// stdinConfirmer asks yes/no questions on the terminal. The --yes flag
// turns every question into an automatic yes.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func newConfirmer() *stdinConfirmer {
	return &stdinConfirmer{in: os.Stdin, out: os.Stdout}
}

func (c *stdinConfirmer) Confirm(message, title string) (bool, error) {
	if YesFlag {
		return true, nil
	}

	fmt.Fprintf(c.out, "%s\n%s [y/N]: ", title, message)

	reader := bufio.NewReader(c.in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// promptLine reads one line of free-form input, e.g. a ban reason.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
