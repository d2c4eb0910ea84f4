// Copyright 2025 The cobracat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package autoload

import (
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/cobracat/cobracat/pkg/inject"
)

// The package init runs when the test binary starts, before any test can
// manipulate the environment, so the assertions are gated on what it saw.
func TestInitPatchesProcess(t *testing.T) {
	if os.Getenv("COBRACAT_DISABLE_AUTO") != "" {
		t.Skip("auto-enable disabled in this environment")
	}

	root := &cobra.Command{Use: "cli"}
	root.AddCommand(&cobra.Command{Use: "hello", Run: func(*cobra.Command, []string) {}})

	cmd := inject.ResolveCommand(root, nil, inject.DefaultCommandName)
	if cmd == nil {
		t.Fatal("expected the reserved command to resolve after autoload")
	}
	if cmd.Name() != inject.DefaultCommandName {
		t.Errorf("unexpected command name %q", cmd.Name())
	}

	// Importing again (same process) must not conflict.
	if err := inject.Patch(inject.DefaultCommandName); err != nil {
		t.Errorf("repeated patch under the same name must be a no-op: %v", err)
	}
}
