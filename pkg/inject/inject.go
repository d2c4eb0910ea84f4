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

package inject

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cobracat/cobracat/pkg/catalog"
)

// DefaultCommandName is the reserved command name used when callers do
// not pick one.
const DefaultCommandName = "llm"

// Attach adds the catalog command directly to group under name (empty
// means DefaultCommandName). It is idempotent: when group already has a
// command of that name, that command is returned unchanged. Attach
// touches no process-wide state.
func Attach(group *cobra.Command, name string) *cobra.Command {
	if name == "" {
		name = DefaultCommandName
	}
	if existing := explicitChild(group, name); existing != nil {
		return existing
	}
	cmd := newCatalogCommand(group, name)
	group.AddCommand(cmd)
	return cmd
}

// newCatalogCommand creates the injected command bound to root. When
// invoked it describes the actual root of the invocation — the bound
// group is only the fallback for a command that was resolved dynamically
// and never attached anywhere.
func newCatalogCommand(root *cobra.Command, name string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   name,
		Short: "Expose command catalog for LLMs",
		Long: `Describe every command, flag, and argument of this CLI in a stable,
machine-readable catalog, as indented JSON or a compact text report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := cmd.Root()
			if target == cmd {
				target = root
			}
			rootName := target.Name()
			if rootName == "" {
				rootName = "cli"
			}
			cat := catalog.Build(target, catalog.Options{RootName: rootName})
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(cat)
			}
			_, err := fmt.Fprintln(out, catalog.RenderText(cat))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the catalog as JSON")
	return cmd
}
