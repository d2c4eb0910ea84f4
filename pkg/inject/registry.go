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
	"sync"

	"github.com/spf13/cobra"

	"github.com/cobracat/cobracat/internal/log"
)

// registry caches one lazily-built catalog command per distinct root
// command instance. Keys are identities: two roots sharing a name are
// separate entries. The single lock covers the whole check-then-create
// sequence so at most one command is ever built per root, even when
// resolutions race.
//
// Entries hold their root alive through the cached command's closure, so
// weak association cannot work here; hosts that discard command trees in
// a long-lived process call Evict.
type registry struct {
	mu       sync.Mutex
	commands map[*cobra.Command]*cobra.Command
}

var injected = registry{commands: make(map[*cobra.Command]*cobra.Command)}

// lookupOrCreate returns the cached catalog command for root, building
// and caching it on first use. A cached command built under a previously
// active reserved name is rebuilt transparently.
func (r *registry) lookupOrCreate(root *cobra.Command, name string) *cobra.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cmd, ok := r.commands[root]; ok && cmd.Name() == name {
		return cmd
	}
	cmd := newCatalogCommand(root, name)
	r.commands[root] = cmd
	log.Default().Debug("built catalog command",
		log.CommandKey, name, log.RootKey, root.Name())
	return cmd
}

// Evict drops the cached catalog command for root, if any. Hosts call it
// when tearing down a command tree whose root would otherwise be kept
// reachable by the cache.
func Evict(root *cobra.Command) {
	injected.mu.Lock()
	defer injected.mu.Unlock()
	delete(injected.commands, root)
}
