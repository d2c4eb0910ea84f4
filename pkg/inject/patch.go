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
	"slices"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cobracat/cobracat/internal/log"
)

// patcher is the process-wide patch state. Invariants: patched implies
// both saved entry points are non-nil; unpatched implies both are nil;
// only one reserved name is active while patched.
type patcher struct {
	mu           sync.Mutex
	patched      bool
	name         string
	savedResolve ResolveFunc
	savedList    ListFunc
}

var state patcher

// Patch installs the interception layer over the resolution and listing
// entry points so every root group transparently gains the reserved
// command. Calling Patch again under the same name is a no-op; under a
// different name it returns a *ConflictError and leaves the active patch
// untouched. Patch and Unpatch are process-lifecycle operations; callers
// toggling them concurrently must serialize externally.
func Patch(name string) error {
	if name == "" {
		name = DefaultCommandName
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.patched {
		if state.name != name {
			return &ConflictError{Active: state.name, Requested: name}
		}
		return nil
	}

	hooks.mu.Lock()
	state.savedResolve = hooks.resolve
	state.savedList = hooks.list
	hooks.resolve = patchedResolve(state.savedResolve, name)
	hooks.list = patchedList(state.savedList, name)
	hooks.mu.Unlock()

	state.patched = true
	state.name = name
	log.Default().Debug("patched command resolution", log.CommandKey, name)
	return nil
}

// Unpatch restores the entry points saved by Patch and clears the patch
// state. It is a no-op when nothing is patched. The per-root command
// cache is left alone: stale entries are harmless and re-patching reuses
// or rebuilds them transparently.
func Unpatch() {
	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.patched {
		return
	}

	hooks.mu.Lock()
	hooks.resolve = state.savedResolve
	hooks.list = state.savedList
	hooks.mu.Unlock()

	log.Default().Debug("unpatched command resolution", log.CommandKey, state.name)
	state.patched = false
	state.name = ""
	state.savedResolve = nil
	state.savedList = nil
}

// patchedResolve wraps the original resolution entry point. The original
// always wins: an explicitly defined command is never shadowed, even one
// sharing the reserved name. Only an unresolved lookup for the reserved
// name at a root invocation, in a group without an explicit command of
// that name, yields the lazily-built catalog command.
func patchedResolve(orig ResolveFunc, reserved string) ResolveFunc {
	return func(group *cobra.Command, ctx *Context, name string) *cobra.Command {
		if cmd := orig(group, ctx, name); cmd != nil {
			return cmd
		}
		if name != reserved {
			return nil
		}
		if ctx.HasParent() {
			return nil
		}
		if explicitChild(group, reserved) != nil {
			return nil
		}
		return injected.lookupOrCreate(group, reserved)
	}
}

// patchedList wraps the original listing entry point, appending the
// reserved name at root invocations when it is neither an explicit
// command nor already listed, then re-sorting for deterministic order.
func patchedList(orig ListFunc, reserved string) ListFunc {
	return func(group *cobra.Command, ctx *Context) []string {
		names := orig(group, ctx)
		if ctx.HasParent() {
			return names
		}
		if explicitChild(group, reserved) != nil || slices.Contains(names, reserved) {
			return names
		}
		names = append(names, reserved)
		sort.Strings(names)
		return names
	}
}
