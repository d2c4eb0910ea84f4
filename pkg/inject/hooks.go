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

// Package inject adds a self-describing catalog command to cobra CLIs.
// It supports explicit per-group attachment (Attach) and a process-wide
// interception layer (Patch/Unpatch) over the package's command
// resolution and listing entry points, through which embedding hosts
// route subcommand lookups.
package inject

import (
	"sort"
	"sync"

	"github.com/spf13/cobra"
)

// ResolveFunc is the command-resolution entry point: it returns the
// subcommand of group known under name, or nil when there is none.
type ResolveFunc func(group *cobra.Command, ctx *Context, name string) *cobra.Command

// ListFunc is the command-listing entry point: it enumerates the
// subcommand names of group in deterministic order.
type ListFunc func(group *cobra.Command, ctx *Context) []string

// Context describes one level of an invocation. A nil Context, or one
// without a parent, is a root invocation.
type Context struct {
	// Parent is the enclosing invocation level, nil at the root.
	Parent *Context
	// Name is the display name of the command at this level.
	Name string
}

// HasParent reports whether this is a nested (non-root) invocation.
func (c *Context) HasParent() bool {
	return c != nil && c.Parent != nil
}

// Root walks up to the root invocation level.
func (c *Context) Root() *Context {
	for c != nil && c.Parent != nil {
		c = c.Parent
	}
	return c
}

// hooks holds the currently installed entry points. Patch wraps them,
// Unpatch restores the saved originals; everything else only reads.
var hooks = struct {
	mu      sync.RWMutex
	resolve ResolveFunc
	list    ListFunc
}{
	resolve: defaultResolve,
	list:    defaultList,
}

// ResolveCommand resolves name against group through the installed
// resolution entry point. Hosts embedding dynamic command dispatch call
// this instead of scanning group.Commands() themselves.
func ResolveCommand(group *cobra.Command, ctx *Context, name string) *cobra.Command {
	hooks.mu.RLock()
	resolve := hooks.resolve
	hooks.mu.RUnlock()
	return resolve(group, ctx, name)
}

// ListCommandNames enumerates group's subcommand names through the
// installed listing entry point.
func ListCommandNames(group *cobra.Command, ctx *Context) []string {
	hooks.mu.RLock()
	list := hooks.list
	hooks.mu.RUnlock()
	return list(group, ctx)
}

// defaultResolve is the native behavior: match a direct child by name or
// alias.
func defaultResolve(group *cobra.Command, _ *Context, name string) *cobra.Command {
	for _, child := range group.Commands() {
		if child.Name() == name || child.HasAlias(name) {
			return child
		}
	}
	return nil
}

// defaultList is the native behavior: direct child names, sorted.
func defaultList(group *cobra.Command, _ *Context) []string {
	names := make([]string, 0, len(group.Commands()))
	for _, child := range group.Commands() {
		names = append(names, child.Name())
	}
	sort.Strings(names)
	return names
}

// explicitChild returns group's direct child with exactly this name
// (aliases do not count), or nil.
func explicitChild(group *cobra.Command, name string) *cobra.Command {
	for _, child := range group.Commands() {
		if child.Name() == name {
			return child
		}
	}
	return nil
}
