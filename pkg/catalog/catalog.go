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

// Package catalog builds machine-readable catalogs of cobra command
// trees. A catalog is a versioned snapshot describing every visible
// command, flag, and positional argument, in both a nested tree form and
// a flattened pre-order list, intended for LLM and tooling consumption.
package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version is the catalog schema version. It is bumped only on breaking
// changes to the serialized shape.
const Version = 1

// Entry describes one command or group in the flattened catalog.
type Entry struct {
	Path       string  `json:"path"`
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	Summary    string  `json:"summary"`
	Hidden     bool    `json:"hidden"`
	Deprecated bool    `json:"deprecated"`
	Params     []Param `json:"params"`
}

// Node is the tree form of an Entry.
type Node struct {
	Entry
	Subcommands []*Node `json:"subcommands"`
}

// Catalog is a versioned snapshot of a command tree.
type Catalog struct {
	Version     int     `json:"catalog_version"`
	GeneratedAt string  `json:"generated_at"`
	RootCommand string  `json:"root_command"`
	Tree        *Node   `json:"tree"`
	Commands    []Entry `json:"commands"`
}

// Options control catalog construction.
type Options struct {
	// RootName is the display name used for the root path segment.
	// Empty means "cli".
	RootName string
	// IncludeHidden keeps hidden commands and their subtrees in the
	// catalog. The root is always included regardless.
	IncludeHidden bool
}

// Build walks root and returns its catalog snapshot. The root node is
// always included, even when marked hidden; every other hidden node is
// pruned together with its entire subtree unless IncludeHidden is set.
// Build panics only when root is nil, which is a caller bug.
func Build(root *cobra.Command, opts Options) *Catalog {
	if root == nil {
		panic("catalog: Build called with nil root")
	}
	name := opts.RootName
	if name == "" {
		name = "cli"
	}
	tree := serializeCommand(root, []string{name}, opts.IncludeHidden, true)
	return &Catalog{
		Version:     Version,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		RootCommand: name,
		Tree:        tree,
		Commands:    flatten(tree),
	}
}

// serializeCommand emits the node for cmd, recursing into children in
// lexical name order so catalogs are stable across runs regardless of
// declaration order. Returns nil for a pruned node.
func serializeCommand(cmd *cobra.Command, pathParts []string, includeHidden, isRoot bool) *Node {
	if cmd.Hidden && !includeHidden && !isRoot {
		return nil
	}

	kind := "command"
	if cmd.HasSubCommands() {
		kind = "group"
	}
	node := &Node{
		Entry: Entry{
			Path:       strings.Join(pathParts, " "),
			Name:       pathParts[len(pathParts)-1],
			Kind:       kind,
			Summary:    summaryOf(cmd),
			Hidden:     cmd.Hidden,
			Deprecated: cmd.Deprecated != "",
			Params:     serializeParams(cmd),
		},
		Subcommands: []*Node{},
	}

	children := append([]*cobra.Command{}, cmd.Commands()...)
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })
	for _, child := range children {
		childNode := serializeCommand(child, append(pathParts[:len(pathParts):len(pathParts)], child.Name()), includeHidden, false)
		if childNode != nil {
			node.Subcommands = append(node.Subcommands, childNode)
		}
	}
	return node
}

// summaryOf returns the short help, falling back to the first line of the
// long help.
func summaryOf(cmd *cobra.Command) string {
	if s := strings.TrimSpace(cmd.Short); s != "" {
		return s
	}
	long := strings.TrimSpace(cmd.Long)
	if long == "" {
		return ""
	}
	if i := strings.IndexByte(long, '\n'); i >= 0 {
		long = long[:i]
	}
	return strings.TrimSpace(long)
}

// flatten projects the already-filtered tree into pre-order. It applies
// no filtering of its own.
func flatten(node *Node) []Entry {
	flat := []Entry{node.Entry}
	for _, child := range node.Subcommands {
		flat = append(flat, flatten(child)...)
	}
	return flat
}
