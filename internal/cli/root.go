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

// Package cli assembles the cobracat demo CLI: a small command tree that
// exercises the catalog and injection packages end to end.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cobracat/cobracat/pkg/catalog"
	"github.com/cobracat/cobracat/pkg/inject"
)

// NewRootCommand creates the root command of the demo CLI. The tree
// deliberately covers the catalog's full surface: a nested group, a
// hidden command, a deprecated command, required, slice, count, and
// choice flags, and declared positional arguments. The catalog command
// is attached explicitly under the default reserved name.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cobracat",
		Short: "Demo CLI for the cobracat catalog command",
		Long: `cobracat is a demonstration CLI whose only purpose is to show the
injected catalog command describing a realistic command tree.

Run 'cobracat llm' for the text catalog or 'cobracat llm --json' for the
machine-readable form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newGreetCommand())
	cmd.AddCommand(newFilesCommand())
	cmd.AddCommand(newSecretCommand())
	cmd.AddCommand(newLegacyCommand())

	inject.Attach(cmd, inject.DefaultCommandName)
	return cmd
}

func newGreetCommand() *cobra.Command {
	format := catalog.NewChoice("plain", "plain", "fancy").CaseInsensitive()
	var shout bool

	cmd := &cobra.Command{
		Use:   "greet NAME",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			greeting := fmt.Sprintf("hello, %s", args[0])
			if shout {
				greeting = strings.ToUpper(greeting)
			}
			if format.String() == "fancy" {
				greeting = RenderOK(greeting)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), greeting)
			return err
		},
	}
	cmd.Flags().Var(format, "format", "Greeting style")
	cmd.Flags().BoolVar(&shout, "shout", false, "Upper-case the greeting")
	catalog.SetArguments(cmd, catalog.Argument{Name: "name", Required: true})
	return cmd
}

func newFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Work with files",
	}

	var long bool
	list := &cobra.Command{
		Use:   "list [PATH...]",
		Short: "List known files",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}
			for _, p := range paths {
				if long {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", Muted.Render("path"), p)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	list.Flags().BoolVarP(&long, "long", "l", false, "Use long listing format")
	catalog.SetArguments(list, catalog.Argument{Name: "path", Nargs: -1})

	var tags []string
	var dest string
	var level int
	sync := &cobra.Command{
		Use:   "sync SOURCE",
		Short: "Synchronize a source into the destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "sync %s -> %s (tags: %s)\n",
				args[0], dest, strings.Join(tags, ","))
			return nil
		},
	}
	sync.Flags().StringVarP(&dest, "dest", "d", "", "Destination directory")
	_ = sync.MarkFlagRequired("dest")
	sync.Flags().StringSliceVar(&tags, "tag", nil, "Tag the sync run (repeatable)")
	sync.Flags().CountVarP(&level, "level", "L", "Increase sync effort")
	catalog.SetArguments(sync, catalog.Argument{Name: "source", Required: true})

	cmd.AddCommand(list, sync)
	return cmd
}

func newSecretCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "secret",
		Short:  "Hidden maintenance command",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "shh")
			return err
		},
	}
}

func newLegacyCommand() *cobra.Command {
	return &cobra.Command{
		Use:        "legacy",
		Short:      "Old entry point",
		Deprecated: "use 'greet' instead",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "hello from the past")
			return err
		},
	}
}
