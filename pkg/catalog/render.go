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

package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RenderText formats a catalog as a compact text report for LLM prompts.
// It operates purely on the serialized catalog shape and has no cobra
// dependency, so it also renders catalogs that were not built from a live
// command tree.
func RenderText(c *Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog_version: %d\n", c.Version)
	fmt.Fprintf(&b, "generated_at: %s\n", c.GeneratedAt)
	fmt.Fprintf(&b, "root_command: %s\n", c.RootCommand)
	b.WriteString("\n")
	fmt.Fprintf(&b, "commands: %d", len(c.Commands))

	for _, entry := range c.Commands {
		path := strings.TrimSpace(entry.Path)
		if path == "" {
			continue
		}
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "### %s\n", path)
		fmt.Fprintf(&b, "kind: %s", entry.Kind)
		if summary := strings.TrimSpace(entry.Summary); summary != "" {
			fmt.Fprintf(&b, "\nsummary: %s", summary)
		}
		fmt.Fprintf(&b, "\nusage: %s", usageFor(path, entry.Params))
		if len(entry.Params) == 0 {
			b.WriteString("\nparams: none")
			continue
		}
		b.WriteString("\nparams:")
		for _, p := range entry.Params {
			b.WriteString("\n")
			b.WriteString(paramLine(p))
		}
	}
	return b.String()
}

// usageFor synthesizes a usage line: the command path, an [OPTIONS]
// placeholder when any option exists, then each argument in declaration
// order.
func usageFor(path string, params []Param) string {
	tokens := []string{path}
	for _, p := range params {
		if p.Kind == "option" {
			tokens = append(tokens, "[OPTIONS]")
			break
		}
	}
	for _, p := range params {
		if p.Kind != "argument" {
			continue
		}
		name := strings.ToUpper(p.Name)
		if name == "" {
			name = "ARG"
		}
		switch {
		case p.Nargs == -1:
			name += "..."
		case p.Nargs > 1:
			parts := make([]string, p.Nargs)
			for i := range parts {
				parts[i] = name
			}
			name = strings.Join(parts, " ")
		}
		if !p.Required {
			name = "[" + name + "]"
		}
		tokens = append(tokens, name)
	}
	return strings.Join(tokens, " ")
}

// paramLine renders one parameter list line, with an indented help line
// appended for options that carry help text.
func paramLine(p Param) string {
	if p.Kind == "argument" {
		return fmt.Sprintf("- argument `%s`, type=%s, required=%v, nargs=%d, default=%s",
			p.Name, p.Type.Name, p.Required, p.Nargs, fmtDefault(p.Default))
	}
	line := fmt.Sprintf("- option `%s`, type=%s, required=%v, default=%s",
		strings.Join(p.Flags, ", "), p.Type.Name, p.Required, fmtDefault(p.Default))
	if p.IsFlag != nil && *p.IsFlag {
		line += ", is_flag=True"
	}
	if p.Multiple != nil && *p.Multiple {
		line += ", multiple=True"
	}
	if p.Help != nil {
		if help := strings.TrimSpace(*p.Help); help != "" {
			line += "\n  help: " + help
		}
	}
	return line
}

// fmtDefault renders a default value as the literal text null when unset,
// otherwise as compact JSON.
func fmtDefault(v any) string {
	if v == nil {
		return "null"
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return string(encoded)
}
