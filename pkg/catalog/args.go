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
	"strings"

	"github.com/spf13/cobra"
)

// ArgumentsAnnotation is the cobra annotation key under which a command's
// declared positional arguments are stored, JSON-encoded.
const ArgumentsAnnotation = "cobracat_arguments"

// Argument declares one positional parameter of a command. cobra has no
// structural model for positionals, so commands either declare them with
// SetArguments or have them derived from the Use line.
type Argument struct {
	// Name is the semantic parameter name, lower-case.
	Name string `json:"name"`
	// Required marks the argument as mandatory.
	Required bool `json:"required"`
	// Default is the value used when the argument is omitted; nil (or
	// Unset) means no default.
	Default any `json:"default,omitempty"`
	// Nargs is a positive value count, or -1 for collect-all. Zero is
	// treated as 1.
	Nargs int `json:"nargs,omitempty"`
	// Type is the declared type name; empty means "string".
	Type string `json:"type,omitempty"`
	// Choices restricts the argument to a finite literal set.
	Choices []string `json:"choices,omitempty"`
	// CaseSensitive applies to Choices; nil means case-sensitive.
	CaseSensitive *bool `json:"case_sensitive,omitempty"`
}

// SetArguments declares cmd's positional arguments for the catalog. The
// declaration is carried in cmd.Annotations and takes precedence over the
// Use line.
func SetArguments(cmd *cobra.Command, args ...Argument) {
	encoded, err := json.Marshal(args)
	if err != nil {
		// Argument values are plain data; this only fires for defaults
		// that cannot be represented, which SetArguments callers control.
		panic("catalog: unencodable argument declaration: " + err.Error())
	}
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[ArgumentsAnnotation] = string(encoded)
}

// ArgumentsOf returns cmd's positional arguments: the explicit
// declaration when present, otherwise descriptors parsed from the Use
// line per cobra's documentation convention.
func ArgumentsOf(cmd *cobra.Command) []Argument {
	if cmd.Annotations != nil {
		if encoded, ok := cmd.Annotations[ArgumentsAnnotation]; ok {
			var args []Argument
			if err := json.Unmarshal([]byte(encoded), &args); err == nil {
				return args
			}
		}
	}
	return parseUseArguments(cmd.Use)
}

func argumentsOf(cmd *cobra.Command) []Argument {
	return ArgumentsOf(cmd)
}

// usePlaceholders are Use-line tokens that describe flags or subcommands
// rather than positional arguments.
var usePlaceholders = map[string]bool{
	"flags":      true,
	"options":    true,
	"command":    true,
	"commands":   true,
	"subcommand": true,
	"args":       true,
}

// parseUseArguments derives argument descriptors from a cobra Use line,
// e.g. "run [OPTIONS] INPUT [OUTPUT] FILES...".
func parseUseArguments(use string) []Argument {
	fields := strings.Fields(use)
	if len(fields) <= 1 {
		return nil
	}
	var args []Argument
	for _, tok := range fields[1:] {
		required := true
		if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
			tok = tok[1 : len(tok)-1]
			required = false
		}
		nargs := 1
		if strings.HasSuffix(tok, "...") {
			tok = strings.TrimSuffix(tok, "...")
			nargs = -1
		}
		tok = strings.Trim(tok, "<>")
		if tok == "" || usePlaceholders[strings.ToLower(tok)] {
			continue
		}
		args = append(args, Argument{
			Name:     strings.ToLower(tok),
			Required: required,
			Nargs:    nargs,
		})
	}
	return args
}

// argumentParam converts one Argument declaration into its record form.
func argumentParam(arg Argument) Param {
	nargs := arg.Nargs
	if nargs == 0 {
		nargs = 1
	}
	typeName := arg.Type
	if typeName == "" {
		if len(arg.Choices) > 0 {
			typeName = "choice"
		} else {
			typeName = "string"
		}
	}
	info := TypeInfo{Name: typeName, Class: typeName}
	if len(arg.Choices) > 0 {
		info.Choices = append([]string{}, arg.Choices...)
		sensitive := true
		if arg.CaseSensitive != nil {
			sensitive = *arg.CaseSensitive
		}
		info.CaseSensitive = &sensitive
	}
	return Param{
		Kind:     "argument",
		Name:     arg.Name,
		Required: arg.Required,
		Default:  jsonSafe(arg.Default),
		Nargs:    nargs,
		Type:     info,
	}
}
