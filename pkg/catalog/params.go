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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Param is the uniform record for a single option or argument. The
// pointer fields belong to options only: they are always present on an
// option record (even when false or empty) and never on an argument
// record, keeping both JSON shapes stable.
type Param struct {
	Kind     string   `json:"kind"`
	Name     string   `json:"name"`
	Flags    []string `json:"flags,omitempty"`
	Help     *string  `json:"help,omitempty"`
	Required bool     `json:"required"`
	Default  any      `json:"default"`
	Multiple *bool    `json:"multiple,omitempty"`
	Nargs    int      `json:"nargs"`
	IsFlag   *bool    `json:"is_flag,omitempty"`
	Count    *bool    `json:"count,omitempty"`
	Type     TypeInfo `json:"type"`
}

// TypeInfo describes a parameter's declared type. Choices and
// CaseSensitive are populated only for choice-constrained types.
type TypeInfo struct {
	Name          string   `json:"name"`
	Class         string   `json:"class"`
	Choices       []string `json:"choices,omitempty"`
	CaseSensitive *bool    `json:"case_sensitive,omitempty"`
}

// choiceValue is the optional interface a pflag.Value implements to expose
// a finite choice set to the catalog.
type choiceValue interface {
	Choices() []string
}

// caseSensitivity optionally refines choiceValue; absent means sensitive.
type caseSensitivity interface {
	CaseSensitive() bool
}

func ptr[T any](v T) *T { return &v }

// serializeParams produces the parameter records for one command:
// options from its declared flags, then its positional arguments.
func serializeParams(cmd *cobra.Command) []Param {
	params := []Param{}
	cmd.NonInheritedFlags().VisitAll(func(flag *pflag.Flag) {
		params = append(params, optionParam(flag))
	})
	for _, arg := range argumentsOf(cmd) {
		params = append(params, argumentParam(arg))
	}
	return params
}

// optionParam converts one pflag flag into an option record.
func optionParam(flag *pflag.Flag) Param {
	typeName := flag.Value.Type()
	_, isSlice := flag.Value.(pflag.SliceValue)
	return Param{
		Kind:     "option",
		Name:     flag.Name,
		Flags:    flagSpellings(flag),
		Help:     ptr(strings.TrimSpace(flag.Usage)),
		Required: flagRequired(flag),
		Default:  jsonSafe(flagDefault(flag)),
		Multiple: ptr(isSlice),
		Nargs:    1,
		IsFlag:   ptr(typeName == "bool"),
		Count:    ptr(typeName == "count"),
		Type:     typeInfoOf(flag.Value),
	}
}

// flagSpellings lists the user-facing spellings in declaration order:
// the long form first, then the shorthand.
func flagSpellings(flag *pflag.Flag) []string {
	spellings := []string{"--" + flag.Name}
	if flag.Shorthand != "" {
		spellings = append(spellings, "-"+flag.Shorthand)
	}
	return spellings
}

// flagRequired reports whether cobra marked the flag as required.
func flagRequired(flag *pflag.Flag) bool {
	if flag.Annotations == nil {
		return false
	}
	required, ok := flag.Annotations[cobra.BashCompOneRequiredFlag]
	return ok && len(required) > 0 && required[0] == "true"
}

// flagDefault recovers a typed default from pflag's string DefValue so the
// catalog records real JSON values rather than pflag's string rendering.
// Unknown value types keep their DefValue string form.
func flagDefault(flag *pflag.Flag) any {
	if sv, ok := flag.Value.(pflag.SliceValue); ok {
		return sliceDefault(flag.Value.Type(), sv.GetSlice())
	}
	def := flag.DefValue
	switch flag.Value.Type() {
	case "bool":
		v, err := strconv.ParseBool(def)
		if err != nil {
			return def
		}
		return v
	case "int", "int8", "int16", "int32", "int64", "count":
		v, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return def
		}
		return v
	case "uint", "uint8", "uint16", "uint32", "uint64":
		v, err := strconv.ParseUint(def, 10, 64)
		if err != nil {
			return def
		}
		return v
	case "float32", "float64":
		v, err := strconv.ParseFloat(def, 64)
		if err != nil {
			return def
		}
		return v
	}
	return def
}

// sliceDefault parses each element of a slice flag's default according to
// the slice's element type.
func sliceDefault(typeName string, elems []string) []any {
	out := make([]any, 0, len(elems))
	for _, e := range elems {
		switch {
		case strings.HasPrefix(typeName, "int"):
			if v, err := strconv.ParseInt(e, 10, 64); err == nil {
				out = append(out, v)
				continue
			}
		case strings.HasPrefix(typeName, "uint"):
			if v, err := strconv.ParseUint(e, 10, 64); err == nil {
				out = append(out, v)
				continue
			}
		case strings.HasPrefix(typeName, "float"):
			if v, err := strconv.ParseFloat(e, 64); err == nil {
				out = append(out, v)
				continue
			}
		case strings.HasPrefix(typeName, "bool"):
			if v, err := strconv.ParseBool(e); err == nil {
				out = append(out, v)
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// typeInfoOf builds the TypeInfo for a pflag value, including the choice
// set when the value exposes one.
func typeInfoOf(value pflag.Value) TypeInfo {
	class := valueClass(value)
	name := value.Type()
	if name == "" {
		name = strings.ToLower(class)
	}
	info := TypeInfo{Name: name, Class: class}
	if cv, ok := value.(choiceValue); ok {
		info.Choices = append([]string{}, cv.Choices()...)
		sensitive := true
		if cs, ok := value.(caseSensitivity); ok {
			sensitive = cs.CaseSensitive()
		}
		info.CaseSensitive = &sensitive
	}
	return info
}

// valueClass names the concrete implementation type of a pflag value,
// without pointer and package qualifiers.
func valueClass(value pflag.Value) string {
	class := fmt.Sprintf("%T", value)
	class = strings.TrimLeft(class, "*")
	if i := strings.LastIndex(class, "."); i >= 0 {
		class = class[i+1:]
	}
	return class
}
