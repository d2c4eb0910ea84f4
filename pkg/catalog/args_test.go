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
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUseArguments(t *testing.T) {
	tests := []struct {
		name string
		use  string
		want []Argument
	}{
		{"no arguments", "status", nil},
		{
			"required and optional",
			"run INPUT [OUTPUT]",
			[]Argument{
				{Name: "input", Required: true, Nargs: 1},
				{Name: "output", Required: false, Nargs: 1},
			},
		},
		{
			"collect-all",
			"sync FILES...",
			[]Argument{{Name: "files", Required: true, Nargs: -1}},
		},
		{
			"optional collect-all",
			"list [PATH...]",
			[]Argument{{Name: "path", Required: false, Nargs: -1}},
		},
		{
			"placeholders skipped",
			"app [command] [flags] NAME",
			[]Argument{{Name: "name", Required: true, Nargs: 1}},
		},
		{
			"angle brackets stripped",
			"get <key>",
			[]Argument{{Name: "key", Required: true, Nargs: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseUseArguments(tt.use))
		})
	}
}

func TestSetArguments_OverridesUseLine(t *testing.T) {
	cmd := &cobra.Command{Use: "run INPUT [OUTPUT]"}
	SetArguments(cmd, Argument{Name: "input", Required: true, Type: "file"})

	args := ArgumentsOf(cmd)
	require.Len(t, args, 1)
	assert.Equal(t, "file", args[0].Type)
}

func TestArgumentsOf_UsesUseLineWithoutDeclaration(t *testing.T) {
	cmd := &cobra.Command{Use: "run INPUT"}
	args := ArgumentsOf(cmd)
	require.Len(t, args, 1)
	assert.Equal(t, "input", args[0].Name)
	assert.True(t, args[0].Required)
}

func TestArgumentParam_Defaults(t *testing.T) {
	p := argumentParam(Argument{Name: "input"})
	assert.Equal(t, 1, p.Nargs)
	assert.Equal(t, "string", p.Type.Name)
	assert.Nil(t, p.Default)

	p = argumentParam(Argument{Name: "mode", Choices: []string{"fast", "slow"}})
	assert.Equal(t, "choice", p.Type.Name)
	assert.Equal(t, []string{"fast", "slow"}, p.Type.Choices)
	require.NotNil(t, p.Type.CaseSensitive)
	assert.True(t, *p.Type.CaseSensitive)
}

func TestSetArguments_UnsetDefaultSerializesToNull(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	SetArguments(cmd, Argument{Name: "input", Default: Unset})

	args := ArgumentsOf(cmd)
	require.Len(t, args, 1)
	assert.Nil(t, args[0].Default)
	assert.Nil(t, argumentParam(args[0]).Default)
}
