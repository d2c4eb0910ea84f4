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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoice_Set(t *testing.T) {
	c := NewChoice("json", "json", "text")
	require.NoError(t, c.Set("text"))
	assert.Equal(t, "text", c.String())

	err := c.Set("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid choice")
	assert.Contains(t, err.Error(), "json, text")
	assert.Equal(t, "text", c.String())
}

func TestChoice_CaseSensitivity(t *testing.T) {
	c := NewChoice("json", "json", "text")
	require.Error(t, c.Set("JSON"))

	c = NewChoice("json", "json", "text").CaseInsensitive()
	require.NoError(t, c.Set("JSON"))
	// Matching canonicalizes to the declared spelling.
	assert.Equal(t, "json", c.String())
	assert.False(t, c.CaseSensitive())
}

func TestChoice_Introspection(t *testing.T) {
	c := NewChoice("", "a", "b")
	assert.Equal(t, "choice", c.Type())
	assert.Equal(t, []string{"a", "b"}, c.Choices())
	assert.True(t, c.CaseSensitive())
}
