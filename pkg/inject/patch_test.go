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
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch_Idempotent(t *testing.T) {
	defer Unpatch()

	require.NoError(t, Patch("x"))
	require.NoError(t, Patch("x"))

	root := newTestTree()
	cmd := ResolveCommand(root, nil, "x")
	require.NotNil(t, cmd)
	assert.Equal(t, "x", cmd.Name())
}

func TestPatch_Conflict(t *testing.T) {
	defer Unpatch()

	require.NoError(t, Patch("a"))
	err := Patch("b")
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "a", conflict.Active)
	assert.Equal(t, "b", conflict.Requested)
	assert.Contains(t, err.Error(), `"a"`)

	// State remains patched under "a".
	assert.NotNil(t, ResolveCommand(newTestTree(), nil, "a"))
	assert.Nil(t, ResolveCommand(newTestTree(), nil, "b"))
}

func TestUnpatch_Idempotent(t *testing.T) {
	Unpatch()
	Unpatch()

	require.NoError(t, Patch("x"))
	Unpatch()
	Unpatch()

	assert.Nil(t, ResolveCommand(newTestTree(), nil, "x"))
}

func TestUnpatch_RestoresOriginalHooks(t *testing.T) {
	root := newTestTree()

	before := ResolveCommand(root, nil, "hello")
	require.NotNil(t, before)

	require.NoError(t, Patch("llm"))
	Unpatch()

	assert.Same(t, before, ResolveCommand(root, nil, "hello"))
	assert.Nil(t, ResolveCommand(root, nil, "llm"))
	assert.NotContains(t, ListCommandNames(root, nil), "llm")
}

func TestPatchedResolve_OriginalWins(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	root := newTestTree()
	explicit := &cobra.Command{Use: "llm", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(explicit)

	assert.Same(t, explicit, ResolveCommand(root, nil, "llm"))
}

func TestPatchedResolve_RootOnly(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	root := newTestTree()
	nested := &Context{Parent: &Context{Name: "cli"}, Name: "sub"}
	assert.Nil(t, ResolveCommand(root, nested, "llm"))

	assert.NotNil(t, ResolveCommand(root, nil, "llm"))
	assert.NotNil(t, ResolveCommand(root, &Context{Name: "cli"}, "llm"))
}

func TestPatchedResolve_UnknownNamesStayUnknown(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	assert.Nil(t, ResolveCommand(newTestTree(), nil, "nope"))
}

func TestPatchedResolve_CachesPerRoot(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	a := newTestTree()
	b := newTestTree()

	cmdA := ResolveCommand(a, nil, "llm")
	cmdB := ResolveCommand(b, nil, "llm")
	require.NotNil(t, cmdA)
	require.NotNil(t, cmdB)

	// Identity-keyed: same root reuses, distinct roots differ even though
	// both are named "cli".
	assert.Same(t, cmdA, ResolveCommand(a, nil, "llm"))
	assert.NotSame(t, cmdA, cmdB)
}

func TestEvict(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	root := newTestTree()
	first := ResolveCommand(root, nil, "llm")
	Evict(root)
	second := ResolveCommand(root, nil, "llm")
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestPatchedList(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	root := newTestTree()
	names := ListCommandNames(root, nil)
	assert.Equal(t, []string{"hello", "llm", "secret"}, names)

	// Nested contexts never gain the reserved name.
	nested := &Context{Parent: &Context{Name: "cli"}}
	assert.NotContains(t, ListCommandNames(root, nested), "llm")
}

func TestPatchedList_ExplicitCommandNotDuplicated(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	root := newTestTree()
	Attach(root, "llm")

	count := 0
	for _, name := range ListCommandNames(root, nil) {
		if name == "llm" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPatchedResolve_ConcurrentSingleBuild(t *testing.T) {
	defer Unpatch()
	require.NoError(t, Patch("llm"))

	root := newTestTree()
	const workers = 32
	results := make([]*cobra.Command, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ResolveCommand(root, nil, "llm")
		}(i)
	}
	wg.Wait()

	require.NotNil(t, results[0])
	for _, cmd := range results[1:] {
		assert.Same(t, results[0], cmd)
	}
}

func TestRepatch_DifferentNameRebuildsCachedCommand(t *testing.T) {
	defer Unpatch()

	root := newTestTree()
	require.NoError(t, Patch("llm"))
	first := ResolveCommand(root, nil, "llm")
	require.NotNil(t, first)

	Unpatch()
	require.NoError(t, Patch("catalog"))
	rebuilt := ResolveCommand(root, nil, "catalog")
	require.NotNil(t, rebuilt)
	assert.Equal(t, "catalog", rebuilt.Name())
}

func TestContext_Root(t *testing.T) {
	rootCtx := &Context{Name: "cli"}
	nested := &Context{Parent: rootCtx, Name: "sub"}

	assert.False(t, rootCtx.HasParent())
	assert.True(t, nested.HasParent())
	assert.Same(t, rootCtx, nested.Root())
	assert.False(t, (*Context)(nil).HasParent())
	assert.Nil(t, (*Context)(nil).Root())
}
