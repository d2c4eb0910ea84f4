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

// Package featureflags provides the environment toggles honored by
// cobracat's startup auto-enablement.
package featureflags

import (
	"os"
	"sync"
)

// Flags holds the environment-driven switches with thread-safe access.
type Flags struct {
	mu sync.RWMutex

	// DisableAuto suppresses autoload's process-wide patching.
	DisableAuto bool
	// Debug enables debug tracing of the injection layer.
	Debug bool
}

var (
	// globalFlags is the singleton instance of feature flags
	globalFlags *Flags
	once        sync.Once
)

// Get returns the global feature flags instance.
func Get() *Flags {
	once.Do(func() {
		globalFlags = &Flags{}
		globalFlags.loadFromEnv()
	})
	return globalFlags
}

// loadFromEnv loads flag state from environment variables.
func (f *Flags) loadFromEnv() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.DisableAuto = truthy(os.Getenv("COBRACAT_DISABLE_AUTO"))
	f.Debug = truthy(os.Getenv("COBRACAT_DEBUG"))
}

// AutoDisabled reports whether startup patching is switched off.
func (f *Flags) AutoDisabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.DisableAuto
}

// DebugEnabled reports whether debug tracing is switched on.
func (f *Flags) DebugEnabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.Debug
}

// truthyTokens is the fixed, case-sensitive set of values that switch a
// toggle on. Anything else, including "True" or "on", leaves it off.
var truthyTokens = map[string]bool{
	"1":    true,
	"true": true,
	"TRUE": true,
	"yes":  true,
	"YES":  true,
}

func truthy(value string) bool {
	return truthyTokens[value]
}

// ResetForTest clears the singleton so tests can vary the environment.
func ResetForTest() {
	globalFlags = nil
	once = sync.Once{}
}
