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

import "fmt"

// ConflictError is returned by Patch when the process is already patched
// under a different reserved command name. The caller must Unpatch first
// or reuse the active name; proceeding silently would leave the process
// in an ambiguous dual-name state.
type ConflictError struct {
	// Active is the reserved name currently patched in.
	Active string
	// Requested is the name the failing Patch call asked for.
	Requested string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("inject: already patched with command name %q, cannot patch %q (call Unpatch first)",
		e.Active, e.Requested)
}
