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

// Package autoload enables cobracat's process-wide patching as a side
// effect of being imported:
//
//	import _ "github.com/cobracat/cobracat/autoload"
//
// Set COBRACAT_DISABLE_AUTO to a truthy token (1, true, TRUE, yes, YES)
// to keep startup untouched. Activation failures never break the
// importing program; with COBRACAT_DEBUG set they are logged at debug
// level.
package autoload

import (
	"github.com/cobracat/cobracat/internal/featureflags"
	"github.com/cobracat/cobracat/internal/log"
	"github.com/cobracat/cobracat/pkg/inject"
)

func init() {
	if featureflags.Get().AutoDisabled() {
		return
	}
	if err := inject.Patch(inject.DefaultCommandName); err != nil {
		log.Default().Debug("autoload patch skipped", log.Error(err))
	}
}
