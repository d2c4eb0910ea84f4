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
	"strings"

	"github.com/spf13/pflag"
)

// Choice is a pflag.Value restricted to a finite set of literals. Its
// choice set is introspectable, so catalogs built over flags declared
// with it report choices and case sensitivity.
type Choice struct {
	value         string
	choices       []string
	caseSensitive bool
}

var _ pflag.Value = (*Choice)(nil)

// NewChoice returns a case-sensitive choice value with the given default.
// The default is not validated against the set; an empty default means
// the flag starts unset.
func NewChoice(def string, choices ...string) *Choice {
	return &Choice{value: def, choices: choices, caseSensitive: true}
}

// CaseInsensitive makes matching in Set ignore case and returns the
// receiver for chaining at declaration sites.
func (c *Choice) CaseInsensitive() *Choice {
	c.caseSensitive = false
	return c
}

func (c *Choice) String() string { return c.value }

// Set accepts only members of the choice set.
func (c *Choice) Set(v string) error {
	for _, choice := range c.choices {
		if choice == v || (!c.caseSensitive && strings.EqualFold(choice, v)) {
			c.value = choice
			return nil
		}
	}
	return fmt.Errorf("invalid choice %q (choose from %s)", v, strings.Join(c.choices, ", "))
}

func (c *Choice) Type() string { return "choice" }

// Choices returns the allowed literals in declaration order.
func (c *Choice) Choices() []string { return c.choices }

// CaseSensitive reports whether Set matches case-sensitively.
func (c *Choice) CaseSensitive() bool { return c.caseSensitive }
