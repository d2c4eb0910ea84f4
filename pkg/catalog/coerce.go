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
	"reflect"
	"runtime"
	"strings"
)

// unset is the sentinel type for "required with no concrete default".
type unset int

// Unset marks a parameter default as absent. It serializes to JSON null.
const Unset unset = 0

// MarshalJSON renders the sentinel as null so that Unset survives a trip
// through encoding/json (argument declarations are annotation-encoded).
func (unset) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// jsonSafe converts an arbitrary metadata value into a value restricted to
// nil, string, number, bool, []any, or map[string]any. The dispatch order
// is fixed: nil, the Unset sentinel, scalar kinds, Stringer/error, slices,
// maps, funcs, and finally a debug-string fallback. Every branch
// terminates in a JSON-safe value; this function never panics.
func jsonSafe(value any) any {
	if value == nil {
		return nil
	}
	if _, ok := value.(unset); ok {
		return nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Named integer types (enum-like values) collapse to their payload.
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}

	// Self-describing values (durations, path wrappers, enum members with a
	// String method) map to their string form.
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	if err, ok := value.(error); ok {
		return err.Error()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, jsonSafe(rv.Index(i).Interface()))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = jsonSafe(iter.Value().Interface())
		}
		return out
	case reflect.Func:
		return "<callable:" + funcName(rv) + ">"
	}

	return fmt.Sprintf("%#v", value)
}

// funcName returns the best available display name for a func value,
// falling back to its type when the runtime has no symbol for it.
func funcName(rv reflect.Value) string {
	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil && fn.Name() != "" {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.Index(name, "."); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return rv.Type().String()
}
