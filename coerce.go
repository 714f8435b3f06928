// Copyright 2026 The Rivaas Authors
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

package record

import (
	"math"
	"slices"
	"strconv"
)

// Coercer is one attempt at turning an untyped wire scalar into the string
// form stored for dynamic fields. It reports ok == false when the value is
// not of the kind it handles; it never panics.
type Coercer func(v any) (s string, ok bool)

// defaultCoercers is the fixed priority order: string, integer, boolean.
var defaultCoercers = []Coercer{CoerceString, CoerceInteger, CoerceBool}

// DefaultCoercers returns the default coercion order: [CoerceString],
// [CoerceInteger], [CoerceBool].
func DefaultCoercers() []Coercer {
	return slices.Clone(defaultCoercers)
}

// Coerce converts a wire scalar to its dynamic string form using the
// default order. The first successful attempt wins.
//
// Example:
//
//	record.Coerce("abc") // "abc", true
//	record.Coerce(42)    // "42", true
//	record.Coerce(true)  // "true", true
//	record.Coerce(4.2)   // "", false
func Coerce(v any) (string, bool) {
	return coerceWith(defaultCoercers, v)
}

// coerceWith runs coercers in order and returns the first success.
func coerceWith(coercers []Coercer, v any) (string, bool) {
	for _, c := range coercers {
		if s, ok := c(v); ok {
			return s, true
		}
	}

	return "", false
}

// CoerceString accepts native strings only.
func CoerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// CoerceInteger accepts any Go integer kind that fits in int64 and renders
// it in decimal.
func CoerceInteger(v any) (string, bool) {
	i, ok := asInt64(v)
	if !ok {
		return "", false
	}

	return strconv.FormatInt(i, 10), true
}

// CoerceBool accepts booleans and renders them as "true" or "false".
func CoerceBool(v any) (string, bool) {
	b, ok := v.(bool)
	if !ok {
		return "", false
	}

	return strconv.FormatBool(b), true
}

// asInt64 normalizes the integer kinds codecs hand back (JSON int64,
// MessagePack int8..uint64, CBOR uint64/int64) to int64.
// Strings, floats and booleans are not integers here.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
