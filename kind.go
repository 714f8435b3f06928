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
	"fmt"
	"strconv"
	"strings"
)

// Kind is the semantic type of a typed field.
type Kind int

const (
	// KindInvalid is the zero Kind. Absent values report it.
	KindInvalid Kind = iota

	// KindInt is a signed 64-bit integer.
	KindInt

	// KindString is a UTF-8 string.
	KindString

	// KindBool is a boolean.
	KindBool
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// ParseKind converts a kind name to a Kind.
// Accepted names are "int", "integer", "string", "bool" and "boolean"
// (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer":
		return KindInt, nil
	case "string":
		return KindString, nil
	case "bool", "boolean":
		return KindBool, nil
	default:
		return KindInvalid, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Value is an optionally present scalar held by a typed field.
// The zero Value is absent.
type Value struct {
	kind Kind
	i    int64
	s    string
	b    bool
}

// Int returns a present integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// String returns a present string Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a present boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind returns the kind of the value, or KindInvalid if absent.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether the value is present.
func (v Value) IsSet() bool { return v.kind != KindInvalid }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// Any returns the value as int64, string or bool, or nil if absent.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String formats the value. Absent values format as "<absent>".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<absent>"
	}
}

// valueOf decodes a wire scalar at the given kind. No cross-kind
// conversion happens here: "5" is not an integer and 1 is not a boolean.
func valueOf(kind Kind, raw any) (Value, bool) {
	switch kind {
	case KindString:
		if s, ok := raw.(string); ok {
			return String(s), true
		}
	case KindInt:
		if i, ok := asInt64(raw); ok {
			return Int(i), true
		}
	case KindBool:
		if b, ok := raw.(bool); ok {
			return Bool(b), true
		}
	}

	return Value{}, false
}
