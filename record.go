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
	"maps"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is an extensible record: one optional value per typed field of
// its [Schema], plus an insertion-ordered bag of dynamic string fields.
//
// Record is an immutable value. Every With*/Without* method returns a new
// Record and leaves the receiver untouched, so copies can be handed to
// other goroutines freely. The zero Record has no schema and no fields;
// every key set on it is dynamic.
type Record struct {
	schema  *Schema
	typed   []Value                               // nil means all absent; never mutated once shared
	dynamic *orderedmap.OrderedMap[string, string] // nil means empty; never mutated once shared
}

// Entry is one dynamic field.
type Entry struct {
	Key   string
	Value string
}

// New returns an empty record for the schema. A nil schema yields a record
// with no typed fields.
func New(schema *Schema) Record {
	return Record{schema: schema}
}

// Schema returns the record's schema. It is never nil.
func (r Record) Schema() *Schema {
	return r.schema.or()
}

// Field returns the value of a typed field. ok is false when the field is
// unknown or absent.
func (r Record) Field(name string) (Value, bool) {
	i, ok := r.schema.Index(name)
	if !ok || i >= len(r.typed) || !r.typed[i].IsSet() {
		return Value{}, false
	}

	return r.typed[i], true
}

// WithField returns a copy with a typed field set. Passing the zero Value
// clears the field.
//
// Errors:
//   - [ErrUnknownField]: name is not declared in the schema
//   - [ErrKindMismatch]: v's kind differs from the declared kind
func (r Record) WithField(name string, v Value) (Record, error) {
	s := r.schema.or()
	i, ok := s.byName[name]
	if !ok {
		return r, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if v.IsSet() && v.kind != s.fields[i].Kind {
		return r, fmt.Errorf("%w: field %q is %s, got %s", ErrKindMismatch, name, s.fields[i].Kind, v.kind)
	}

	typed := make([]Value, s.Len())
	copy(typed, r.typed)
	typed[i] = v
	r.typed = typed

	return r, nil
}

// WithoutField returns a copy with a typed field cleared.
// Unknown names return the record unchanged.
func (r Record) WithoutField(name string) Record {
	out, err := r.WithField(name, Value{})
	if err != nil {
		return r
	}

	return out
}

// Get returns a dynamic field.
func (r Record) Get(name string) (string, bool) {
	if r.dynamic == nil {
		return "", false
	}

	return r.dynamic.Get(name)
}

// Has reports whether a dynamic field is set.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// With returns a copy with a dynamic field set. A new key is appended after
// existing ones; replacing a key keeps its position.
//
// Setting a key that is also a mapped wire key is allowed, but such an
// entry is never written to the wire (see [CollisionPolicy]).
func (r Record) With(name, value string) Record {
	bag := cloneBag(r.dynamic, 1)
	bag.Set(name, value)
	r.dynamic = bag

	return r
}

// Without returns a copy with a dynamic field removed.
func (r Record) Without(name string) Record {
	if !r.Has(name) {
		return r
	}
	bag := cloneBag(r.dynamic, 0)
	bag.Delete(name)
	r.dynamic = bag

	return r
}

// Len returns the number of dynamic fields.
func (r Record) Len() int {
	if r.dynamic == nil {
		return 0
	}

	return r.dynamic.Len()
}

// All returns the dynamic fields in insertion order.
func (r Record) All() []Entry {
	entries := make([]Entry, 0, r.Len())
	r.rangeDynamic(func(k, v string) {
		entries = append(entries, Entry{Key: k, Value: v})
	})

	return entries
}

// Map returns the dynamic fields as a new map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, r.Len())
	r.rangeDynamic(func(k, v string) {
		m[k] = v
	})

	return m
}

// Equal reports whether two records hold the same typed values and the
// same dynamic fields. Dynamic order is ignored: some wire formats do not
// preserve it. Schemas are compared by identity.
func (r Record) Equal(o Record) bool {
	if r.Schema() != o.Schema() {
		return false
	}
	for i := range r.Schema().Len() {
		if r.typedAt(i) != o.typedAt(i) {
			return false
		}
	}

	return maps.Equal(r.Map(), o.Map())
}

// String formats the record for debugging.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	sep := ""
	for i, f := range r.Schema().fields {
		v := r.typedAt(i)
		if !v.IsSet() {
			continue
		}
		fmt.Fprintf(&sb, "%s%s: %v", sep, f.Name, v.Any())
		sep = ", "
	}
	r.rangeDynamic(func(k, v string) {
		fmt.Fprintf(&sb, "%s%s: %q", sep, k, v)
		sep = ", "
	})
	sb.WriteByte('}')

	return sb.String()
}

// typedAt returns the value at a field position, absent if unset.
func (r Record) typedAt(i int) Value {
	if i >= len(r.typed) {
		return Value{}
	}

	return r.typed[i]
}

// rangeDynamic walks the dynamic bag in order.
func (r Record) rangeDynamic(fn func(k, v string)) {
	if r.dynamic == nil {
		return
	}
	for pair := r.dynamic.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// withTyped installs a freshly built typed slice. Used by decode only.
func (r Record) withTyped(typed []Value) Record {
	if !slices.ContainsFunc(typed, Value.IsSet) {
		typed = nil
	}
	r.typed = typed

	return r
}

// cloneBag copies a dynamic bag with room for extra entries.
func cloneBag(src *orderedmap.OrderedMap[string, string], extra int) *orderedmap.OrderedMap[string, string] {
	size := extra
	if src != nil {
		size += src.Len()
	}
	dst := orderedmap.New[string, string](size)
	if src == nil {
		return dst
	}
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value)
	}

	return dst
}
