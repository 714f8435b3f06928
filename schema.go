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
	"slices"
)

// Field declares one typed field of a [Schema].
type Field struct {
	Name    string // Internal identifier (e.g., "agreedToTerms")
	WireKey string // Key on the wire (e.g., "agreedtotermsandconditions")
	Kind    Kind   // Semantic type
}

// Schema is the key mapping between typed fields and their wire keys.
// Field order is declaration order, which is also encode emission order.
//
// A Schema is immutable after construction and safe for concurrent use.
type Schema struct {
	fields []Field
	byName map[string]int
	byKey  map[string]int
}

// emptySchema backs records built without a schema: every key is dynamic.
var emptySchema = &Schema{
	byName: map[string]int{},
	byKey:  map[string]int{},
}

// NewSchema builds a Schema from field declarations.
// Names and wire keys must be non-empty and pairwise distinct, and every
// kind must be valid.
//
// Example:
//
//	schema, err := record.NewSchema(
//	    record.Field{Name: "rating", WireKey: "rating", Kind: record.KindInt},
//	    record.Field{Name: "agreedToTerms", WireKey: "agreedtotermsandconditions", Kind: record.KindBool},
//	)
//
// Errors:
//   - [ErrEmptyFieldName], [ErrEmptyWireKey]
//   - [ErrInvalidKind]
//   - [ErrDuplicateFieldName], [ErrDuplicateWireKey]
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: slices.Clone(fields),
		byName: make(map[string]int, len(fields)),
		byKey:  make(map[string]int, len(fields)),
	}

	for i, f := range s.fields {
		switch {
		case f.Name == "":
			return nil, fmt.Errorf("%w at position %d", ErrEmptyFieldName, i)
		case f.WireKey == "":
			return nil, fmt.Errorf("%w for field %q", ErrEmptyWireKey, f.Name)
		case f.Kind < KindInt || f.Kind > KindBool:
			return nil, fmt.Errorf("%w for field %q: %d", ErrInvalidKind, f.Name, f.Kind)
		}
		if prev, ok := s.byName[f.Name]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateFieldName, f.Name, prev, i)
		}
		if prev, ok := s.byKey[f.WireKey]; ok {
			return nil, fmt.Errorf("%w: %q used by %q and %q",
				ErrDuplicateWireKey, f.WireKey, s.fields[prev].Name, f.Name)
		}
		s.byName[f.Name] = i
		s.byKey[f.WireKey] = i
	}

	return s, nil
}

// MustSchema is like [NewSchema] but panics on invalid declarations.
// Use it for package-level schema variables.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(fmt.Sprintf("record.MustSchema: %v", err))
	}

	return s
}

// Len returns the number of typed fields.
func (s *Schema) Len() int {
	return len(s.or().fields)
}

// Fields returns a copy of the field declarations in declaration order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.or().fields)
}

// Index returns the declaration position of the named field.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.or().byName[name]
	return i, ok
}

// WireKey returns the wire key of the named field.
func (s *Schema) WireKey(name string) (string, bool) {
	s = s.or()
	i, ok := s.byName[name]
	if !ok {
		return "", false
	}

	return s.fields[i].WireKey, true
}

// FieldName returns the internal name mapped to a wire key.
// An unmapped key is a normal outcome, reported as ok == false.
func (s *Schema) FieldName(wireKey string) (string, bool) {
	s = s.or()
	i, ok := s.byKey[wireKey]
	if !ok {
		return "", false
	}

	return s.fields[i].Name, true
}

// IsMapped reports whether wireKey belongs to a typed field.
func (s *Schema) IsMapped(wireKey string) bool {
	_, ok := s.or().byKey[wireKey]
	return ok
}

// lookupKey returns the field position for a wire key.
func (s *Schema) lookupKey(wireKey string) (int, bool) {
	i, ok := s.or().byKey[wireKey]
	return i, ok
}

// or substitutes the empty schema for a nil receiver.
func (s *Schema) or() *Schema {
	if s == nil {
		return emptySchema
	}

	return s
}
