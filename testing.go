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
	"testing"
)

// TestSchema builds a Schema for tests and fails the test on invalid
// declarations.
//
// Example:
//
//	schema := record.TestSchema(t,
//	    record.Field{Name: "rating", WireKey: "rating", Kind: record.KindInt},
//	)
func TestSchema(t testing.TB, fields ...Field) *Schema {
	t.Helper()

	s, err := NewSchema(fields...)
	if err != nil {
		t.Fatalf("TestSchema: %v", err)
	}

	return s
}

// TestObject builds an Object from key/value pairs, in order.
//
// Example:
//
//	obj := record.TestObject(t, "rating", int64(5), "photourl_1", "http://x/1.jpg")
func TestObject(t testing.TB, pairs ...any) *Object {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("TestObject: pairs must be key-value pairs, got odd number of arguments")
	}

	obj := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			t.Fatalf("TestObject: key at position %d is %T, want string", i, pairs[i])
		}
		obj.Set(key, pairs[i+1])
	}

	return obj
}

// TestRecord builds a record from typed values keyed by field name and
// fails the test on unknown fields or kind mismatches.
//
// Example:
//
//	rec := record.TestRecord(t, schema, map[string]record.Value{
//	    "rating": record.Int(5),
//	})
func TestRecord(t testing.TB, schema *Schema, typed map[string]Value, dynamic ...Entry) Record {
	t.Helper()

	rec := New(schema)
	for _, f := range rec.Schema().fields {
		v, ok := typed[f.Name]
		if !ok {
			continue
		}
		var err error
		rec, err = rec.WithField(f.Name, v)
		if err != nil {
			t.Fatalf("TestRecord: %v", err)
		}
	}
	for name := range typed {
		if _, ok := rec.Schema().Index(name); !ok {
			t.Fatalf("TestRecord: unknown field %q", name)
		}
	}
	for _, e := range dynamic {
		rec = rec.With(e.Key, e.Value)
	}

	return rec
}
