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
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a flat wire object: an insertion-ordered mapping from wire key
// to an untyped scalar. It is what a [Codec] produces and consumes.
//
// Values are whatever the codec surfaced. Encode only ever writes int64,
// string and bool; decoders may hand back any Go value, and values that are
// not a string, integer or boolean (floats, nil, maps, slices) are
// unsupported scalars.
//
// Unlike [Record], Object is mutable scratch space and is not safe for
// concurrent mutation.
type Object struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{m: orderedmap.New[string, any]()}
}

// Set stores a value. Re-setting an existing key replaces its value and
// keeps its original position.
func (o *Object) Set(key string, value any) {
	if o.m == nil {
		o.m = orderedmap.New[string, any]()
	}
	o.m.Set(key, value)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.m == nil {
		return nil, false
	}

	return o.m.Get(key)
}

// Delete removes a key.
func (o *Object) Delete(key string) {
	if o == nil || o.m == nil {
		return
	}
	o.m.Delete(key)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}

	return o.m.Len()
}

// Keys returns the keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Range(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// Range calls fn for each key in order until fn returns false.
func (o *Object) Range(fn func(key string, value any) bool) {
	if o == nil || o.m == nil {
		return
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// MarshalJSON encodes the object as a JSON object in key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil || o.m == nil {
		return []byte("{}"), nil
	}

	return o.m.MarshalJSON()
}
