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

//go:build !integration

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestSchema(t *testing.T) {
	t.Parallel()

	s := TestSchema(t, Field{Name: "a", WireKey: "x", Kind: KindString})
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.IsMapped("x"))
}

func TestTestObject(t *testing.T) {
	t.Parallel()

	obj := TestObject(t, "a", "1", "b", int64(2))
	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	v, _ := obj.Get("b")
	assert.Equal(t, int64(2), v)
}

func TestTestRecord(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	r := TestRecord(t, s,
		map[string]Value{"rating": Int(3), "agreedToTerms": Bool(true)},
		Entry{Key: "photourl_1", Value: "x"},
	)

	v, ok := r.Field("rating")
	assert.True(t, ok)
	assert.Equal(t, Int(3), v)
	v, ok = r.Field("agreedToTerms")
	assert.True(t, ok)
	assert.Equal(t, Bool(true), v)
	assert.Equal(t, []Entry{{Key: "photourl_1", Value: "x"}}, r.All())
}
