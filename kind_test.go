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
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
	}{
		{"int", KindInt},
		{"integer", KindInt},
		{"INT", KindInt},
		{" string ", KindString},
		{"bool", KindBool},
		{"Boolean", KindBool},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("float")
	require.ErrorIs(t, err, ErrInvalidKind)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		v := Int(5)
		assert.True(t, v.IsSet())
		assert.Equal(t, KindInt, v.Kind())
		i, ok := v.AsInt()
		assert.True(t, ok)
		assert.Equal(t, int64(5), i)
		_, ok = v.AsString()
		assert.False(t, ok)
		assert.Equal(t, int64(5), v.Any())
		assert.Equal(t, "5", v.String())
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		v := String("Great")
		s, ok := v.AsString()
		assert.True(t, ok)
		assert.Equal(t, "Great", s)
		_, ok = v.AsBool()
		assert.False(t, ok)
		assert.Equal(t, "Great", v.Any())
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()

		v := Bool(false)
		assert.True(t, v.IsSet(), "false is present, not absent")
		b, ok := v.AsBool()
		assert.True(t, ok)
		assert.False(t, b)
		assert.Equal(t, "false", v.String())
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		var v Value
		assert.False(t, v.IsSet())
		assert.Equal(t, KindInvalid, v.Kind())
		assert.Nil(t, v.Any())
		assert.Equal(t, "<absent>", v.String())
	})
}

func TestValueOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind Kind
		raw  any
		want Value
		ok   bool
	}{
		{"int from int64", KindInt, int64(5), Int(5), true},
		{"int from uint8", KindInt, uint8(7), Int(7), true},
		{"int from int", KindInt, 9, Int(9), true},
		{"int rejects string", KindInt, "5", Value{}, false},
		{"int rejects float", KindInt, 5.0, Value{}, false},
		{"int rejects bool", KindInt, true, Value{}, false},
		{"string from string", KindString, "x", String("x"), true},
		{"string rejects int", KindString, int64(1), Value{}, false},
		{"bool from bool", KindBool, true, Bool(true), true},
		{"bool rejects int", KindBool, int64(1), Value{}, false},
		{"bool rejects string", KindBool, "true", Value{}, false},
		{"invalid kind", KindInvalid, "x", Value{}, false},
		{"nil", KindString, nil, Value{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := valueOf(tt.kind, tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
