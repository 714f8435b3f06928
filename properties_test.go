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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValues returns a present value of each kind for a field.
func sampleValues(k Kind) []Value {
	switch k {
	case KindInt:
		return []Value{Int(0), Int(5), Int(-1), Int(1 << 40)}
	case KindString:
		return []Value{String(""), String("Great"), String("ünïcødé \"q\"")}
	case KindBool:
		return []Value{Bool(true), Bool(false)}
	default:
		return nil
	}
}

// TestProperty_TypedRoundTrip checks every presence combination of the
// typed fields survives encode then decode.
func TestProperty_TypedRoundTrip(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	fields := s.Fields()

	for mask := range 1 << len(fields) {
		r := New(s)
		for i, f := range fields {
			if mask&(1<<i) == 0 {
				continue
			}
			samples := sampleValues(f.Kind)
			var err error
			r, err = r.WithField(f.Name, samples[mask%len(samples)])
			require.NoError(t, err)
		}

		body, err := Marshal(r, JSON)
		require.NoError(t, err)
		back, err := Unmarshal(s, body, JSON)
		require.NoError(t, err)

		for _, f := range fields {
			want, wantOK := r.Field(f.Name)
			got, gotOK := back.Field(f.Name)
			require.Equal(t, wantOK, gotOK, "mask %b field %s", mask, f.Name)
			require.Equal(t, want, got, "mask %b field %s", mask, f.Name)
		}
	}
}

func TestProperty_DynamicStringRoundTrip(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	values := []string{"", "x", "42", "true", "null", "http://x/1.jpg", "line\nbreak", "tab\t\"quote\"", "日本語", "<b>&amp;</b>"}
	keys := []string{"photourl_1", "contextdatavalue_42", "Rating", "title ", "k.with.dots", "ключ"}

	for _, key := range keys {
		for _, value := range values {
			t.Run(fmt.Sprintf("%s=%q", key, value), func(t *testing.T) {
				t.Parallel()

				r := New(s).With(key, value)
				body, err := Marshal(r, JSON)
				require.NoError(t, err)
				back, err := Unmarshal(s, body, JSON)
				require.NoError(t, err)

				got, ok := back.Get(key)
				require.True(t, ok)
				assert.Equal(t, value, got)
			})
		}
	}
}

func TestProperty_CoercionDeterminism(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)

	set := New(s).With("n", "42").With("b", "true")
	fromSet, err := Unmarshal(s, mustMarshal(t, set), JSON)
	require.NoError(t, err)

	fromWire, err := Unmarshal(s, []byte(`{"n":42,"b":true}`), JSON)
	require.NoError(t, err)

	for _, r := range []Record{fromSet, fromWire} {
		n, _ := r.Get("n")
		assert.Equal(t, "42", n)
		b, _ := r.Get("b")
		assert.Equal(t, "true", b)
	}
	assert.True(t, fromSet.Equal(fromWire))
}

func TestProperty_TypedPrecedence(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	for _, body := range []string{`{"rating":3}`, `{"rating":"3"}`, `{"rating":3.5}`, `{"rating":null}`, `{"rating":{"x":1}}`} {
		r, err := Unmarshal(s, []byte(body), JSON)
		require.NoError(t, err, body)

		assert.False(t, r.Has("rating"), body)
		assert.NotContains(t, r.Map(), "rating", body)
		assert.Empty(t, r.All(), body)
	}
}

func TestProperty_SparseEncode(t *testing.T) {
	t.Parallel()

	body, err := Marshal(New(submissionSchema(t)), JSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}

func TestProperty_UnsupportedTypeDrop(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	base := `{"rating":5,"title":"Great","photourl_1":"http://x/1.jpg"}`
	with := `{"rating":5,"foo":{"nested":[1,2]},"title":"Great","photourl_1":"http://x/1.jpg"}`

	want, err := Unmarshal(s, []byte(base), JSON)
	require.NoError(t, err)
	got, err := Unmarshal(s, []byte(with), JSON)
	require.NoError(t, err)

	_, ok := got.Get("foo")
	assert.False(t, ok)
	assert.True(t, want.Equal(got), "no other field is affected")
}

func TestProperty_Scenario(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	r := TestRecord(t, s,
		map[string]Value{"rating": Int(5), "title": String("Great")},
		Entry{Key: "photourl_1", Value: "http://x/1.jpg"},
	)

	body, err := Marshal(r, JSON)
	require.NoError(t, err)
	assert.Equal(t, `{"rating":5,"title":"Great","photourl_1":"http://x/1.jpg"}`, string(body))

	back, err := Unmarshal(s, body, JSON)
	require.NoError(t, err)
	assert.True(t, r.Equal(back), "got %s", back)
	assert.Equal(t, r.All(), back.All())
}

func mustMarshal(t *testing.T, r Record) []byte {
	t.Helper()

	body, err := Marshal(r, JSON)
	require.NoError(t, err)

	return body
}
