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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Empty(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	r := New(s)

	assert.Same(t, s, r.Schema())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.All())
	assert.Empty(t, r.Map())
	for _, f := range s.Fields() {
		_, ok := r.Field(f.Name)
		assert.False(t, ok, f.Name)
	}
}

func TestRecord_ZeroValue(t *testing.T) {
	t.Parallel()

	var r Record
	assert.NotNil(t, r.Schema())
	assert.Equal(t, 0, r.Schema().Len())

	r = r.With("k", "v")
	v, ok := r.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestRecord_WithField(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	r, err := New(s).WithField("rating", Int(5))
	require.NoError(t, err)

	v, ok := r.Field("rating")
	require.True(t, ok)
	assert.Equal(t, Int(5), v)

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := New(s).WithField("photourl_1", String("x"))
		require.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("wire key is not a field name", func(t *testing.T) {
		t.Parallel()

		_, err := New(s).WithField("agreedtotermsandconditions", Bool(true))
		require.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := New(s).WithField("rating", String("5"))
		require.ErrorIs(t, err, ErrKindMismatch)
	})

	t.Run("zero value clears", func(t *testing.T) {
		t.Parallel()

		cleared, err := r.WithField("rating", Value{})
		require.NoError(t, err)
		_, ok := cleared.Field("rating")
		assert.False(t, ok)
	})

	t.Run("without field", func(t *testing.T) {
		t.Parallel()

		cleared := r.WithoutField("rating")
		_, ok := cleared.Field("rating")
		assert.False(t, ok)
		assert.Equal(t, r, r.WithoutField("nope"))
	})
}

func TestRecord_DynamicSurface(t *testing.T) {
	t.Parallel()

	r := New(submissionSchema(t)).
		With("photourl_1", "http://x/1.jpg").
		With("contextdatavalue_42", "blue").
		With("photourl_2", "http://x/2.jpg")

	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Has("contextdatavalue_42"))
	assert.Equal(t, []Entry{
		{Key: "photourl_1", Value: "http://x/1.jpg"},
		{Key: "contextdatavalue_42", Value: "blue"},
		{Key: "photourl_2", Value: "http://x/2.jpg"},
	}, r.All())

	t.Run("replace keeps position", func(t *testing.T) {
		t.Parallel()

		r2 := r.With("photourl_1", "http://x/1b.jpg")
		assert.Equal(t, "photourl_1", r2.All()[0].Key)
		v, _ := r2.Get("photourl_1")
		assert.Equal(t, "http://x/1b.jpg", v)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		r2 := r.Without("contextdatavalue_42")
		assert.False(t, r2.Has("contextdatavalue_42"))
		assert.Equal(t, 2, r2.Len())
		assert.Equal(t, map[string]string{
			"photourl_1": "http://x/1.jpg",
			"photourl_2": "http://x/2.jpg",
		}, r2.Map())
	})

	t.Run("remove missing is a no-op", func(t *testing.T) {
		t.Parallel()

		assert.True(t, r.Equal(r.Without("nope")))
	})

	t.Run("empty string value is present", func(t *testing.T) {
		t.Parallel()

		r2 := r.With("empty", "")
		v, ok := r2.Get("empty")
		assert.True(t, ok)
		assert.Empty(t, v)
	})
}

func TestRecord_Immutable(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	a := New(s).With("k", "1")
	b := a.With("k", "2").With("other", "x")
	c := b.Without("k")
	d, err := a.WithField("title", String("Great"))
	require.NoError(t, err)

	v, _ := a.Get("k")
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, a.Len())
	_, ok := a.Field("title")
	assert.False(t, ok)

	v, _ = b.Get("k")
	assert.Equal(t, "2", v)
	assert.True(t, b.Has("k"))
	assert.False(t, c.Has("k"))

	title, _ := d.Field("title")
	assert.Equal(t, String("Great"), title)
}

func TestRecord_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	r := New(nil).With("a", "1")
	entries := r.All()
	entries[0].Value = "mutated"
	m := r.Map()
	m["a"] = "mutated"

	v, _ := r.Get("a")
	assert.Equal(t, "1", v)
}

func TestRecord_ConcurrentCopies(t *testing.T) {
	t.Parallel()

	base := New(submissionSchema(t)).With("shared", "x")

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Go(func() {
			r := base
			for j := range 100 {
				r = r.With("k", string(rune('a'+i))).Without("shared").With("n", string(rune('a'+j%26)))
				_, _ = r.WithField("rating", Int(int64(j)))
			}
		})
	}
	wg.Wait()

	v, ok := base.Get("shared")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, 1, base.Len())
}

func TestRecord_Equal(t *testing.T) {
	t.Parallel()

	s := submissionSchema(t)
	a := TestRecord(t, s, map[string]Value{"rating": Int(5)}, Entry{"a", "1"}, Entry{"b", "2"})
	b := TestRecord(t, s, map[string]Value{"rating": Int(5)}, Entry{"b", "2"}, Entry{"a", "1"})

	assert.True(t, a.Equal(b), "dynamic order is ignored")
	assert.False(t, a.Equal(a.With("a", "x")))
	assert.False(t, a.Equal(a.WithoutField("rating")))
	assert.False(t, a.Equal(New(submissionSchema(t))), "schemas compare by identity")
	assert.True(t, New(nil).Equal(Record{}))
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	r := TestRecord(t, submissionSchema(t),
		map[string]Value{"rating": Int(5), "title": String("Great")},
		Entry{Key: "photourl_1", Value: "http://x/1.jpg"})

	assert.Equal(t, `{rating: 5, title: Great, photourl_1: "http://x/1.jpg"}`, r.String())
	assert.Equal(t, "{}", New(nil).String())
}
