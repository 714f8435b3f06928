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

package yaml

import (
	"testing"
)

// BenchmarkYAML benchmarks YAML encode and decode of a small record.
func BenchmarkYAML(b *testing.B) {
	body := []byte("rating: 5\ntitle: Great\nagreedtotermsandconditions: true\nphotourl_1: http://x/1.jpg\nphotourl_2: http://x/2.jpg\n")

	b.Run("Unmarshal", func(b *testing.B) {
		b.ReportAllocs()

		for b.Loop() {
			if _, err := Unmarshal(testSchema, body); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Marshal", func(b *testing.B) {
		rec, err := Unmarshal(testSchema, body)
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		b.ReportAllocs()

		for b.Loop() {
			if _, err := Marshal(rec); err != nil {
				b.Fatal(err)
			}
		}
	})
}
