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

package msgpack_test

import (
	"fmt"

	"rivaas.dev/record"
	"rivaas.dev/record/msgpack"
)

// ExampleMarshal demonstrates a MessagePack round trip.
func ExampleMarshal() {
	schema := record.MustSchema(
		record.Field{Name: "rating", WireKey: "rating", Kind: record.KindInt},
	)
	rec, _ := record.New(schema).WithField("rating", record.Int(5))
	rec = rec.With("photourl_1", "http://x/1.jpg")

	body, err := msgpack.Marshal(rec)
	if err != nil {
		_, _ = fmt.Printf("Error: %v\n", err)
		return
	}

	back, err := msgpack.Unmarshal(schema, body)
	if err != nil {
		_, _ = fmt.Printf("Error: %v\n", err)
		return
	}

	_, _ = fmt.Println(back, rec.Equal(back))
	// Output: {rating: 5, photourl_1: "http://x/1.jpg"} true
}
