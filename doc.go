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

// Package record provides extensible records: values with a fixed set of
// typed fields plus an open set of dynamically named string fields, all
// carried in one flat wire object.
//
// A typed field has an internal name, a wire key and a kind (int, string or
// bool). A dynamic field is any other key, such as "photourl_1" or
// "contextdatavalue_42", and is always held as a string.
//
// # Quick Start
//
//	schema := record.MustSchema(
//	    record.Field{Name: "rating", WireKey: "rating", Kind: record.KindInt},
//	    record.Field{Name: "title", WireKey: "title", Kind: record.KindString},
//	)
//
//	rec, _ := record.New(schema).WithField("rating", record.Int(5))
//	rec = rec.With("photourl_1", "http://x/1.jpg")
//
//	body, err := record.Marshal(rec, record.JSON)
//	// {"rating":5,"photourl_1":"http://x/1.jpg"}
//
//	back, err := record.Unmarshal(schema, body, record.JSON)
//
// # Encoding
//
// Encode writes present typed fields in schema order, then dynamic fields
// in insertion order. Absent typed fields are omitted, not written as null.
// A dynamic key that equals a mapped wire key is never written; see
// [CollisionPolicy].
//
// # Decoding
//
// Decode routes every wire key exactly once:
//
//   - Mapped keys go to their typed field. A value of the wrong kind leaves
//     the field absent; decoding continues.
//   - Other keys are coerced to strings by trying, in order, string, integer
//     (decimal) and boolean ("true"/"false"). Keys holding anything else
//     (floats, null, nested objects, arrays) are dropped.
//
// Only input that is not a flat object at all fails the decode, with a
// [DecodeError].
//
// # Records Are Values
//
// Records are immutable. With, Without, WithField and WithoutField return
// new records:
//
//	a := record.New(schema).With("k", "1")
//	b := a.With("k", "2")
//	// a.Get("k") is still "1"
//
// # Wire Formats
//
// [JSON] lives in this package. Other formats are available as sub-packages:
//
//   - rivaas.dev/record/yaml: YAML (gopkg.in/yaml.v3)
//   - rivaas.dev/record/toml: TOML (github.com/BurntSushi/toml)
//   - rivaas.dev/record/msgpack: MessagePack (github.com/vmihailenco/msgpack/v5)
//   - rivaas.dev/record/cbor: CBOR (github.com/fxamacker/cbor/v2)
//   - rivaas.dev/record/proto: google.protobuf.Struct (google.golang.org/protobuf)
//
// # Diagnostics
//
// Mismatched and dropped keys are silent by default. Observe them with
// hooks, a logger, or strict mode:
//
//	rec, err := record.Unmarshal(schema, body, record.JSON,
//	    record.WithLogger(slog.Default()),
//	    record.WithEvents(record.Events{
//	        KeyDropped: func(key string, v any) { ... },
//	    }),
//	    record.WithStrict(),
//	)
//	var multi *record.MultiError
//	if errors.As(err, &multi) {
//	    // rec is still fully decoded
//	}
//
// # Reusable Coder
//
//	coder := record.MustNewCoder(schema, record.JSON, record.WithMaxKeys(200))
//	rec, err := coder.Unmarshal(body)
package record
