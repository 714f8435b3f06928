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

// Format identifies a wire format.
type Format int

const (
	// FormatUnknown is an unspecified format.
	FormatUnknown Format = iota

	// FormatJSON represents JSON objects.
	FormatJSON

	// FormatYAML represents YAML mappings.
	FormatYAML

	// FormatTOML represents top-level TOML key/value pairs.
	FormatTOML

	// FormatMsgPack represents MessagePack maps.
	FormatMsgPack

	// FormatCBOR represents CBOR maps.
	FormatCBOR

	// FormatProto represents google.protobuf.Struct messages.
	FormatProto
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatMsgPack:
		return "msgpack"
	case FormatCBOR:
		return "cbor"
	case FormatProto:
		return "proto"
	default:
		return "unknown"
	}
}

// Codec serializes flat wire objects. It only has to understand a single
// level of string keys and scalar values; mapping keys to typed fields is
// the record package's job.
//
// Implementations must be safe for concurrent use.
//
// The root package provides [JSON]. Other formats live in sub-packages:
//
//   - rivaas.dev/record/yaml: YAML (gopkg.in/yaml.v3)
//   - rivaas.dev/record/toml: TOML (github.com/BurntSushi/toml)
//   - rivaas.dev/record/msgpack: MessagePack (github.com/vmihailenco/msgpack/v5)
//   - rivaas.dev/record/cbor: CBOR (github.com/fxamacker/cbor/v2)
//   - rivaas.dev/record/proto: google.protobuf.Struct (google.golang.org/protobuf)
type Codec interface {
	// Format identifies the wire format.
	Format() Format

	// Marshal serializes obj. Values are int64, string or bool.
	Marshal(obj *Object) ([]byte, error)

	// Unmarshal parses a flat object. Any value may come back; values
	// that are not a string, integer or boolean are unsupported scalars,
	// not errors. Input that is not a key/value object at all is an error.
	Unmarshal(data []byte) (*Object, error)
}
