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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// JSON is the JSON object codec.
//
// Key order is preserved in both directions. A JSON number is an integer
// when it parses as an int64 ("5", "-12"); any other number ("4.5", "1e3",
// out-of-range integers) surfaces as float64. Nested objects and arrays
// surface as map[string]any and []any.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

// Format implements Codec.
func (jsonCodec) Format() Format { return FormatJSON }

// Marshal implements Codec.
func (jsonCodec) Marshal(obj *Object) ([]byte, error) {
	return obj.MarshalJSON()
}

// Unmarshal implements Codec.
func (jsonCodec) Unmarshal(data []byte) (*Object, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &DecodeError{Format: FormatJSON, Err: ErrNotObject}
	}
	// ObjectEach stops at the first closing brace and is lenient inside it
	if !json.Valid(data) {
		return nil, &DecodeError{Format: FormatJSON, Err: ErrMalformed}
	}

	obj := NewObject()
	err := jsonparser.ObjectEach(trimmed, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		// keys arrive unescaped
		v, err := jsonScalar(value, dataType)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		obj.Set(string(key), v)
		return nil
	})
	if err != nil {
		return nil, &DecodeError{Format: FormatJSON, Err: err}
	}

	return obj, nil
}

// jsonScalar converts one raw JSON value into a Go value.
func jsonScalar(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.String:
		return jsonparser.ParseString(value)

	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(value); err == nil {
			return i, nil
		}
		return jsonparser.ParseFloat(value)

	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)

	case jsonparser.Null:
		return nil, nil

	case jsonparser.Object, jsonparser.Array:
		var nested any
		if err := json.Unmarshal(value, &nested); err != nil {
			return nil, err
		}
		return nested, nil

	default:
		return nil, fmt.Errorf("unexpected JSON value %q", value)
	}
}
