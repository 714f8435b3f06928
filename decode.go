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
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Decode splits a flat wire object into a record for schema.
//
// Keys mapped by the schema are decoded at their declared kind; a value of
// the wrong kind leaves the field absent and decoding continues. A null
// value leaves the field absent without counting as a mismatch. Mapped keys
// never reach the dynamic bag.
//
// Every other key is run through scalar coercion and stored as a dynamic
// string field in wire order. Keys whose value cannot be coerced (floats,
// nulls, nested objects, arrays) are dropped.
//
// Example:
//
//	rec, err := record.Decode(schema, obj)
//
// Errors:
//   - [ErrTooManyKeys]: obj has more keys than [WithMaxKeys] allows
//   - [MultiError]: only with [WithStrict]; the record is still returned
func Decode(schema *Schema, obj *Object, opts ...Option) (Record, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return New(schema), err
	}
	defer cfg.finish()

	return decodeObject(schema, obj, cfg)
}

// Unmarshal parses data with codec and decodes the result for schema.
//
// Example:
//
//	rec, err := record.Unmarshal(schema, body, record.JSON)
//
// Errors:
//   - [DecodeError]: data is not a well-formed flat object
//   - [ErrTooManyKeys]: the object has more keys than [WithMaxKeys] allows
//   - [MultiError]: only with [WithStrict]; the record is still returned
func Unmarshal(schema *Schema, data []byte, codec Codec, opts ...Option) (Record, error) {
	if codec == nil {
		return New(schema), ErrNilCodec
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return New(schema), err
	}
	defer cfg.finish()

	return unmarshalRecord(schema, data, codec, cfg)
}

// unmarshalRecord is the shared implementation of Unmarshal.
func unmarshalRecord(schema *Schema, data []byte, codec Codec, cfg *config) (Record, error) {
	obj, err := codec.Unmarshal(data)
	if err != nil {
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			return New(schema), err
		}

		return New(schema), &DecodeError{Format: codec.Format(), Err: err}
	}

	return decodeObject(schema, obj, cfg)
}

// decodeObject routes every key of obj exactly once.
func decodeObject(schema *Schema, obj *Object, cfg *config) (Record, error) {
	rec := New(schema)
	s := rec.Schema()

	if cfg.maxKeys > 0 && obj.Len() > cfg.maxKeys {
		return rec, fmt.Errorf("%w: %d > %d (use WithMaxKeys to increase)",
			ErrTooManyKeys, obj.Len(), cfg.maxKeys)
	}

	typed := make([]Value, s.Len())
	var bag *orderedmap.OrderedMap[string, string]
	var multi MultiError

	obj.Range(func(key string, raw any) bool {
		cfg.stats.KeysProcessed++

		if i, mapped := s.lookupKey(key); mapped {
			f := s.fields[i]
			if raw == nil {
				return true
			}
			v, ok := valueOf(f.Kind, raw)
			if !ok {
				cfg.mismatch(f, raw, &multi)
				return true
			}
			typed[i] = v
			cfg.decoded(f)
			return true
		}

		str, ok := coerceWith(cfg.coercers, raw)
		if !ok {
			cfg.drop(key, raw, &multi)
			return true
		}
		if bag == nil {
			bag = orderedmap.New[string, string]()
		}
		bag.Set(key, str)
		cfg.stats.DynamicDecoded++
		return true
	})

	rec = rec.withTyped(typed)
	rec.dynamic = bag

	return rec, multi.ErrorOrNil()
}
