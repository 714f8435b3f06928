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

// Package cbor provides CBOR (RFC 8949) support for the record package.
//
// This package extends rivaas.dev/record with a CBOR codec, using
// github.com/fxamacker/cbor/v2. By default a record is written as an
// indefinite-length map so entries keep record order. [WithDeterministic]
// switches to Core Deterministic Encoding (sorted keys, definite lengths)
// for byte-stable output.
//
// Example:
//
//	body, err := cbor.Marshal(rec)
//	rec, err := cbor.Unmarshal(schema, body)
package cbor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"rivaas.dev/record"
)

// CBOR initial bytes used when walking the top-level map.
const (
	majorMap      = 5
	infoIndefLen  = 31
	breakByte     = 0xff
	nullByte      = 0xf6
	maxDirectInfo = 23
)

// orderedMode writes one item at a time; indefinite-length maps are allowed.
var orderedMode cbor.EncMode

// deterministicMode is Core Deterministic Encoding (RFC 8949 §4.2).
var deterministicMode cbor.EncMode

// decMode decodes values; maps nested inside values decode as map[any]any
// so non-text keys reach coercion and are dropped there.
var decMode cbor.DecMode

func init() {
	var err error
	orderedMode, err = cbor.EncOptions{
		IndefLength: cbor.IndefLengthAllowed,
	}.EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	deterministicMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: deterministic encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[any]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

// Option configures the CBOR codec.
type Option func(*config)

// config holds CBOR-specific codec configuration.
type config struct {
	deterministic bool
}

// WithDeterministic encodes with Core Deterministic Encoding: map keys are
// sorted and lengths are definite, so equal records always produce
// identical bytes. Record order is not kept on the wire.
func WithDeterministic() Option {
	return func(c *config) {
		c.deterministic = true
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Codec is a [record.Codec] for CBOR maps with text-string keys.
type Codec struct {
	cfg *config
}

// New creates a CBOR codec.
//
// Example:
//
//	coder := record.MustNewCoder(schema, cbor.New(cbor.WithDeterministic()))
func New(opts ...Option) *Codec {
	return &Codec{cfg: applyOptions(opts)}
}

// defaultCodec backs the package-level helpers.
var defaultCodec = New()

// Format implements record.Codec.
func (c *Codec) Format() record.Format { return record.FormatCBOR }

// Marshal implements record.Codec.
func (c *Codec) Marshal(obj *record.Object) ([]byte, error) {
	if c.cfg.deterministic {
		m := make(map[string]any, obj.Len())
		obj.Range(func(key string, value any) bool {
			m[key] = value
			return true
		})
		return deterministicMode.Marshal(m)
	}

	var buf bytes.Buffer
	enc := orderedMode.NewEncoder(&buf)
	if err := enc.StartIndefiniteMap(); err != nil {
		return nil, err
	}

	var err error
	obj.Range(func(key string, value any) bool {
		if err = enc.Encode(key); err != nil {
			return false
		}
		if err = enc.Encode(value); err != nil {
			err = fmt.Errorf("key %q: %w", key, err)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if err := enc.EndIndefinite(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal implements record.Codec.
//
// The top-level item must be a map (definite or indefinite length) with
// text-string keys; null decodes to an empty object. Entries keep wire
// order. Non-negative integers surface as uint64, negative ones as int64.
func (c *Codec) Unmarshal(data []byte) (*record.Object, error) {
	obj, err := decodeMap(data)
	if err != nil {
		return nil, &record.DecodeError{Format: record.FormatCBOR, Err: err}
	}

	return obj, nil
}

// decodeMap walks the top-level map head and decodes each key and value
// with the library decoder.
func decodeMap(data []byte) (*record.Object, error) {
	obj := record.NewObject()
	if len(data) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if data[0] == nullByte {
		if len(data) > 1 {
			return nil, fmt.Errorf("%w: %d bytes", record.ErrTrailingData, len(data)-1)
		}
		return obj, nil
	}

	n, indefinite, rest, err := mapHead(data)
	if err != nil {
		return nil, err
	}

	for i := 0; indefinite || i < n; i++ {
		if indefinite {
			if len(rest) == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			if rest[0] == breakByte {
				rest = rest[1:]
				break
			}
		}

		var key string
		if rest, err = decMode.UnmarshalFirst(rest, &key); err != nil {
			return nil, fmt.Errorf("entry %d key: %w", i, err)
		}
		var value any
		if rest, err = decodeValue(rest, &value); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		obj.Set(key, value)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %d bytes", record.ErrTrailingData, len(rest))
	}

	return obj, nil
}

// decodeValue decodes the first data item of data. A well-formed item Go
// cannot represent (a map keyed by arrays, for one) is kept as
// cbor.RawMessage, which no coercer accepts.
func decodeValue(data []byte, v *any) ([]byte, error) {
	var raw cbor.RawMessage
	rest, err := decMode.UnmarshalFirst(data, &raw)
	if err != nil {
		return nil, err
	}
	if err := decMode.Unmarshal(raw, v); err != nil {
		*v = raw
	}

	return rest, nil
}

// mapHead parses the initial byte and length of a CBOR map.
func mapHead(data []byte) (n int, indefinite bool, rest []byte, err error) {
	major, info := data[0]>>5, data[0]&0x1f
	if major != majorMap {
		return 0, false, nil, fmt.Errorf("%w: major type %d", record.ErrNotObject, major)
	}
	rest = data[1:]

	switch {
	case info <= maxDirectInfo:
		return int(info), false, rest, nil
	case info == infoIndefLen:
		return 0, true, rest, nil
	case info <= 27:
		size := 1 << (info - 24)
		if len(rest) < size {
			return 0, false, nil, io.ErrUnexpectedEOF
		}
		var length uint64
		for _, b := range rest[:size] {
			length = length<<8 | uint64(b)
		}
		if length > math.MaxInt32 {
			return 0, false, nil, errors.New("map length too large")
		}
		return int(length), false, rest[size:], nil
	default:
		return 0, false, nil, fmt.Errorf("malformed map head 0x%02x", data[0])
	}
}

// Marshal encodes a record as a CBOR map.
//
// Example:
//
//	body, err := cbor.Marshal(rec)
func Marshal(r record.Record, opts ...record.Option) ([]byte, error) {
	return record.Marshal(r, defaultCodec, opts...)
}

// Unmarshal decodes a CBOR map into a record for schema.
//
// Example:
//
//	rec, err := cbor.Unmarshal(schema, body)
func Unmarshal(schema *record.Schema, data []byte, opts ...record.Option) (record.Record, error) {
	return record.Unmarshal(schema, data, defaultCodec, opts...)
}
