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

// Package msgpack provides MessagePack support for the record package.
//
// This package extends rivaas.dev/record with a MessagePack codec, using
// github.com/vmihailenco/msgpack/v5. A record is a single map with string
// keys; entries are written and read in order.
//
// Example:
//
//	body, err := msgpack.Marshal(rec)
//	rec, err := msgpack.Unmarshal(schema, body)
package msgpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"rivaas.dev/record"
)

// Option configures the MessagePack codec.
type Option func(*config)

// config holds MessagePack-specific codec configuration.
type config struct {
	compactInts bool
}

// WithCompactInts writes integers in the smallest encoding that holds them
// instead of always using 64 bits. Decoding accepts both forms.
func WithCompactInts() Option {
	return func(c *config) {
		c.compactInts = true
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Codec is a [record.Codec] for MessagePack maps.
type Codec struct {
	cfg *config
}

// New creates a MessagePack codec.
//
// Example:
//
//	coder := record.MustNewCoder(schema, msgpack.New(msgpack.WithCompactInts()))
func New(opts ...Option) *Codec {
	return &Codec{cfg: applyOptions(opts)}
}

// defaultCodec backs the package-level helpers.
var defaultCodec = New()

// Format implements record.Codec.
func (c *Codec) Format() record.Format { return record.FormatMsgPack }

// Marshal implements record.Codec.
func (c *Codec) Marshal(obj *record.Object) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(c.cfg.compactInts)

	if err := enc.EncodeMapLen(obj.Len()); err != nil {
		return nil, err
	}

	var err error
	obj.Range(func(key string, value any) bool {
		if err = enc.EncodeString(key); err != nil {
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

	return buf.Bytes(), nil
}

// Unmarshal implements record.Codec.
//
// The top-level value must be a map with string keys. A nil map decodes to
// an empty object. Integers surface as the Go integer type the encoding
// carries (int8 through uint64).
func (c *Codec) Unmarshal(data []byte) (*record.Object, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))

	code, err := dec.PeekCode()
	if err != nil {
		return nil, &record.DecodeError{Format: record.FormatMsgPack, Err: err}
	}
	if !isMap(code) {
		return nil, &record.DecodeError{
			Format: record.FormatMsgPack,
			Err:    fmt.Errorf("%w: got code 0x%02x", record.ErrNotObject, code),
		}
	}

	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, &record.DecodeError{Format: record.FormatMsgPack, Err: err}
	}

	obj := record.NewObject()
	for i := range max(n, 0) {
		key, err := dec.DecodeString()
		if err != nil {
			return nil, &record.DecodeError{
				Format: record.FormatMsgPack,
				Err:    fmt.Errorf("entry %d key: %w", i, err),
			}
		}
		value, err := dec.DecodeInterface()
		if err != nil {
			return nil, &record.DecodeError{
				Format: record.FormatMsgPack,
				Err:    fmt.Errorf("key %q: %w", key, err),
			}
		}
		obj.Set(key, value)
	}
	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return nil, &record.DecodeError{Format: record.FormatMsgPack, Err: record.ErrTrailingData}
	}

	return obj, nil
}

// isMap reports whether code starts a map or a nil (empty) map.
func isMap(code byte) bool {
	return msgpcode.IsFixedMap(code) ||
		code == msgpcode.Map16 ||
		code == msgpcode.Map32 ||
		code == msgpcode.Nil
}

// Marshal encodes a record as a MessagePack map.
//
// Example:
//
//	body, err := msgpack.Marshal(rec)
func Marshal(r record.Record, opts ...record.Option) ([]byte, error) {
	return record.Marshal(r, defaultCodec, opts...)
}

// Unmarshal decodes a MessagePack map into a record for schema.
//
// Example:
//
//	rec, err := msgpack.Unmarshal(schema, body)
func Unmarshal(schema *record.Schema, data []byte, opts ...record.Option) (record.Record, error) {
	return record.Unmarshal(schema, data, defaultCodec, opts...)
}
