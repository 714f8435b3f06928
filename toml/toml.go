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

// Package toml provides TOML support for the record package.
//
// This package extends rivaas.dev/record with a TOML codec, using
// github.com/BurntSushi/toml for parsing. A record is the document's
// top-level key/value pairs; tables, arrays, floats and datetimes are
// unsupported values and are dropped on decode.
//
// Example:
//
//	body, err := toml.Marshal(rec)
//	// rating = 5
//	// title = "Great"
//	// photourl_1 = "http://x/1.jpg"
//
//	rec, err := toml.Unmarshal(schema, body)
package toml

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"rivaas.dev/record"
)

// Option configures the TOML codec.
type Option func(*config)

// config holds TOML-specific codec configuration.
type config struct {
	indent string
}

// WithIndent sets the indentation the encoder uses for nested values.
// Records are flat, so this only matters for unsupported nested values
// that were placed on an Object by hand.
func WithIndent(indent string) Option {
	return func(c *config) {
		c.indent = indent
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Codec is a [record.Codec] for top-level TOML key/value pairs.
type Codec struct {
	cfg *config
}

// New creates a TOML codec.
func New(opts ...Option) *Codec {
	return &Codec{cfg: applyOptions(opts)}
}

// defaultCodec backs the package-level helpers.
var defaultCodec = New()

// Format implements record.Codec.
func (c *Codec) Format() record.Format { return record.FormatTOML }

// Marshal implements record.Codec.
//
// Entries are encoded one at a time so the output follows object order.
// Table values are rejected: once a table header is written, every later
// key would belong to it.
func (c *Codec) Marshal(obj *record.Object) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = c.cfg.indent

	var err error
	obj.Range(func(key string, value any) bool {
		if _, ok := value.(map[string]any); ok {
			err = fmt.Errorf("key %q: %w: table values cannot be written in order", key, record.ErrUnsupportedValue)
			return false
		}
		if err = enc.Encode(map[string]any{key: value}); err != nil {
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
// Keys come back in document order. TOML integers are int64.
func (c *Codec) Unmarshal(data []byte) (*record.Object, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, &record.DecodeError{Format: record.FormatTOML, Err: err}
	}

	obj := record.NewObject()
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		obj.Set(key[0], doc[key[0]])
	}

	return obj, nil
}

// Marshal encodes a record as TOML key/value pairs.
//
// Example:
//
//	body, err := toml.Marshal(rec)
func Marshal(r record.Record, opts ...record.Option) ([]byte, error) {
	return record.Marshal(r, defaultCodec, opts...)
}

// Unmarshal decodes TOML key/value pairs into a record for schema.
//
// Example:
//
//	rec, err := toml.Unmarshal(schema, body)
func Unmarshal(schema *record.Schema, data []byte, opts ...record.Option) (record.Record, error) {
	return record.Unmarshal(schema, data, defaultCodec, opts...)
}
