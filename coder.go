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
	"fmt"
)

// Coder binds a schema, a codec and options together for reuse.
//
// Use [NewCoder] or [MustNewCoder] to create a configured Coder, or use package-level
// functions ([Marshal], [Unmarshal], [Encode], [Decode]) for one-off calls.
//
// Coder is safe for concurrent use by multiple goroutines. Statistics and
// events are per call.
//
// Example:
//
//	coder := record.MustNewCoder(review.Schema(), record.JSON,
//	    record.WithLogger(logger),
//	)
//
//	rec, err := coder.Unmarshal(body)
//	out, err := coder.Marshal(rec.With("photourl_1", url))
type Coder struct {
	schema *Schema
	codec  Codec
	cfg    *config
}

// NewCoder creates a [Coder]. Returns an error if the codec is nil or an
// option is invalid.
//
// Example:
//
//	coder, err := record.NewCoder(schema, yaml.New(), record.WithStrict())
//	if err != nil {
//	    return fmt.Errorf("failed to create coder: %w", err)
//	}
func NewCoder(schema *Schema, codec Codec, opts ...Option) (*Coder, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Coder{schema: schema.or(), codec: codec, cfg: cfg}, nil
}

// MustNewCoder creates a [Coder]. Panics if configuration is invalid.
//
// Use in main() or init() where panic on startup is acceptable.
func MustNewCoder(schema *Schema, codec Codec, opts ...Option) *Coder {
	c, err := NewCoder(schema, codec, opts...)
	if err != nil {
		panic(fmt.Sprintf("record.MustNewCoder: %v", err))
	}

	return c
}

// Schema returns the coder's schema.
func (c *Coder) Schema() *Schema { return c.schema }

// Codec returns the coder's codec.
func (c *Coder) Codec() Codec { return c.codec }

// Empty returns an empty record for the coder's schema.
func (c *Coder) Empty() Record { return New(c.schema) }

// Encode merges r into a flat wire object.
func (c *Coder) Encode(r Record) (*Object, error) {
	cfg := c.cfg.clone()
	defer cfg.finish()

	return encodeRecord(r, cfg)
}

// Decode splits a flat wire object into a record for the coder's schema.
func (c *Coder) Decode(obj *Object) (Record, error) {
	cfg := c.cfg.clone()
	defer cfg.finish()

	return decodeObject(c.schema, obj, cfg)
}

// Marshal encodes r and serializes it with the coder's codec.
func (c *Coder) Marshal(r Record) ([]byte, error) {
	cfg := c.cfg.clone()
	defer cfg.finish()

	return marshalRecord(r, c.codec, cfg)
}

// Unmarshal parses data with the coder's codec and decodes it.
func (c *Coder) Unmarshal(data []byte) (Record, error) {
	cfg := c.cfg.clone()
	defer cfg.finish()

	return unmarshalRecord(c.schema, data, c.codec, cfg)
}
