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

// Package yaml provides YAML support for the record package.
//
// This package extends rivaas.dev/record with a YAML codec, using
// gopkg.in/yaml.v3 for parsing. Records are written as a single top-level
// mapping; key order is preserved in both directions.
//
// Example:
//
//	body, err := yaml.Marshal(rec)
//	// rating: 5
//	// title: Great
//	// photourl_1: http://x/1.jpg
//
//	rec, err := yaml.Unmarshal(schema, body)
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"rivaas.dev/record"
)

// Option configures the YAML codec.
type Option func(*config)

// config holds YAML-specific codec configuration.
type config struct {
	indent int
}

// WithIndent sets the number of spaces used for indentation when encoding.
// The default is 2. Values below 1 are ignored.
func WithIndent(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.indent = n
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{indent: 2}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Codec is a [record.Codec] for YAML mappings.
//
// Scalars tagged !!str, !!int and !!bool surface as string, int64 and bool.
// Other scalars (floats, timestamps, null) and nested collections surface
// as whatever yaml.v3 decodes them to, which record treats as unsupported.
type Codec struct {
	cfg *config
}

// New creates a YAML codec.
//
// Example:
//
//	coder := record.MustNewCoder(schema, yaml.New(yaml.WithIndent(4)))
func New(opts ...Option) *Codec {
	return &Codec{cfg: applyOptions(opts)}
}

// defaultCodec backs the package-level helpers.
var defaultCodec = New()

// Format implements record.Codec.
func (c *Codec) Format() record.Format { return record.FormatYAML }

// Marshal implements record.Codec.
func (c *Codec) Marshal(obj *record.Object) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	var err error
	obj.Range(func(key string, value any) bool {
		var val *yaml.Node
		val, err = scalarNode(value)
		if err != nil {
			err = fmt.Errorf("key %q: %w", key, err)
			return false
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			val,
		)
		return true
	})
	if err != nil {
		return nil, err
	}

	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.cfg.indent)
	if err = enc.Encode(root); err != nil {
		return nil, err
	}
	if err = enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// scalarNode builds the node for one value. The explicit !!str tag makes
// the encoder quote strings such as "true" or "42" that would otherwise
// read back as another type.
func scalarNode(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(value); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// Unmarshal implements record.Codec.
//
// An empty document decodes to an empty object. Any other top-level node
// that is not a mapping fails with [record.ErrNotObject].
func (c *Codec) Unmarshal(data []byte) (*record.Object, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	obj := record.NewObject()
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return obj, nil
		}
		return nil, &record.DecodeError{Format: record.FormatYAML, Err: err}
	}
	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("%w: more than one document", record.ErrTrailingData)
		}
		return nil, &record.DecodeError{Format: record.FormatYAML, Err: err}
	}
	if doc.Kind == 0 {
		return obj, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	root = deref(root)
	if root.Kind != yaml.MappingNode {
		return nil, &record.DecodeError{Format: record.FormatYAML, Err: record.ErrNotObject}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := deref(root.Content[i]), deref(root.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &record.DecodeError{
				Format: record.FormatYAML,
				Err:    fmt.Errorf("%w: non-scalar key at line %d", record.ErrNotObject, keyNode.Line),
			}
		}
		value, err := nodeValue(valNode)
		if err != nil {
			return nil, &record.DecodeError{
				Format: record.FormatYAML,
				Err:    fmt.Errorf("key %q: %w", keyNode.Value, err),
			}
		}
		obj.Set(keyNode.Value, value)
	}

	return obj, nil
}

// nodeValue converts one value node into a Go value.
func nodeValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.ScalarNode {
		switch n.ShortTag() {
		case "!!str":
			return n.Value, nil
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		case "!!int":
			var i int64
			if err := n.Decode(&i); err == nil {
				return i, nil
			}
			// out of int64 range, surfaces as uint64 or float64
		}
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// deref follows alias nodes to their anchor.
func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

// Marshal encodes a record as a YAML mapping.
//
// Example:
//
//	body, err := yaml.Marshal(rec, record.WithCollisionPolicy(record.CollisionError))
func Marshal(r record.Record, opts ...record.Option) ([]byte, error) {
	return record.Marshal(r, defaultCodec, opts...)
}

// Unmarshal decodes a YAML mapping into a record for schema.
//
// Example:
//
//	rec, err := yaml.Unmarshal(schema, body, record.WithStrict())
func Unmarshal(schema *record.Schema, data []byte, opts ...record.Option) (record.Record, error) {
	return record.Unmarshal(schema, data, defaultCodec, opts...)
}
