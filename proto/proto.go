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

// Package proto provides Protocol Buffers support for the record package.
//
// This package extends rivaas.dev/record with a codec for the well-known
// google.protobuf.Struct message, using google.golang.org/protobuf. It
// also converts records to and from *structpb.Struct so they can be
// embedded in other messages.
//
// Struct numbers are doubles. On decode an integral number within int64
// range is an integer; others are floats and are dropped from dynamic
// fields. Integers beyond 2^53 do not survive the trip exactly.
//
// Struct fields are a map, so wire order is not kept: encoding is
// deterministic and decoding yields keys in sorted order.
//
// Example:
//
//	body, err := proto.Marshal(rec)
//	rec, err := proto.Unmarshal(schema, body)
package proto

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"rivaas.dev/record"
)

// Option configures the Protocol Buffers codec.
type Option func(*config)

// config holds Proto-specific codec configuration.
type config struct {
	discardUnknown bool
	recursionLimit int
}

// WithDiscardUnknown ignores unknown fields when unmarshaling.
func WithDiscardUnknown() Option {
	return func(c *config) {
		c.discardUnknown = true
	}
}

// WithRecursionLimit sets the maximum nesting depth accepted when
// unmarshaling. The default limit is 10000.
func WithRecursionLimit(limit int) Option {
	return func(c *config) {
		c.recursionLimit = limit
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		recursionLimit: 10000, // default
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *config) toUnmarshalOptions() proto.UnmarshalOptions {
	return proto.UnmarshalOptions{
		DiscardUnknown: c.discardUnknown,
		RecursionLimit: c.recursionLimit,
	}
}

// Codec is a [record.Codec] for google.protobuf.Struct messages.
type Codec struct {
	unmarshalOpts proto.UnmarshalOptions
}

// New creates a Protocol Buffers codec.
//
// Example:
//
//	coder := record.MustNewCoder(schema, proto.New(proto.WithRecursionLimit(16)))
func New(opts ...Option) *Codec {
	return &Codec{unmarshalOpts: applyOptions(opts).toUnmarshalOptions()}
}

// defaultCodec backs the package-level helpers.
var defaultCodec = New()

// marshalOpts keeps output byte-stable for equal objects.
var marshalOpts = proto.MarshalOptions{Deterministic: true}

// Format implements record.Codec.
func (c *Codec) Format() record.Format { return record.FormatProto }

// Marshal implements record.Codec.
func (c *Codec) Marshal(obj *record.Object) ([]byte, error) {
	s, err := objectToStruct(obj)
	if err != nil {
		return nil, err
	}

	return marshalOpts.Marshal(s)
}

// Unmarshal implements record.Codec.
func (c *Codec) Unmarshal(data []byte) (*record.Object, error) {
	var s structpb.Struct
	if err := c.unmarshalOpts.Unmarshal(data, &s); err != nil {
		return nil, &record.DecodeError{Format: record.FormatProto, Err: err}
	}

	return structToObject(&s), nil
}

// objectToStruct converts an object into a Struct.
func objectToStruct(obj *record.Object) (*structpb.Struct, error) {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, obj.Len())}

	var err error
	obj.Range(func(key string, value any) bool {
		var v *structpb.Value
		if v, err = structpb.NewValue(value); err != nil {
			err = fmt.Errorf("key %q: %w", key, err)
			return false
		}
		s.Fields[key] = v
		return true
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// structToObject converts a Struct into an object with sorted keys.
func structToObject(s *structpb.Struct) *record.Object {
	obj := record.NewObject()
	for _, key := range slices.Sorted(maps.Keys(s.GetFields())) {
		obj.Set(key, valueOf(s.GetFields()[key]))
	}

	return obj
}

// valueOf converts one Struct value into a Go value.
func valueOf(v *structpb.Value) any {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_BoolValue:
		return k.BoolValue
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		// float64(math.MaxInt64) rounds up to 2^63, which is out of range
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
		return f
	case *structpb.Value_StructValue:
		return k.StructValue.AsMap()
	case *structpb.Value_ListValue:
		return k.ListValue.AsSlice()
	default:
		return nil
	}
}

// ToStruct encodes a record into a Struct for embedding in other messages.
//
// Example:
//
//	s, err := proto.ToStruct(rec)
//	req := &pb.SubmitReviewRequest{Fields: s}
func ToStruct(r record.Record, opts ...record.Option) (*structpb.Struct, error) {
	obj, err := record.Encode(r, opts...)
	if err != nil {
		return nil, err
	}

	return objectToStruct(obj)
}

// FromStruct decodes a Struct into a record for schema. A nil Struct
// decodes to an empty record.
//
// Example:
//
//	rec, err := proto.FromStruct(schema, req.GetFields())
func FromStruct(schema *record.Schema, s *structpb.Struct, opts ...record.Option) (record.Record, error) {
	return record.Decode(schema, structToObject(s), opts...)
}

// Marshal encodes a record as a google.protobuf.Struct message.
//
// Example:
//
//	body, err := proto.Marshal(rec)
func Marshal(r record.Record, opts ...record.Option) ([]byte, error) {
	return record.Marshal(r, defaultCodec, opts...)
}

// Unmarshal decodes a google.protobuf.Struct message into a record for
// schema.
//
// Example:
//
//	rec, err := proto.Unmarshal(schema, body)
func Unmarshal(schema *record.Schema, data []byte, opts ...record.Option) (record.Record, error) {
	return record.Unmarshal(schema, data, defaultCodec, opts...)
}
