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

// Encode merges a record into a flat wire object.
//
// Present typed fields come first, in schema declaration order, under their
// wire keys; absent ones are omitted. Dynamic fields follow in insertion
// order with their keys used verbatim.
//
// Example:
//
//	obj, err := record.Encode(rec)
//
// Errors:
//   - [FieldError] wrapping [ErrKeyCollision]: only with [CollisionError]
func Encode(r Record, opts ...Option) (*Object, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	defer cfg.finish()

	return encodeRecord(r, cfg)
}

// Marshal encodes a record and serializes it with codec.
//
// Example:
//
//	body, err := record.Marshal(rec, record.JSON)
func Marshal(r Record, codec Codec, opts ...Option) ([]byte, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	defer cfg.finish()

	return marshalRecord(r, codec, cfg)
}

// marshalRecord is the shared implementation of Marshal.
func marshalRecord(r Record, codec Codec, cfg *config) ([]byte, error) {
	obj, err := encodeRecord(r, cfg)
	if err != nil {
		return nil, err
	}

	return codec.Marshal(obj)
}

// encodeRecord builds the wire object.
func encodeRecord(r Record, cfg *config) (*Object, error) {
	s := r.Schema()
	obj := NewObject()

	for i, f := range s.fields {
		v := r.typedAt(i)
		if !v.IsSet() {
			continue
		}
		cfg.stats.KeysProcessed++
		obj.Set(f.WireKey, v.Any())
	}

	var err error
	r.rangeDynamic(func(key, value string) {
		if err != nil {
			return
		}
		cfg.stats.KeysProcessed++
		if i, mapped := s.lookupKey(key); mapped {
			err = cfg.collision(key, s.fields[i].Name)
			return
		}
		obj.Set(key, value)
	})
	if err != nil {
		return nil, err
	}

	return obj, nil
}
