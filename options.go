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
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// CollisionPolicy defines what encode does with a dynamic entry whose key
// is also the wire key of a typed field.
type CollisionPolicy int

const (
	// CollisionSkip leaves the dynamic entry out of the wire object and
	// reports it via Events.KeyCollision. This is the default policy.
	// The mapped key always belongs to the typed field, so what is written
	// is exactly what a decode would route back.
	CollisionSkip CollisionPolicy = iota

	// CollisionError fails the encode with a [FieldError] wrapping
	// [ErrKeyCollision].
	CollisionError
)

// Events provides hooks for observability without coupling.
type Events struct {
	// FieldDecoded is called after a mapped key is decoded into its typed field.
	FieldDecoded func(field, wireKey string)

	// FieldMismatch is called when a mapped key holds a value of the wrong
	// kind. The field is left absent and decoding continues.
	FieldMismatch func(field, wireKey string, value any)

	// KeyDropped is called when an unmapped key holds a value no coercer
	// accepts. The key is dropped and decoding continues.
	KeyDropped func(wireKey string, value any)

	// KeyCollision is called when encode meets a dynamic key equal to a
	// mapped wire key.
	KeyCollision func(wireKey string)

	// Done is called at the end of every encode or decode with statistics.
	// Always called, even on error.
	Done func(stats Stats)
}

// Stats tracks per-call encode and decode counters.
type Stats struct {
	KeysProcessed  int // Wire keys visited (decode) or entries considered (encode)
	TypedDecoded   int // Mapped keys stored in typed fields
	DynamicDecoded int // Unmapped keys stored in the dynamic bag
	Mismatches     int // Mapped keys left absent because of a kind mismatch
	Dropped        int // Unmapped keys no coercer accepted
	Collisions     int // Dynamic entries skipped because of a mapped key
}

// Option configures encode and decode behavior.
type Option func(*config)

// config holds encode/decode configuration.
// A fresh copy is used per call; stats are never shared between calls.
type config struct {
	logger     *slog.Logger
	events     Events
	strict     bool
	collisions CollisionPolicy
	coercers   []Coercer
	maxKeys    int

	stats Stats
}

// WithLogger logs mismatches, drops and collisions at debug level.
// No logger is set by default and nothing is logged.
//
// Example:
//
//	rec, err := record.Unmarshal(schema, body, record.JSON,
//	    record.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithEvents sets observability hooks.
//
// Example:
//
//	record.WithEvents(record.Events{
//	    KeyDropped: func(key string, v any) {
//	        log.Printf("dropped %s (%T)", key, v)
//	    },
//	})
func WithEvents(events Events) Option {
	return func(c *config) {
		c.events = events
	}
}

// WithStrict makes decode return a [MultiError] describing every mismatch
// and every dropped key, alongside the fully decoded record. Decoding
// itself still continues past each problem.
//
// Without it (the default) mismatches and drops are silent.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollisionPolicy sets how encode treats dynamic keys that collide
// with mapped wire keys. The default is [CollisionSkip].
func WithCollisionPolicy(policy CollisionPolicy) Option {
	return func(c *config) {
		c.collisions = policy
	}
}

// WithCoercers replaces the dynamic-field coercion order.
// The default is [DefaultCoercers].
//
// Example:
//
//	record.WithCoercers(record.CoerceString, record.CoerceInteger)
func WithCoercers(coercers ...Coercer) Option {
	return func(c *config) {
		c.coercers = slices.Clone(coercers)
	}
}

// WithMaxKeys sets the maximum number of keys a wire object may carry.
// When exceeded, decode fails with [ErrTooManyKeys].
// The default, 0, accepts objects of any size.
func WithMaxKeys(n int) Option {
	return func(c *config) {
		c.maxKeys = n
	}
}

// defaultConfig returns default options.
func defaultConfig() *config {
	return &config{
		collisions: CollisionSkip,
		coercers:   defaultCoercers,
	}
}

// newConfig applies options to the defaults and validates the result.
func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks option values.
func (c *config) validate() error {
	if c.maxKeys < 0 {
		return fmt.Errorf("maxKeys must be non-negative, got %d", c.maxKeys)
	}
	if c.collisions != CollisionSkip && c.collisions != CollisionError {
		return fmt.Errorf("unknown collision policy %d", c.collisions)
	}
	if len(c.coercers) == 0 {
		return ErrNoCoercers
	}
	for i, co := range c.coercers {
		if co == nil {
			return fmt.Errorf("coercer %d is nil", i)
		}
	}

	return nil
}

// clone returns a per-call copy with zeroed stats.
func (c *config) clone() *config {
	cp := *c
	cp.stats = Stats{}
	return &cp
}

// decoded records a typed field stored from the wire.
func (c *config) decoded(f Field) {
	c.stats.TypedDecoded++
	if c.events.FieldDecoded != nil {
		c.events.FieldDecoded(f.Name, f.WireKey)
	}
}

// mismatch records a mapped key left absent.
func (c *config) mismatch(f Field, raw any, multi *MultiError) {
	c.stats.Mismatches++
	if c.events.FieldMismatch != nil {
		c.events.FieldMismatch(f.Name, f.WireKey, raw)
	}
	c.debug("record field type mismatch",
		slog.String("key", f.WireKey),
		slog.String("field", f.Name),
		slog.String("kind", f.Kind.String()),
		slog.String("got", fmt.Sprintf("%T", raw)))
	if c.strict {
		multi.Add(&FieldError{
			Key:    f.WireKey,
			Field:  f.Name,
			Kind:   f.Kind,
			Value:  raw,
			Reason: ReasonMismatch,
			Err:    ErrTypeMismatch,
		})
	}
}

// drop records an unmapped key no coercer accepted.
func (c *config) drop(key string, raw any, multi *MultiError) {
	c.stats.Dropped++
	if c.events.KeyDropped != nil {
		c.events.KeyDropped(key, raw)
	}
	c.debug("record dynamic key dropped",
		slog.String("key", key),
		slog.String("got", fmt.Sprintf("%T", raw)))
	if c.strict {
		multi.Add(&FieldError{
			Key:    key,
			Value:  raw,
			Reason: ReasonDropped,
			Err:    ErrUnsupportedValue,
		})
	}
}

// collision records a dynamic entry shadowed by a mapped key.
// It returns an error only under CollisionError.
func (c *config) collision(key, field string) error {
	c.stats.Collisions++
	if c.events.KeyCollision != nil {
		c.events.KeyCollision(key)
	}
	c.debug("record dynamic key collides with typed field",
		slog.String("key", key),
		slog.String("field", field))
	if c.collisions == CollisionError {
		return &FieldError{
			Key:    key,
			Field:  field,
			Reason: ReasonCollision,
			Err:    ErrKeyCollision,
		}
	}

	return nil
}

// debug logs at debug level when a logger is configured.
func (c *config) debug(msg string, attrs ...slog.Attr) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// finish emits the Done event with final statistics.
func (c *config) finish() {
	if c.events.Done != nil {
		c.events.Done(c.stats)
	}
}
