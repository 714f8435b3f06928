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
)

// Static errors for schema, record and codec operations.
var (
	ErrInvalidKind        = errors.New("invalid field kind")
	ErrEmptyFieldName     = errors.New("empty field name")
	ErrEmptyWireKey       = errors.New("empty wire key")
	ErrDuplicateFieldName = errors.New("duplicate field name")
	ErrDuplicateWireKey   = errors.New("duplicate wire key")
	ErrUnknownField       = errors.New("unknown field")
	ErrKindMismatch       = errors.New("value kind does not match field kind")
	ErrTypeMismatch       = errors.New("wire value does not match field kind")
	ErrUnsupportedValue   = errors.New("unsupported dynamic value")
	ErrKeyCollision       = errors.New("dynamic key collides with mapped wire key")
	ErrTooManyKeys        = errors.New("wire object exceeds max keys")
	ErrNotObject          = errors.New("wire value is not a flat object")
	ErrMalformed          = errors.New("malformed wire data")
	ErrTrailingData       = errors.New("trailing data after wire object")
	ErrNilCodec           = errors.New("codec is nil")
	ErrNoCoercers         = errors.New("no coercers configured")
)

// Reason classifies a non-fatal field problem.
type Reason int

const (
	// ReasonMismatch is a mapped key whose value has the wrong scalar kind.
	ReasonMismatch Reason = iota + 1

	// ReasonDropped is an unmapped key whose value no coercer accepted.
	ReasonDropped

	// ReasonCollision is a dynamic key equal to a mapped wire key.
	ReasonCollision
)

// String returns the string representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonMismatch:
		return "mismatch"
	case ReasonDropped:
		return "dropped"
	case ReasonCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// FieldError describes a single key that did not make it into (or out of)
// a record. Decoding never stops because of one; it is reported through
// [Events], and returned inside a [MultiError] only when [WithStrict] or
// [CollisionError] ask for it.
//
// Use [errors.As] to check for FieldError:
//
//	var fieldErr *record.FieldError
//	if errors.As(err, &fieldErr) {
//	    fmt.Printf("Key: %s, Reason: %s\n", fieldErr.Key, fieldErr.Reason)
//	}
type FieldError struct {
	Key    string // Wire key
	Field  string // Internal field name, empty for dynamic keys
	Kind   Kind   // Declared kind, KindInvalid for dynamic keys
	Value  any    // Offending wire value
	Reason Reason // What went wrong
	Err    error  // Underlying error
}

// Error returns a formatted error message.
func (e *FieldError) Error() string {
	switch e.Reason {
	case ReasonMismatch:
		return fmt.Sprintf("record key %q (field %s): expected %s, got %T: %v",
			e.Key, e.Field, e.Kind, e.Value, e.Err)
	case ReasonDropped:
		return fmt.Sprintf("record key %q: dropped %T value: %v", e.Key, e.Value, e.Err)
	case ReasonCollision:
		return fmt.Sprintf("record key %q: %v", e.Key, e.Err)
	default:
		return fmt.Sprintf("record key %q: %v", e.Key, e.Err)
	}
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable error code.
func (e *FieldError) Code() string {
	switch e.Reason {
	case ReasonMismatch:
		return "field_type_mismatch"
	case ReasonDropped:
		return "field_dropped"
	case ReasonCollision:
		return "key_collision"
	default:
		return "field_error"
	}
}

// MultiError aggregates field errors.
//
// Use [errors.As] to check for MultiError:
//
//	var multi *record.MultiError
//	if errors.As(err, &multi) {
//	    for _, e := range multi.Errors {
//	        // Handle each error
//	    }
//	}
type MultiError struct {
	Errors []*FieldError
}

// Error returns a formatted error message.
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	return fmt.Sprintf("%d record field errors occurred", len(m.Errors))
}

// Unwrap returns all errors for errors.Is/As compatibility.
func (m *MultiError) Unwrap() []error {
	errs := make([]error, 0, len(m.Errors))
	for _, e := range m.Errors {
		errs = append(errs, e)
	}

	return errs
}

// Code returns a stable machine-readable error code.
func (m *MultiError) Code() string {
	return "multiple_field_errors"
}

// Add appends an error to the MultiError.
func (m *MultiError) Add(err *FieldError) {
	m.Errors = append(m.Errors, err)
}

// HasErrors returns true if there are any errors.
func (m *MultiError) HasErrors() bool {
	return len(m.Errors) > 0
}

// ErrorOrNil returns nil if there are no errors, otherwise returns the MultiError.
func (m *MultiError) ErrorOrNil() error {
	if !m.HasErrors() {
		return nil
	}

	return m
}

// DecodeError is a hard decode failure: the wire bytes could not be parsed
// into a flat object at all. It is the only error that aborts decoding.
type DecodeError struct {
	Format Format // Wire format that failed
	Err    error  // Underlying codec error
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("record: decoding %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable error code.
func (e *DecodeError) Code() string {
	return "malformed_wire_object"
}
