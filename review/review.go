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

// Package review provides the field set of a progressive review
// submission: eight typed fields plus any number of dynamic fields such as
// "photourl_1" or "contextdatavalue_<id>".
//
// Example:
//
//	f := review.New().
//	    WithRating(5).
//	    WithTitle("Great").
//	    WithPhotoURL(1, "http://x/1.jpg")
//
//	body, err := json.Marshal(f)
//	// {"rating":5,"title":"Great","photourl_1":"http://x/1.jpg"}
package review

import (
	"bytes"
	"fmt"
	"strconv"

	"rivaas.dev/record"
)

// Typed field names.
const (
	FieldRating                          = "rating"
	FieldTitle                           = "title"
	FieldReviewText                      = "reviewtext"
	FieldAgreedToTerms                   = "agreedToTerms"
	FieldIsRecommended                   = "isRecommended"
	FieldSendEmailAlert                  = "sendEmailAlert"
	FieldHostedAuthenticationEmail       = "hostedAuthenticationEmail"
	FieldHostedAuthenticationCallbackURL = "hostedAuthenticationCallbackurl"
)

// Dynamic key prefixes.
const (
	PhotoURLPrefix         = "photourl_"
	ContextDataValuePrefix = "contextdatavalue_"
)

var schema = record.MustSchema(
	record.Field{Name: FieldRating, WireKey: "rating", Kind: record.KindInt},
	record.Field{Name: FieldTitle, WireKey: "title", Kind: record.KindString},
	record.Field{Name: FieldReviewText, WireKey: "reviewtext", Kind: record.KindString},
	record.Field{Name: FieldAgreedToTerms, WireKey: "agreedtotermsandconditions", Kind: record.KindBool},
	record.Field{Name: FieldIsRecommended, WireKey: "isrecommended", Kind: record.KindBool},
	record.Field{Name: FieldSendEmailAlert, WireKey: "sendemailalertwhenpublished", Kind: record.KindBool},
	record.Field{Name: FieldHostedAuthenticationEmail, WireKey: "hostedauthentication_authenticationemail", Kind: record.KindString},
	record.Field{Name: FieldHostedAuthenticationCallbackURL, WireKey: "hostedauthentication_callbackurl", Kind: record.KindString},
)

// Schema returns the review submission schema. Field order is wire
// emission order.
func Schema() *record.Schema { return schema }

// PhotoURLKey returns the dynamic key of the n-th photo URL.
func PhotoURLKey(n int) string { return PhotoURLPrefix + strconv.Itoa(n) }

// ContextDataValueKey returns the dynamic key of a context data value.
func ContextDataValueKey(id string) string { return ContextDataValuePrefix + id }

// Fields is a review submission. Like [record.Record] it is an immutable
// value: every With* method returns a new Fields. The zero Fields is empty
// and ready to use.
type Fields struct {
	rec record.Record
}

// New returns empty review fields.
func New() Fields {
	return Fields{rec: record.New(schema)}
}

// FromRecord wraps a record built for [Schema].
func FromRecord(r record.Record) (Fields, error) {
	if r.Schema() != schema {
		return Fields{}, fmt.Errorf("review: record has a foreign schema with %d fields", r.Schema().Len())
	}

	return Fields{rec: r}, nil
}

// Record returns the underlying record.
func (f Fields) Record() record.Record {
	if f.rec.Schema() != schema {
		return record.New(schema)
	}

	return f.rec
}

// Rating returns the star rating.
func (f Fields) Rating() (int64, bool) {
	v, ok := f.Record().Field(FieldRating)
	if !ok {
		return 0, false
	}

	return v.AsInt()
}

// Title returns the review title.
func (f Fields) Title() (string, bool) { return f.stringField(FieldTitle) }

// ReviewText returns the review body.
func (f Fields) ReviewText() (string, bool) { return f.stringField(FieldReviewText) }

// AgreedToTerms reports whether the terms and conditions were accepted.
func (f Fields) AgreedToTerms() (bool, bool) { return f.boolField(FieldAgreedToTerms) }

// IsRecommended reports whether the reviewer recommends the product.
func (f Fields) IsRecommended() (bool, bool) { return f.boolField(FieldIsRecommended) }

// SendEmailAlert reports whether to email the reviewer on publication.
func (f Fields) SendEmailAlert() (bool, bool) { return f.boolField(FieldSendEmailAlert) }

// HostedAuthenticationEmail returns the email used for hosted authentication.
func (f Fields) HostedAuthenticationEmail() (string, bool) {
	return f.stringField(FieldHostedAuthenticationEmail)
}

// HostedAuthenticationCallbackURL returns the hosted authentication callback URL.
func (f Fields) HostedAuthenticationCallbackURL() (string, bool) {
	return f.stringField(FieldHostedAuthenticationCallbackURL)
}

func (f Fields) stringField(name string) (string, bool) {
	v, ok := f.Record().Field(name)
	if !ok {
		return "", false
	}

	return v.AsString()
}

func (f Fields) boolField(name string) (bool, bool) {
	v, ok := f.Record().Field(name)
	if !ok {
		return false, false
	}

	return v.AsBool()
}

// WithRating sets the star rating.
func (f Fields) WithRating(v int64) Fields { return f.withField(FieldRating, record.Int(v)) }

// WithTitle sets the review title.
func (f Fields) WithTitle(v string) Fields { return f.withField(FieldTitle, record.String(v)) }

// WithReviewText sets the review body.
func (f Fields) WithReviewText(v string) Fields {
	return f.withField(FieldReviewText, record.String(v))
}

// WithAgreedToTerms sets terms and conditions acceptance.
func (f Fields) WithAgreedToTerms(v bool) Fields {
	return f.withField(FieldAgreedToTerms, record.Bool(v))
}

// WithIsRecommended sets whether the reviewer recommends the product.
func (f Fields) WithIsRecommended(v bool) Fields {
	return f.withField(FieldIsRecommended, record.Bool(v))
}

// WithSendEmailAlert sets whether to email the reviewer on publication.
func (f Fields) WithSendEmailAlert(v bool) Fields {
	return f.withField(FieldSendEmailAlert, record.Bool(v))
}

// WithHostedAuthenticationEmail sets the hosted authentication email.
func (f Fields) WithHostedAuthenticationEmail(v string) Fields {
	return f.withField(FieldHostedAuthenticationEmail, record.String(v))
}

// WithHostedAuthenticationCallbackURL sets the hosted authentication callback URL.
func (f Fields) WithHostedAuthenticationCallbackURL(v string) Fields {
	return f.withField(FieldHostedAuthenticationCallbackURL, record.String(v))
}

// Clear returns a copy with the named typed field absent.
func (f Fields) Clear(name string) Fields {
	return Fields{rec: f.Record().WithoutField(name)}
}

// withField sets a typed field. Names and kinds are fixed by this package,
// so an error here is a programming error.
func (f Fields) withField(name string, v record.Value) Fields {
	rec, err := f.Record().WithField(name, v)
	if err != nil {
		panic(fmt.Sprintf("review: %v", err))
	}

	return Fields{rec: rec}
}

// With returns a copy with a dynamic field set.
func (f Fields) With(name, value string) Fields {
	return Fields{rec: f.Record().With(name, value)}
}

// WithPhotoURL sets the n-th photo URL.
func (f Fields) WithPhotoURL(n int, url string) Fields {
	return f.With(PhotoURLKey(n), url)
}

// WithContextDataValue sets a context data value.
func (f Fields) WithContextDataValue(id, value string) Fields {
	return f.With(ContextDataValueKey(id), value)
}

// Get returns a dynamic field.
func (f Fields) Get(name string) (string, bool) { return f.Record().Get(name) }

// Without returns a copy with a dynamic field removed.
func (f Fields) Without(name string) Fields {
	return Fields{rec: f.Record().Without(name)}
}

// All returns the dynamic fields in insertion order.
func (f Fields) All() []record.Entry { return f.Record().All() }

// Map returns the dynamic fields as a new map.
func (f Fields) Map() map[string]string { return f.Record().Map() }

// Len returns the number of dynamic fields.
func (f Fields) Len() int { return f.Record().Len() }

// Equal reports whether two field sets hold the same values.
func (f Fields) Equal(o Fields) bool { return f.Record().Equal(o.Record()) }

// String formats the fields for debugging.
func (f Fields) String() string { return f.Record().String() }

// MarshalJSON implements json.Marshaler.
func (f Fields) MarshalJSON() ([]byte, error) {
	return record.Marshal(f.Record(), record.JSON)
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves f unchanged.
func (f *Fields) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	rec, err := record.Unmarshal(schema, data, record.JSON)
	if err != nil {
		return err
	}
	f.rec = rec

	return nil
}

// NewCoder returns a [record.Coder] for review submissions.
//
// Example:
//
//	coder, err := review.NewCoder(yaml.New(), record.WithStrict())
func NewCoder(codec record.Codec, opts ...record.Option) (*record.Coder, error) {
	return record.NewCoder(schema, codec, opts...)
}

// Marshal encodes review fields with codec.
func Marshal(f Fields, codec record.Codec, opts ...record.Option) ([]byte, error) {
	return record.Marshal(f.Record(), codec, opts...)
}

// Unmarshal decodes review fields with codec. Under [record.WithStrict]
// the decoded fields are returned alongside the *record.MultiError.
func Unmarshal(data []byte, codec record.Codec, opts ...record.Option) (Fields, error) {
	rec, err := record.Unmarshal(schema, data, codec, opts...)
	return Fields{rec: rec}, err
}
