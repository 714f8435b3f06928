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

package toml

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"rivaas.dev/record"
)

// schemaDocument is the TOML layout of a schema declaration.
type schemaDocument struct {
	Fields []fieldDocument `toml:"fields"`
}

type fieldDocument struct {
	Name string `toml:"name"`
	Key  string `toml:"key"`
	Kind string `toml:"kind"`
}

// Schema loads a [record.Schema] from a TOML document made of [[fields]]
// tables. Unknown keys are rejected. A field without a key uses its name
// as the wire key.
//
// Example:
//
//	[[fields]]
//	name = "rating"
//	kind = "int"
//
//	[[fields]]
//	name = "agreedToTerms"
//	key  = "agreedtotermsandconditions"
//	kind = "bool"
func Schema(data []byte) (*record.Schema, error) {
	var doc schemaDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("toml: parsing schema: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("toml: parsing schema: unknown keys %s", strings.Join(keys, ", "))
	}

	fields := make([]record.Field, 0, len(doc.Fields))
	for i, f := range doc.Fields {
		kind, err := record.ParseKind(f.Kind)
		if err != nil {
			return nil, fmt.Errorf("toml: schema field %d (%q): %w", i, f.Name, err)
		}
		key := f.Key
		if key == "" {
			key = f.Name
		}
		fields = append(fields, record.Field{Name: f.Name, WireKey: key, Kind: kind})
	}

	s, err := record.NewSchema(fields...)
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}

	return s, nil
}
