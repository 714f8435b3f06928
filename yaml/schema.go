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

package yaml

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"rivaas.dev/record"
)

// schemaDocument is the YAML layout of a schema declaration.
type schemaDocument struct {
	Fields []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
	Kind string `yaml:"kind"`
}

// Schema loads a [record.Schema] from a YAML document. Unknown keys are
// rejected. A field without a key uses its name as the wire key.
//
// Example:
//
//	fields:
//	  - name: rating
//	    kind: int
//	  - name: agreedToTerms
//	    key: agreedtotermsandconditions
//	    kind: bool
func Schema(data []byte) (*record.Schema, error) {
	var doc schemaDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml: parsing schema: %w", err)
	}

	fields := make([]record.Field, 0, len(doc.Fields))
	for i, f := range doc.Fields {
		kind, err := record.ParseKind(f.Kind)
		if err != nil {
			return nil, fmt.Errorf("yaml: schema field %d (%q): %w", i, f.Name, err)
		}
		key := f.Key
		if key == "" {
			key = f.Name
		}
		fields = append(fields, record.Field{Name: f.Name, WireKey: key, Kind: kind})
	}

	s, err := record.NewSchema(fields...)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}

	return s, nil
}
