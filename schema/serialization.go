// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schemas serialize as documents of the form
//
//	{"fields": [{"name": "a", "data_type": "I32"},
//	            {"name": "b", "data_type": "Utf8", "nullable": true}]}
//
// with data types in their canonical textual form. The same shape is
// supported in YAML.

// MarshalJSON renders the data type in its canonical textual form.
func (dt DataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(dt.String())
}

// UnmarshalJSON parses the canonical textual form of a data type.
func (dt *DataType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: data type must be a string", ErrInvalid)
	}
	parsed, err := ParseDataType(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// MarshalYAML renders the data type in its canonical textual form.
func (dt DataType) MarshalYAML() (interface{}, error) {
	return dt.String(), nil
}

// UnmarshalYAML parses the canonical textual form of a data type.
func (dt *DataType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: data type must be a string", ErrInvalid)
	}
	parsed, err := ParseDataType(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// FromJSON parses and validates a schema document.
func FromJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ToJSON renders the schema as a JSON document.
func (s *Schema) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// FromYAML parses and validates a schema document in YAML form.
func FromYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ToYAML renders the schema as a YAML document.
func (s *Schema) ToYAML() ([]byte, error) {
	return yaml.Marshal(s)
}
