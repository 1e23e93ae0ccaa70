// Copyright 2022 Board of Trustees of the University of Illinois.
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

// Package dynschema coerces and validates node properties against dynamic,
// runtime-supplied schemas. A schema is stored on the project document per
// node type and describes each property field by declared type, optionally
// with nested schemas for dict and list fields.
package dynschema

import (
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	//TypeSchema schema type
	TypeSchema logutils.MessageDataType = "dynamic schema"
	//TypeFieldSpec field spec type
	TypeFieldSpec logutils.MessageDataType = "field spec"
)

// Field types with coercion or recursion behavior. Any other declared type
// passes through coercion unchanged.
const (
	FieldTypeDict     string = "dict"
	FieldTypeList     string = "list"
	FieldTypeDateTime string = "datetime"
	FieldTypeObjectID string = "objectid"
	FieldTypeString   string = "string"
	FieldTypeInteger  string = "integer"
	FieldTypeFloat    string = "float"
	FieldTypeNumber   string = "number"
	FieldTypeBoolean  string = "boolean"
)

// Schema maps field names to their descriptors
type Schema map[string]FieldSpec

// FieldSpec is the tagged-variant descriptor of a single field. Exactly one of
// Dict, Values and Items is set for container types:
//
//	Dict   - a dict field with a field-specific nested schema
//	Values - a dict field whose single nested spec applies to every entry
//	Items  - a list field's item spec
type FieldSpec struct {
	Type string

	Required bool
	Nullable bool

	Dict   Schema
	Values *FieldSpec
	Items  *FieldSpec

	Allowed   []interface{}
	MinLength *int
	MaxLength *int
}

// ParseSchema builds a Schema from the raw per-field description stored on a
// project document. Nested dict schemas are accepted under "schema" and
// values-rules under "valuesrules" or its older spelling "valueschema".
func ParseSchema(raw map[string]interface{}) (Schema, error) {
	schema := make(Schema, len(raw))
	for field, rawSpec := range raw {
		specMap, ok := asMap(rawSpec)
		if !ok {
			return nil, errors.ErrorData(logutils.StatusInvalid, TypeFieldSpec, &logutils.FieldArgs{"field": field})
		}

		spec, err := parseFieldSpec(field, specMap)
		if err != nil {
			return nil, err
		}
		schema[field] = spec
	}
	return schema, nil
}

func parseFieldSpec(field string, raw map[string]interface{}) (FieldSpec, error) {
	spec := FieldSpec{}

	fieldType, _ := raw["type"].(string)
	if fieldType == "" {
		return spec, errors.ErrorData(logutils.StatusMissing, TypeFieldSpec, &logutils.FieldArgs{"field": field, "key": "type"})
	}
	spec.Type = fieldType

	spec.Required, _ = raw["required"].(bool)
	spec.Nullable, _ = raw["nullable"].(bool)

	if allowed, ok := asSlice(raw["allowed"]); ok {
		spec.Allowed = allowed
	}
	if minLength, ok := asInt(raw["minlength"]); ok {
		spec.MinLength = &minLength
	}
	if maxLength, ok := asInt(raw["maxlength"]); ok {
		spec.MaxLength = &maxLength
	}

	switch fieldType {
	case FieldTypeDict:
		if nested, ok := asMap(raw["schema"]); ok {
			dict, err := ParseSchema(nested)
			if err != nil {
				return spec, err
			}
			spec.Dict = dict
			break
		}
		//Cerberus 1.3 renamed valueschema to valuesrules - accept both
		rawValues := raw["valuesrules"]
		if rawValues == nil {
			rawValues = raw["valueschema"]
		}
		if valuesMap, ok := asMap(rawValues); ok {
			values, err := parseFieldSpec(field, valuesMap)
			if err != nil {
				return spec, err
			}
			spec.Values = &values
		} else {
			return spec, errors.ErrorData(logutils.StatusMissing, TypeFieldSpec, &logutils.FieldArgs{"field": field, "key": "valuesrules"})
		}
	case FieldTypeList:
		if itemsMap, ok := asMap(raw["schema"]); ok {
			items, err := parseFieldSpec(field, itemsMap)
			if err != nil {
				return spec, err
			}
			spec.Items = &items
		}
	}

	return spec, nil
}

// asMap accepts both plain maps and bson documents decoded as primitive.M
func asMap(value interface{}) (map[string]interface{}, bool) {
	switch m := value.(type) {
	case map[string]interface{}:
		return m, true
	case primitive.M:
		return map[string]interface{}(m), true
	}
	return nil, false
}

// asSlice accepts both plain slices and bson arrays decoded as primitive.A
func asSlice(value interface{}) ([]interface{}, bool) {
	switch s := value.(type) {
	case []interface{}:
		return s, true
	case primitive.A:
		return []interface{}(s), true
	}
	return nil, false
}

// asInt normalizes the numeric types the bson and json decoders produce
func asInt(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
