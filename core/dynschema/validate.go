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

package dynschema

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Errors accumulates validation failures per field. Nested fields are keyed
// by dotted path ("attachments.slot.oid"). Validation never panics - failures
// are collected and returned to the caller.
type Errors map[string][]string

// Add records a failure message for a field
func (e Errors) Add(field string, message string) {
	e[field] = append(e[field], message)
}

// Merge folds other into e, prefixing the fields of other with prefix
func (e Errors) Merge(prefix string, other Errors) {
	for field, messages := range other {
		key := prefix
		if field != "" {
			key = prefix + "." + field
		}
		e[key] = append(e[key], messages...)
	}
}

// Validate checks the (already coerced) properties against the schema
// structurally: unknown fields, required fields, per-type checks, allowed
// values, length bounds, and recursion into dict and list fields.
func Validate(properties map[string]interface{}, schema Schema) Errors {
	validationErrors := Errors{}

	for field := range properties {
		if _, known := schema[field]; !known {
			validationErrors.Add(field, "unknown field")
		}
	}

	for field, spec := range schema {
		value, present := properties[field]
		if !present {
			if spec.Required {
				validationErrors.Add(field, "required field")
			}
			continue
		}
		validateField(validationErrors, field, value, spec)
	}

	return validationErrors
}

func validateField(validationErrors Errors, field string, value interface{}, spec FieldSpec) {
	if value == nil {
		if !spec.Nullable {
			validationErrors.Add(field, "null value not allowed")
		}
		return
	}

	switch spec.Type {
	case FieldTypeDict:
		dictValue, ok := asMap(value)
		if !ok {
			validationErrors.Add(field, "must be of dict type")
			return
		}
		if spec.Dict != nil {
			validationErrors.Merge(field, Validate(dictValue, spec.Dict))
		} else if spec.Values != nil {
			for key, entry := range dictValue {
				validateField(validationErrors, field+"."+key, entry, *spec.Values)
			}
		}

	case FieldTypeList:
		listValue, ok := asSlice(value)
		if !ok {
			validationErrors.Add(field, "must be of list type")
			return
		}
		checkLengthBounds(validationErrors, field, len(listValue), spec)
		if spec.Items != nil {
			for i, item := range listValue {
				validateField(validationErrors, fmt.Sprintf("%s.%d", field, i), item, *spec.Items)
			}
		}

	case FieldTypeDateTime:
		if _, ok := value.(time.Time); !ok {
			validationErrors.Add(field, "must be of datetime type")
			return
		}

	case FieldTypeObjectID:
		if _, ok := value.(primitive.ObjectID); !ok {
			validationErrors.Add(field, "must be of objectid type")
			return
		}

	case FieldTypeString:
		s, ok := value.(string)
		if !ok {
			validationErrors.Add(field, "must be of string type")
			return
		}
		checkLengthBounds(validationErrors, field, len(s), spec)

	case FieldTypeInteger:
		if !isInteger(value) {
			validationErrors.Add(field, "must be of integer type")
			return
		}

	case FieldTypeFloat, FieldTypeNumber:
		if _, ok := asFloat(value); !ok {
			validationErrors.Add(field, "must be of number type")
			return
		}

	case FieldTypeBoolean:
		if _, ok := value.(bool); !ok {
			validationErrors.Add(field, "must be of boolean type")
			return
		}
	}

	if len(spec.Allowed) > 0 && !isAllowed(value, spec.Allowed) {
		validationErrors.Add(field, fmt.Sprintf("unallowed value %v", value))
	}
}

func checkLengthBounds(validationErrors Errors, field string, length int, spec FieldSpec) {
	if spec.MinLength != nil && length < *spec.MinLength {
		validationErrors.Add(field, fmt.Sprintf("min length is %d", *spec.MinLength))
	}
	if spec.MaxLength != nil && length > *spec.MaxLength {
		validationErrors.Add(field, fmt.Sprintf("max length is %d", *spec.MaxLength))
	}
}

// isInteger accepts native integers plus the whole-valued float64 a JSON
// decode produces for every number
func isInteger(value interface{}) bool {
	switch n := value.(type) {
	case int, int32, int64:
		return true
	case float64:
		return n == math.Trunc(n)
	}
	return false
}

func asFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// isAllowed compares with numeric normalization so a JSON 2 matches a schema
// entry stored as int32
func isAllowed(value interface{}, allowed []interface{}) bool {
	for _, entry := range allowed {
		if entry == value {
			return true
		}
		entryNum, entryOK := asFloat(entry)
		valueNum, valueOK := asFloat(value)
		if entryOK && valueOK && entryNum == valueNum {
			return true
		}
	}
	return false
}
