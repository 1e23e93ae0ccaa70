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
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDateLayout is the wire format for datetime property values
const DefaultDateLayout string = "Mon, 02 Jan 2006 15:04:05 GMT"

// itemField wraps list items and dict values so scalar coercion can be reused
// on them through a singleton schema
const itemField string = "item"

// Coerce converts string-typed wire values in properties into native values
// per the declared field type: datetime strings become UTC timestamps,
// objectid strings become primitive.ObjectID, list sentinels become empty
// slices, and dict/list fields recurse. Fields absent from properties are
// skipped and values that are already coerced are left untouched, so coercion
// is idempotent.
//
// Coercion is best-effort: on a conversion failure the partially coerced map
// is returned together with the error, and callers are expected to log it and
// still run Validate on the result.
func Coerce(properties map[string]interface{}, schema Schema, dateLayout string) (map[string]interface{}, error) {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	for field, spec := range schema {
		value, present := properties[field]
		if !present {
			continue
		}

		coerced, err := coerceValue(field, value, spec, dateLayout)
		if err != nil {
			return properties, err
		}
		properties[field] = coerced
	}

	return properties, nil
}

func coerceValue(field string, value interface{}, spec FieldSpec, dateLayout string) (interface{}, error) {
	switch spec.Type {
	case FieldTypeDict:
		dictValue, ok := asMap(value)
		if !ok {
			//not a mapping - leave it for the validator to flag
			return value, nil
		}
		if spec.Dict != nil {
			return Coerce(dictValue, spec.Dict, dateLayout)
		}
		if spec.Values != nil {
			return coerceDictValues(dictValue, *spec.Values, dateLayout)
		}
		return value, nil

	case FieldTypeList:
		//normalize the empty-value sentinels a web form submits
		if s, ok := value.(string); ok && (s == "" || s == "[]") {
			return []interface{}{}, nil
		}
		listValue, ok := asSlice(value)
		if !ok || spec.Items == nil {
			return value, nil
		}
		for i, item := range listValue {
			coerced, err := coerceValue(field, item, *spec.Items, dateLayout)
			if err != nil {
				return listValue, err
			}
			listValue[i] = coerced
		}
		return listValue, nil

	case FieldTypeDateTime:
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return value, errors.WrapErrorAction(logutils.ActionParse, logutils.MessageDataType("datetime property"), &logutils.FieldArgs{"field": field}, err)
		}
		return parsed.UTC(), nil

	case FieldTypeObjectID:
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		if s == "" {
			//explicit absence, not an error
			return nil, nil
		}
		objectID, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return value, errors.WrapErrorAction(logutils.ActionParse, logutils.MessageDataType("objectid property"), &logutils.FieldArgs{"field": field}, err)
		}
		return objectID, nil
	}

	//any other declared type passes through unchanged
	return value, nil
}

// coerceDictValues coerces every value of the dict against the single values
// spec. Only the values are touched, never the keys.
func coerceDictValues(dictValue map[string]interface{}, values FieldSpec, dateLayout string) (map[string]interface{}, error) {
	for key, value := range dictValue {
		itemProps := map[string]interface{}{itemField: value}
		itemSchema := Schema{itemField: values}

		coerced, err := Coerce(itemProps, itemSchema, dateLayout)
		if err != nil {
			return dictValue, err
		}
		dictValue[key] = coerced[itemField]
	}
	return dictValue, nil
}
