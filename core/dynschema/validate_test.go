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

package dynschema_test

import (
	"testing"
	"time"

	"pillar-core/core/dynschema"

	"gotest.tools/assert"
)

func TestValidateOK(t *testing.T) {
	schema := dynschema.Schema{
		"name":     {Type: dynschema.FieldTypeString, Required: true},
		"count":    {Type: dynschema.FieldTypeInteger},
		"taken_at": {Type: dynschema.FieldTypeDateTime},
	}
	properties := map[string]interface{}{
		"name":     "sample",
		"count":    float64(3), //as a json decode produces
		"taken_at": time.Now().UTC(),
	}

	validationErrors := dynschema.Validate(properties, schema)
	assert.Equal(t, len(validationErrors), 0, "no errors expected")
}

func TestValidateRequired(t *testing.T) {
	schema := dynschema.Schema{"name": {Type: dynschema.FieldTypeString, Required: true}}

	validationErrors := dynschema.Validate(map[string]interface{}{}, schema)
	assert.Equal(t, len(validationErrors["name"]), 1, "required error expected")
	assert.Equal(t, validationErrors["name"][0], "required field", "message is different")
}

func TestValidateUnknownField(t *testing.T) {
	schema := dynschema.Schema{"name": {Type: dynschema.FieldTypeString}}
	properties := map[string]interface{}{"name": "sample", "extra": 1}

	validationErrors := dynschema.Validate(properties, schema)
	assert.Equal(t, validationErrors["extra"][0], "unknown field", "message is different")
}

func TestValidateTypeMismatch(t *testing.T) {
	schema := dynschema.Schema{
		"name":     {Type: dynschema.FieldTypeString},
		"count":    {Type: dynschema.FieldTypeInteger},
		"enabled":  {Type: dynschema.FieldTypeBoolean},
		"taken_at": {Type: dynschema.FieldTypeDateTime},
	}
	properties := map[string]interface{}{
		"name":     7,
		"count":    2.5,
		"enabled":  "yes",
		"taken_at": "Tue, 15 Mar 2022 10:30:00 GMT", //not coerced
	}

	validationErrors := dynschema.Validate(properties, schema)
	assert.Equal(t, len(validationErrors), 4, "every field must be flagged")
	assert.Equal(t, validationErrors["count"][0], "must be of integer type", "message is different")
	assert.Equal(t, validationErrors["taken_at"][0], "must be of datetime type", "message is different")
}

func TestValidateNullable(t *testing.T) {
	schema := dynschema.Schema{
		"image":   {Type: dynschema.FieldTypeObjectID, Nullable: true},
		"caption": {Type: dynschema.FieldTypeString},
	}
	properties := map[string]interface{}{"image": nil, "caption": nil}

	validationErrors := dynschema.Validate(properties, schema)
	assert.Equal(t, len(validationErrors["image"]), 0, "nullable field must accept null")
	assert.Equal(t, validationErrors["caption"][0], "null value not allowed", "message is different")
}

func TestValidateAllowed(t *testing.T) {
	schema := dynschema.Schema{"status": {Type: dynschema.FieldTypeString, Allowed: []interface{}{"draft", "published"}}}

	validationErrors := dynschema.Validate(map[string]interface{}{"status": "draft"}, schema)
	assert.Equal(t, len(validationErrors), 0, "allowed value rejected")

	validationErrors = dynschema.Validate(map[string]interface{}{"status": "deleted"}, schema)
	assert.Equal(t, len(validationErrors["status"]), 1, "unallowed value accepted")
}

func TestValidateAllowedNumericNormalization(t *testing.T) {
	//the schema stored in mongo carries int32 entries, the request carries float64
	schema := dynschema.Schema{"level": {Type: dynschema.FieldTypeInteger, Allowed: []interface{}{int32(1), int32(2)}}}

	validationErrors := dynschema.Validate(map[string]interface{}{"level": float64(2)}, schema)
	assert.Equal(t, len(validationErrors), 0, "numeric entries must match across types")
}

func TestValidateLengthBounds(t *testing.T) {
	min := 2
	max := 4
	schema := dynschema.Schema{
		"code": {Type: dynschema.FieldTypeString, MinLength: &min, MaxLength: &max},
		"tags": {Type: dynschema.FieldTypeList, MaxLength: &max},
	}

	validationErrors := dynschema.Validate(map[string]interface{}{"code": "x"}, schema)
	assert.Equal(t, validationErrors["code"][0], "min length is 2", "message is different")

	validationErrors = dynschema.Validate(map[string]interface{}{
		"tags": []interface{}{"a", "b", "c", "d", "e"}}, schema)
	assert.Equal(t, validationErrors["tags"][0], "max length is 4", "message is different")
}

func TestValidateNestedDict(t *testing.T) {
	schema := dynschema.Schema{"meta": {Type: dynschema.FieldTypeDict,
		Dict: dynschema.Schema{"author": {Type: dynschema.FieldTypeString, Required: true}}}}
	properties := map[string]interface{}{"meta": map[string]interface{}{"year": 2022}}

	validationErrors := dynschema.Validate(properties, schema)
	assert.Equal(t, validationErrors["meta.author"][0], "required field", "nested errors must use dotted paths")
	assert.Equal(t, validationErrors["meta.year"][0], "unknown field", "nested errors must use dotted paths")
}

func TestValidateListItems(t *testing.T) {
	schema := dynschema.Schema{"counts": {Type: dynschema.FieldTypeList,
		Items: &dynschema.FieldSpec{Type: dynschema.FieldTypeInteger}}}
	properties := map[string]interface{}{"counts": []interface{}{float64(1), "two", float64(3)}}

	validationErrors := dynschema.Validate(properties, schema)
	assert.Equal(t, len(validationErrors), 1, "only the bad item must be flagged")
	assert.Equal(t, validationErrors["counts.1"][0], "must be of integer type", "message is different")
}

func TestParseSchema(t *testing.T) {
	raw := map[string]interface{}{
		"name":   map[string]interface{}{"type": "string", "required": true, "maxlength": int32(80)},
		"images": map[string]interface{}{"type": "list", "schema": map[string]interface{}{"type": "objectid"}},
		"attachments": map[string]interface{}{"type": "dict",
			"valueschema": map[string]interface{}{"type": "objectid", "nullable": true}},
	}

	schema, err := dynschema.ParseSchema(raw)
	assert.NilError(t, err)

	assert.Equal(t, schema["name"].Required, true, "required is different")
	assert.Equal(t, *schema["name"].MaxLength, 80, "maxlength is different")
	assert.Equal(t, schema["images"].Items.Type, dynschema.FieldTypeObjectID, "items type is different")
	//Cerberus 1.3 spelling and the older valueschema are both accepted
	assert.Equal(t, schema["attachments"].Values.Nullable, true, "values nullable is different")
}

func TestParseSchemaMissingType(t *testing.T) {
	raw := map[string]interface{}{"name": map[string]interface{}{"required": true}}

	_, err := dynschema.ParseSchema(raw)
	if err == nil {
		t.Error("we are expecting error")
	}
}
