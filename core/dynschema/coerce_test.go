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

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gotest.tools/assert"
)

func TestCoerceDateTime(t *testing.T) {
	schema := dynschema.Schema{"taken_at": {Type: dynschema.FieldTypeDateTime}}
	properties := map[string]interface{}{"taken_at": "Tue, 15 Mar 2022 10:30:00 GMT"}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)

	got, ok := coerced["taken_at"].(time.Time)
	if !ok {
		t.Fatalf("taken_at is not a time.Time: %T", coerced["taken_at"])
	}
	want := time.Date(2022, time.March, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, got, want, "parsed time is different")
}

func TestCoerceDateTimeCustomLayout(t *testing.T) {
	schema := dynschema.Schema{"taken_at": {Type: dynschema.FieldTypeDateTime}}
	properties := map[string]interface{}{"taken_at": "2022-03-15T10:30:00"}

	coerced, err := dynschema.Coerce(properties, schema, "2006-01-02T15:04:05")
	assert.NilError(t, err)

	got := coerced["taken_at"].(time.Time)
	want := time.Date(2022, time.March, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, got, want, "parsed time is different")
}

func TestCoerceDateTimeInvalid(t *testing.T) {
	schema := dynschema.Schema{"taken_at": {Type: dynschema.FieldTypeDateTime}}
	properties := map[string]interface{}{"taken_at": "not a date"}

	coerced, err := dynschema.Coerce(properties, schema, "")
	if err == nil {
		t.Error("we are expecting error")
	}
	//the original value stays in the map for the validator to flag
	assert.Equal(t, coerced["taken_at"], "not a date", "value is different")
}

func TestCoerceObjectID(t *testing.T) {
	schema := dynschema.Schema{"image": {Type: dynschema.FieldTypeObjectID}}
	properties := map[string]interface{}{"image": "507f1f77bcf86cd799439011"}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)

	got, ok := coerced["image"].(primitive.ObjectID)
	if !ok {
		t.Fatalf("image is not an ObjectID: %T", coerced["image"])
	}
	assert.Equal(t, got.Hex(), "507f1f77bcf86cd799439011", "object id is different")
}

func TestCoerceObjectIDEmpty(t *testing.T) {
	schema := dynschema.Schema{"image": {Type: dynschema.FieldTypeObjectID, Nullable: true}}
	properties := map[string]interface{}{"image": ""}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)
	if coerced["image"] != nil {
		t.Errorf("empty object id must coerce to nil, got %v", coerced["image"])
	}
}

func TestCoerceListSentinels(t *testing.T) {
	schema := dynschema.Schema{"tags": {Type: dynschema.FieldTypeList}}

	for _, sentinel := range []string{"", "[]"} {
		properties := map[string]interface{}{"tags": sentinel}

		coerced, err := dynschema.Coerce(properties, schema, "")
		assert.NilError(t, err)

		got, ok := coerced["tags"].([]interface{})
		if !ok {
			t.Fatalf("tags is not a slice: %T", coerced["tags"])
		}
		assert.Equal(t, len(got), 0, "sentinel must coerce to an empty list")
	}
}

func TestCoerceListItems(t *testing.T) {
	schema := dynschema.Schema{"images": {Type: dynschema.FieldTypeList,
		Items: &dynschema.FieldSpec{Type: dynschema.FieldTypeObjectID}}}
	properties := map[string]interface{}{"images": []interface{}{"507f1f77bcf86cd799439011", "507f191e810c19729de860ea"}}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)

	items := coerced["images"].([]interface{})
	for i, item := range items {
		if _, ok := item.(primitive.ObjectID); !ok {
			t.Errorf("item %d is not an ObjectID: %T", i, item)
		}
	}
}

func TestCoerceNestedDict(t *testing.T) {
	schema := dynschema.Schema{"meta": {Type: dynschema.FieldTypeDict,
		Dict: dynschema.Schema{"created": {Type: dynschema.FieldTypeDateTime}}}}
	properties := map[string]interface{}{"meta": map[string]interface{}{"created": "Tue, 15 Mar 2022 10:30:00 GMT"}}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)

	meta := coerced["meta"].(map[string]interface{})
	if _, ok := meta["created"].(time.Time); !ok {
		t.Errorf("meta.created is not a time.Time: %T", meta["created"])
	}
}

func TestCoerceDictValuesRules(t *testing.T) {
	schema := dynschema.Schema{"attachments": {Type: dynschema.FieldTypeDict,
		Values: &dynschema.FieldSpec{Type: dynschema.FieldTypeObjectID}}}
	properties := map[string]interface{}{"attachments": map[string]interface{}{
		"front": "507f1f77bcf86cd799439011",
		"back":  "507f191e810c19729de860ea",
	}}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)

	attachments := coerced["attachments"].(map[string]interface{})
	for key, value := range attachments {
		if _, ok := value.(primitive.ObjectID); !ok {
			t.Errorf("attachments.%s is not an ObjectID: %T", key, value)
		}
	}
}

func TestCoerceIdempotent(t *testing.T) {
	schema := dynschema.Schema{
		"taken_at": {Type: dynschema.FieldTypeDateTime},
		"image":    {Type: dynschema.FieldTypeObjectID},
	}
	properties := map[string]interface{}{
		"taken_at": "Tue, 15 Mar 2022 10:30:00 GMT",
		"image":    "507f1f77bcf86cd799439011",
	}

	once, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)

	//coercing already coerced values must be a no-op
	twice, err := dynschema.Coerce(once, schema, "")
	assert.NilError(t, err)

	assert.Equal(t, twice["taken_at"], once["taken_at"], "datetime changed on second coercion")
	assert.Equal(t, twice["image"], once["image"], "object id changed on second coercion")
}

func TestCoerceSkipsAbsentFields(t *testing.T) {
	schema := dynschema.Schema{
		"taken_at": {Type: dynschema.FieldTypeDateTime, Required: true},
		"notes":    {Type: dynschema.FieldTypeString},
	}
	properties := map[string]interface{}{"notes": "hello"}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)
	assert.Equal(t, len(coerced), 1, "absent fields must not be materialized")
}

func TestCoercePrimitiveContainers(t *testing.T) {
	//bson decodes nested documents as primitive.M and arrays as primitive.A
	schema := dynschema.Schema{"meta": {Type: dynschema.FieldTypeDict,
		Dict: dynschema.Schema{"ids": {Type: dynschema.FieldTypeList,
			Items: &dynschema.FieldSpec{Type: dynschema.FieldTypeObjectID}}}}}
	properties := map[string]interface{}{"meta": primitive.M{"ids": primitive.A{"507f1f77bcf86cd799439011"}}}

	coerced, err := dynschema.Coerce(properties, schema, "")
	assert.NilError(t, err)

	meta, ok := coerced["meta"].(map[string]interface{})
	if !ok {
		t.Fatalf("meta is not a map: %T", coerced["meta"])
	}
	ids, ok := meta["ids"].([]interface{})
	if !ok {
		t.Fatalf("meta.ids is not a slice: %T", meta["ids"])
	}
	if _, ok := ids[0].(primitive.ObjectID); !ok {
		t.Errorf("meta.ids.0 is not an ObjectID: %T", ids[0])
	}
}
