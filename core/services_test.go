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

package core_test

import (
	"testing"

	core "pillar-core/core"
	genmocks "pillar-core/core/mocks"
	"pillar-core/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func newTestCoreAPIsWithSearch(storage core.Storage, search core.SearchIndex) *core.APIs {
	return core.NewCoreAPIs("local", "1.1.1", "build", storage, nil, search, "", "", logs.NewLogger("test", nil))
}

func testProject() *model.Project {
	return &model.Project{ID: "proj1", Name: "Herbarium", NodeTypes: []model.NodeType{
		{Name: "specimen", DynSchema: map[string]interface{}{
			"label":    map[string]interface{}{"type": "string", "required": true},
			"taken_at": map[string]interface{}{"type": "datetime"},
		}},
	}}
}

func TestSerCreateNode(t *testing.T) {
	storage := genmocks.Storage{}
	search := genmocks.SearchIndex{}

	storage.On("FindProjectNodeTypes", "proj1").Return(testProject(), nil)
	storage.On("InsertNode", mock.AnythingOfType("model.Node")).Return(
		func(node model.Node) *model.Node { return &node }, nil)
	storage.On("FindUser", "user-1").Return(&model.User{ID: "user-1", FullName: "Alice A"}, nil)
	search.On("IndexNode", mock.AnythingOfType("model.Node"), "Herbarium", "Alice A").Return(nil)

	coreAPIs := newTestCoreAPIsWithSearch(&storage, &search)

	node := model.Node{Project: "proj1", NodeType: "specimen", User: "user-1", Name: "leaf",
		Properties: map[string]interface{}{
			"label":    "Acer saccharum",
			"taken_at": "Tue, 15 Mar 2022 10:30:00 GMT",
		}}

	created, validationErrors, err := coreAPIs.Services.SerCreateNode(testLog(), node)
	assert.NilError(t, err)
	assert.Equal(t, len(validationErrors), 0, "no validation errors expected")
	if created == nil {
		t.Fatal("created node is nil")
	}
	if created.ID == "" {
		t.Error("id was not assigned")
	}
	//the datetime property is stored coerced
	if _, ok := created.Properties["taken_at"].(string); ok {
		t.Error("taken_at was not coerced")
	}

	search.AssertExpectations(t)
}

func TestSerCreateNodeUnknownProject(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindProjectNodeTypes", "missing").Return(nil, nil)

	coreAPIs := newTestCoreAPIsWithSearch(&storage, nil)

	node := model.Node{Project: "missing", NodeType: "specimen", User: "user-1", Name: "leaf"}

	created, validationErrors, err := coreAPIs.Services.SerCreateNode(testLog(), node)
	assert.NilError(t, err)
	if created != nil {
		t.Error("no node must be created")
	}
	assert.Equal(t, validationErrors["properties"][0], "Unknown project", "message is different")

	storage.AssertNotCalled(t, "InsertNode", mock.Anything)
}

func TestSerCreateNodeUnknownNodeType(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindProjectNodeTypes", "proj1").Return(testProject(), nil)

	coreAPIs := newTestCoreAPIsWithSearch(&storage, nil)

	node := model.Node{Project: "proj1", NodeType: "painting", User: "user-1", Name: "leaf"}

	_, validationErrors, err := coreAPIs.Services.SerCreateNode(testLog(), node)
	assert.NilError(t, err)
	assert.Equal(t, validationErrors["properties"][0], "Unknown node type", "message is different")

	storage.AssertNotCalled(t, "InsertNode", mock.Anything)
}

func TestSerCreateNodeInvalidProperties(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindProjectNodeTypes", "proj1").Return(testProject(), nil)

	coreAPIs := newTestCoreAPIsWithSearch(&storage, nil)

	node := model.Node{Project: "proj1", NodeType: "specimen", User: "user-1", Name: "leaf",
		Properties: map[string]interface{}{"surprise": true}}

	_, validationErrors, err := coreAPIs.Services.SerCreateNode(testLog(), node)
	assert.NilError(t, err)
	assert.Equal(t, validationErrors["surprise"][0], "unknown field", "message is different")
	assert.Equal(t, validationErrors["label"][0], "required field", "message is different")

	storage.AssertNotCalled(t, "InsertNode", mock.Anything)
}

func TestSerUpdateNodePreservesDateCreated(t *testing.T) {
	storage := genmocks.Storage{}
	search := genmocks.SearchIndex{}

	existing := model.Node{ID: "node1", Project: "proj1", NodeType: "specimen", User: "user-1",
		Name: "leaf", Properties: map[string]interface{}{"label": "old"}}
	storage.On("FindNode", "node1").Return(&existing, nil)
	storage.On("FindProjectNodeTypes", "proj1").Return(testProject(), nil)
	storage.On("UpdateNode", mock.AnythingOfType("model.Node")).Return(nil)
	storage.On("FindUser", "user-1").Return(&model.User{ID: "user-1", FullName: "Alice A"}, nil)
	search.On("IndexNode", mock.AnythingOfType("model.Node"), "Herbarium", "Alice A").Return(nil)

	coreAPIs := newTestCoreAPIsWithSearch(&storage, &search)

	update := model.Node{ID: "node1", Project: "proj1", NodeType: "specimen", User: "user-1",
		Name: "leaf", Properties: map[string]interface{}{"label": "new"}}

	updated, validationErrors, err := coreAPIs.Services.SerUpdateNode(testLog(), update)
	assert.NilError(t, err)
	assert.Equal(t, len(validationErrors), 0, "no validation errors expected")
	assert.Equal(t, updated.DateCreated, existing.DateCreated, "date created must be preserved")
	if updated.DateUpdated == nil {
		t.Error("date updated was not set")
	}
}

func TestSerDeleteNode(t *testing.T) {
	storage := genmocks.Storage{}
	search := genmocks.SearchIndex{}

	storage.On("DeleteNode", "node1").Return(nil)
	search.On("DeleteNode", "node1").Return(nil)

	coreAPIs := newTestCoreAPIsWithSearch(&storage, &search)

	err := coreAPIs.Services.SerDeleteNode(testLog(), "node1")
	assert.NilError(t, err)

	storage.AssertExpectations(t)
	search.AssertExpectations(t)
}

func TestSerSearchNodes(t *testing.T) {
	storage := genmocks.Storage{}
	search := genmocks.SearchIndex{}

	projectID := "proj1"
	search.On("SearchNodes", "maple", &projectID, 20, 0).Return([]model.NodeHit{
		{ID: "node1", Name: "maple leaf", ProjectID: "proj1", Score: 1.5}}, nil)

	coreAPIs := newTestCoreAPIsWithSearch(&storage, &search)

	hits, err := coreAPIs.Services.SerSearchNodes(testLog(), "maple", &projectID, 20, 0)
	assert.NilError(t, err)
	assert.Equal(t, len(hits), 1, "hit count is different")
	assert.Equal(t, hits[0].ID, "node1", "hit id is different")
}
