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

package core

import (
	"pillar-core/core/dynschema"
	"pillar-core/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// sharedValidateNodeProperties resolves the dynamic schema for the node - the
// owning project's node type entry - then coerces and validates the node's
// properties against it. The coerced properties are written back to the node.
//
// Unknown project and unknown node type are reported through the same field
// error channel as coercion/validation failures. Coercion failures are logged
// and do not abort validation - the validator runs on whatever partial
// coercion succeeded.
func (app *application) sharedValidateNodeProperties(l *logs.Log, node *model.Node) (dynschema.Errors, error) {
	project, err := app.storage.FindProjectNodeTypes(node.Project)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeProject, logutils.StringArgs(node.Project), err)
	}
	if project == nil {
		l.Warnf("unknown project %s, declared by node %s", node.Project, node.ID)
		return dynschema.Errors{"properties": {"Unknown project"}}, nil
	}

	nodeType := project.FindNodeType(node.NodeType)
	if nodeType == nil {
		l.Warnf("project %s has no node type %s, declared by node %s", project.ID, node.NodeType, node.ID)
		return dynschema.Errors{"properties": {"Unknown node type"}}, nil
	}

	schema, err := dynschema.ParseSchema(nodeType.DynSchema)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionParse, dynschema.TypeSchema,
			&logutils.FieldArgs{"project": project.ID, "node_type": node.NodeType}, err)
	}

	properties := node.Properties
	if properties == nil {
		properties = map[string]interface{}{}
	}

	coerced, err := dynschema.Coerce(properties, schema, app.dateLayout)
	if err != nil {
		l.WarnError("error converting node properties", err)
	}
	node.Properties = coerced

	validationErrors := dynschema.Validate(coerced, schema)
	if len(validationErrors) > 0 {
		l.Warnf("error validating properties for node %s: %v", node.ID, validationErrors)
	}
	return validationErrors, nil
}

// reindexSearch pages all nodes out of storage and mirrors them into the
// search index. Runs on the configured cron schedule.
func (app *application) reindexSearch() {
	app.logger.Info("search reindex starting")

	const pageSize = 100
	offset := 0
	indexed := 0
	for {
		nodes, err := app.storage.FindNodes(pageSize, offset)
		if err != nil {
			app.logger.Errorf("search reindex: error loading nodes: %v", err)
			return
		}
		if len(nodes) == 0 {
			break
		}

		l := app.logger.NewLog("search-reindex", logs.RequestContext{})
		for _, node := range nodes {
			app.indexNode(l, node)
			indexed++
		}
		offset += len(nodes)
	}

	app.logger.Infof("search reindex complete, %d nodes", indexed)
}
