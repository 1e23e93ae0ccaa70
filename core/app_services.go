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
	"time"

	"pillar-core/core/dynschema"
	"pillar-core/core/model"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

func (app *application) serGetNode(l *logs.Log, id string) (*model.Node, error) {
	node, err := app.storage.FindNode(id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeNode, logutils.StringArgs(id), err)
	}
	if node == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeNode, logutils.StringArgs(id))
	}
	return node, nil
}

// serCreateNode validates the node's properties against the owning project's
// dynamic schema and persists it. Validation failures come back as a field
// error mapping, not as an error.
func (app *application) serCreateNode(l *logs.Log, node model.Node) (*model.Node, dynschema.Errors, error) {
	node.ID = uuid.NewString()
	node.DateCreated = time.Now().UTC()

	validationErrors, err := app.sharedValidateNodeProperties(l, &node)
	if err != nil {
		return nil, nil, err
	}
	if len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	inserted, err := app.storage.InsertNode(node)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeNode, nil, err)
	}

	app.indexNode(l, *inserted)
	return inserted, nil, nil
}

func (app *application) serUpdateNode(l *logs.Log, node model.Node) (*model.Node, dynschema.Errors, error) {
	existing, err := app.serGetNode(l, node.ID)
	if err != nil {
		return nil, nil, err
	}
	node.DateCreated = existing.DateCreated
	now := time.Now().UTC()
	node.DateUpdated = &now

	validationErrors, err := app.sharedValidateNodeProperties(l, &node)
	if err != nil {
		return nil, nil, err
	}
	if len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	err = app.storage.UpdateNode(node)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeNode, logutils.StringArgs(node.ID), err)
	}

	app.indexNode(l, node)
	return &node, nil, nil
}

func (app *application) serDeleteNode(l *logs.Log, id string) error {
	err := app.storage.DeleteNode(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeNode, logutils.StringArgs(id), err)
	}

	//the search document is removed best-effort
	err = app.search.DeleteNode(id)
	if err != nil {
		l.WarnError("error removing node from the search index", err)
	}
	return nil
}

func (app *application) serSearchNodes(l *logs.Log, query string, projectID *string, limit int, offset int) ([]model.NodeHit, error) {
	hits, err := app.search.SearchNodes(query, projectID, limit, offset)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeNode, logutils.StringArgs(query), err)
	}
	return hits, nil
}

func (app *application) serSearchUsers(l *logs.Log, query string, limit int, offset int) ([]model.UserHit, error) {
	hits, err := app.search.SearchUsers(query, limit, offset)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(query), err)
	}
	return hits, nil
}

// indexNode mirrors the node into the search index. Indexing is best-effort
// and never fails the request - failures are only logged.
func (app *application) indexNode(l *logs.Log, node model.Node) {
	projectName := ""
	project, err := app.storage.FindProjectNodeTypes(node.Project)
	if err == nil && project != nil {
		projectName = project.Name
	}

	userName := ""
	user, err := app.storage.FindUser(node.User)
	if err == nil && user != nil {
		userName = user.FullName
	}

	err = app.search.IndexNode(node, projectName, userName)
	if err != nil {
		l.WarnError("error indexing node", err)
	}
}
