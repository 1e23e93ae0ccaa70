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

package search

import (
	"context"
	"encoding/json"

	"pillar-core/core/model"

	"github.com/olivere/elastic/v7"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// Adapter implements the SearchIndex interface on Elasticsearch
type Adapter struct {
	url    string
	client *elastic.Client

	logger *logs.Logger
}

// Start connects to the Elasticsearch cluster and ensures the indices exist
func (sa *Adapter) Start() error {
	client, err := elastic.NewClient(elastic.SetURL(sa.url), elastic.SetSniff(false))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "elasticsearch client", logutils.StringArgs(sa.url), err)
	}
	sa.client = client

	err = sa.ensureIndex(nodesIndex, nodesIndexBody)
	if err != nil {
		return err
	}
	return sa.ensureIndex(usersIndex, usersIndexBody)
}

func (sa *Adapter) ensureIndex(name string, body string) error {
	ctx := context.Background()

	exists, err := sa.client.IndexExists(name).Do(ctx)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, "search index", logutils.StringArgs(name), err)
	}
	if exists {
		return nil
	}

	sa.logger.Infof("creating search index %s", name)
	_, err = sa.client.CreateIndex(name).BodyString(body).Do(ctx)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCreate, "search index", logutils.StringArgs(name), err)
	}
	return nil
}

// IndexNode upserts the search document for a node
func (sa *Adapter) IndexNode(node model.Node, projectName string, userName string) error {
	doc := nodeDocument{ObjectID: node.ID, NodeType: node.NodeType, Name: node.Name,
		Description: node.Description,
		User:        namedEntity{ID: node.User, Name: userName},
		Project:     namedEntity{ID: node.Project, Name: projectName},
		Media:       node.Media, Picture: node.Picture, Tags: node.Tags, LicenseNotes: node.LicenseNotes,
		CreatedAt: node.DateCreated, UpdatedAt: node.DateUpdated}

	_, err := sa.client.Index().Index(nodesIndex).Id(node.ID).BodyJson(doc).Do(context.Background())
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeNode, logutils.StringArgs(node.ID), err)
	}
	return nil
}

// IndexUser upserts the search document for a user
func (sa *Adapter) IndexUser(user model.User) error {
	doc := userDocument{ObjectID: user.ID, Username: user.Username, FullName: user.FullName,
		Email: user.Email, Roles: user.Roles, Groups: user.Groups}

	_, err := sa.client.Index().Index(usersIndex).Id(user.ID).BodyJson(doc).Do(context.Background())
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUser, logutils.StringArgs(user.ID), err)
	}
	return nil
}

// DeleteNode removes a node document from the index. Missing documents are
// not an error - the node may never have been indexed.
func (sa *Adapter) DeleteNode(id string) error {
	_, err := sa.client.Delete().Index(nodesIndex).Id(id).Do(context.Background())
	if err != nil {
		if elastic.IsNotFound(err) {
			return nil
		}
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeNode, logutils.StringArgs(id), err)
	}
	return nil
}

// SearchNodes runs a full text query over the nodes index, optionally
// filtered to a single project
func (sa *Adapter) SearchNodes(query string, projectID *string, limit int, offset int) ([]model.NodeHit, error) {
	match := elastic.NewMultiMatchQuery(query, "name", "description", "tags").Type("most_fields")

	var search elastic.Query = match
	if projectID != nil {
		search = elastic.NewBoolQuery().Must(match).Filter(elastic.NewTermQuery("project.id", *projectID))
	}

	result, err := sa.client.Search().Index(nodesIndex).Query(search).
		From(offset).Size(limit).Do(context.Background())
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeNode, logutils.StringArgs(query), err)
	}

	hits := make([]model.NodeHit, len(result.Hits.Hits))
	for i, hit := range result.Hits.Hits {
		var doc nodeDocument
		err = json.Unmarshal(hit.Source, &doc)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionUnmarshal, model.TypeNode, logutils.StringArgs(hit.Id), err)
		}

		score := 0.0
		if hit.Score != nil {
			score = *hit.Score
		}
		hits[i] = model.NodeHit{ID: doc.ObjectID, Name: doc.Name, Description: doc.Description,
			NodeType: doc.NodeType, ProjectID: doc.Project.ID, ProjectName: doc.Project.Name, Score: score}
	}
	return hits, nil
}

// SearchUsers runs a full text query over the users index
func (sa *Adapter) SearchUsers(query string, limit int, offset int) ([]model.UserHit, error) {
	match := elastic.NewMultiMatchQuery(query, "username", "full_name", "email").Type("most_fields")

	result, err := sa.client.Search().Index(usersIndex).Query(match).
		From(offset).Size(limit).Do(context.Background())
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(query), err)
	}

	hits := make([]model.UserHit, len(result.Hits.Hits))
	for i, hit := range result.Hits.Hits {
		var doc userDocument
		err = json.Unmarshal(hit.Source, &doc)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionUnmarshal, model.TypeUser, logutils.StringArgs(hit.Id), err)
		}

		score := 0.0
		if hit.Score != nil {
			score = *hit.Score
		}
		hits[i] = model.UserHit{ID: doc.ObjectID, Username: doc.Username, FullName: doc.FullName,
			Email: doc.Email, Score: score}
	}
	return hits, nil
}

// NewSearchAdapter creates a new search adapter instance
func NewSearchAdapter(url string, logger *logs.Logger) *Adapter {
	return &Adapter{url: url, logger: logger}
}
