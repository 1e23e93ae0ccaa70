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

package storage

import (
	"context"
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	db       *mongo.Database
	dbClient *mongo.Client

	logger *logs.Logger

	organizations *collectionWrapper
	users         *collectionWrapper
	projects      *collectionWrapper
	nodes         *collectionWrapper

	onProjectsChanged func()
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	organizations := &collectionWrapper{database: m, coll: db.Collection("organizations")}
	err = m.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	users := &collectionWrapper{database: m, coll: db.Collection("users")}
	err = m.applyUsersChecks(users)
	if err != nil {
		return err
	}

	projects := &collectionWrapper{database: m, coll: db.Collection("projects")}
	err = m.applyProjectsChecks(projects)
	if err != nil {
		return err
	}

	nodes := &collectionWrapper{database: m, coll: db.Collection("nodes")}
	err = m.applyNodesChecks(nodes)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.organizations = organizations
	m.users = users
	m.projects = projects
	m.nodes = nodes

	//watch projects so the cached node types stay fresh
	go projects.Watch(nil, m.logger)

	return nil
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add name index - unique
	err := organizations.AddIndex(bson.D{primitive.E{Key: "name", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add members index
	err = organizations.AddIndex(bson.D{primitive.E{Key: "members", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) applyUsersChecks(users *collectionWrapper) error {
	m.logger.Info("apply users checks.....")

	//add email index - unique
	err := users.AddIndex(bson.D{primitive.E{Key: "email", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("users checks passed")
	return nil
}

func (m *database) applyProjectsChecks(projects *collectionWrapper) error {
	m.logger.Info("apply projects checks.....")

	m.logger.Info("projects checks passed")
	return nil
}

func (m *database) applyNodesChecks(nodes *collectionWrapper) error {
	m.logger.Info("apply nodes checks.....")

	//add project + node type index
	err := nodes.AddIndex(bson.D{primitive.E{Key: "project", Value: 1}, primitive.E{Key: "node_type", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("nodes checks passed")
	return nil
}

func (m *database) onDataChanged(changeDoc map[string]interface{}) {
	if changeDoc == nil {
		return
	}
	var coll string
	switch ns := changeDoc["ns"].(type) {
	case map[string]interface{}:
		coll, _ = ns["coll"].(string)
	case primitive.M:
		coll, _ = ns["coll"].(string)
	}
	if coll == "projects" && m.onProjectsChanged != nil {
		m.onProjectsChanged()
	}
}
