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
	"strconv"
	"sync"
	"time"

	"pillar-core/core"
	"pillar-core/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/syncmap"
)

// Adapter implements the core Storage interface
type Adapter struct {
	db     *database
	logger *logs.Logger

	//node-type projections are cached per project; a change stream on the
	//projects collection invalidates the cache
	cachedProjects *syncmap.Map
	projectsLock   *sync.RWMutex

	listeners []core.StorageListener
}

// Start starts the storage
func (sa *Adapter) Start() error {
	sa.db.onProjectsChanged = sa.onProjectsChanged

	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}

	return nil
}

// RegisterStorageListener registers a data change listener with the storage adapter
func (sa *Adapter) RegisterStorageListener(listener core.StorageListener) {
	sa.listeners = append(sa.listeners, listener)
}

func (sa *Adapter) onProjectsChanged() {
	sa.clearCachedProjects()

	for _, listener := range sa.listeners {
		listener.OnProjectsUpdated()
	}
}

// Organizations

// FindOrganization finds an organization by id, nil when missing
func (sa *Adapter) FindOrganization(id string) (*model.Organization, error) {
	filter := bson.M{"_id": id}
	var result organization
	err := sa.db.organizations.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, logutils.StringArgs(id), err)
	}

	organization := organizationFromStorage(result)
	return &organization, nil
}

// FindOrganizations finds all organizations
func (sa *Adapter) FindOrganizations() ([]model.Organization, error) {
	var result []organization
	err := sa.db.organizations.Find(nil, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return organizationsFromStorage(result), nil
}

// InsertOrganization inserts a new organization
func (sa *Adapter) InsertOrganization(item model.Organization) (*model.Organization, error) {
	stored := organizationToStorage(item)
	_, err := sa.db.organizations.InsertOne(stored)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
	}
	return &item, nil
}

// UpdateOrganization replaces the organization document
func (sa *Adapter) UpdateOrganization(item model.Organization) error {
	now := time.Now().UTC()
	item.DateUpdated = &now

	filter := bson.M{"_id": item.ID}
	err := sa.db.organizations.ReplaceOne(filter, organizationToStorage(item), nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, logutils.StringArgs(item.ID), err)
	}
	return nil
}

// UpdateOrganizationMembers persists the organization's member sets
func (sa *Adapter) UpdateOrganizationMembers(id string, members []string, unknownMembers []string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"members":         members,
		"unknown_members": unknownMembers,
		"date_updated":    time.Now().UTC(),
	}}

	result, err := sa.db.organizations.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, logutils.StringArgs(id), err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, logutils.StringArgs(id))
	}
	return nil
}

// FindOrganizationRolesForUser aggregates the distinct org roles of every
// organization the user is a member of
func (sa *Adapter) FindOrganizationRolesForUser(userID string) ([]string, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"members": userID}},
		{"$project": bson.M{"org_roles": 1}},
		{"$unwind": bson.M{"path": "$org_roles"}},
		{"$group": bson.M{"_id": nil, "org_roles": bson.M{"$addToSet": "$org_roles"}}},
	}

	var result []struct {
		OrgRoles []string `bson:"org_roles"`
	}
	err := sa.db.organizations.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, logutils.StringArgs(userID), err)
	}

	//the user is in no organization at all
	if len(result) == 0 {
		return nil, nil
	}
	return result[0].OrgRoles, nil
}

// Users

// FindUser finds a user by id, nil when missing
func (sa *Adapter) FindUser(id string) (*model.User, error) {
	filter := bson.M{"_id": id}
	var result user
	err := sa.db.users.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(id), err)
	}

	user := userFromStorage(result)
	return &user, nil
}

// FindUserByEmail finds a user by email, nil when missing
func (sa *Adapter) FindUserByEmail(email string) (*model.User, error) {
	filter := bson.M{"email": email}
	var result user
	err := sa.db.users.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(email), err)
	}

	user := userFromStorage(result)
	return &user, nil
}

// FindUsersByEmails finds the known users among the given emails
func (sa *Adapter) FindUsersByEmails(emails []string) ([]model.User, error) {
	filter := bson.M{"email": bson.M{"$in": emails}}
	var result []user
	err := sa.db.users.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}
	return usersFromStorage(result), nil
}

// FindUsersByIDs finds users by their ids
func (sa *Adapter) FindUsersByIDs(ids []string) ([]model.User, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}
	var result []user
	err := sa.db.users.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}
	return usersFromStorage(result), nil
}

// FindUserRoles gives the user's current roles
func (sa *Adapter) FindUserRoles(userID string) ([]string, error) {
	filter := bson.M{"_id": userID}
	var result user
	err := sa.db.users.FindOne(filter, &result, options.FindOne().SetProjection(bson.M{"roles": 1}))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrorData(logutils.StatusMissing, model.TypeUser, logutils.StringArgs(userID))
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUserRoles, logutils.StringArgs(userID), err)
	}
	return result.Roles, nil
}

// GrantUserRoles adds the roles to the user in a single batch call
func (sa *Adapter) GrantUserRoles(userID string, roles []string) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$addToSet": bson.M{"roles": bson.M{"$each": roles}}}

	result, err := sa.db.users.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUserRoles, logutils.StringArgs(userID), err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeUser, logutils.StringArgs(userID))
	}
	return nil
}

// RevokeUserRoles removes the roles from the user in a single batch call
func (sa *Adapter) RevokeUserRoles(userID string, roles []string) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$pullAll": bson.M{"roles": roles}}

	result, err := sa.db.users.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUserRoles, logutils.StringArgs(userID), err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeUser, logutils.StringArgs(userID))
	}
	return nil
}

// Projects

// FindProjectNodeTypes finds a project projected to its name and node type
// schemas, nil when missing. The projection is cached until the projects
// collection changes.
func (sa *Adapter) FindProjectNodeTypes(id string) (*model.Project, error) {
	cached := sa.getCachedProject(id)
	if cached != nil {
		return cached, nil
	}

	filter := bson.M{"_id": id}
	projection := bson.M{"name": 1, "node_types.name": 1, "node_types.dyn_schema": 1}

	var result project
	err := sa.db.projects.FindOne(filter, &result, options.FindOne().SetProjection(projection))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeProject, logutils.StringArgs(id), err)
	}

	project := projectFromStorage(result)
	sa.setCachedProject(project)
	return &project, nil
}

func (sa *Adapter) getCachedProject(id string) *model.Project {
	sa.projectsLock.RLock()
	defer sa.projectsLock.RUnlock()

	item, _ := sa.cachedProjects.Load(id)
	if item == nil {
		return nil
	}
	project, ok := item.(model.Project)
	if !ok {
		return nil
	}
	return &project
}

func (sa *Adapter) setCachedProject(project model.Project) {
	sa.projectsLock.Lock()
	defer sa.projectsLock.Unlock()

	sa.cachedProjects.Store(project.ID, project)
}

func (sa *Adapter) clearCachedProjects() {
	sa.projectsLock.Lock()
	defer sa.projectsLock.Unlock()

	sa.cachedProjects = &syncmap.Map{}
}

// Nodes

// FindNode finds a node by id, nil when missing
func (sa *Adapter) FindNode(id string) (*model.Node, error) {
	filter := bson.M{"_id": id}
	var result node
	err := sa.db.nodes.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeNode, logutils.StringArgs(id), err)
	}

	node := nodeFromStorage(result)
	return &node, nil
}

// FindNodes pages through all nodes ordered by id
func (sa *Adapter) FindNodes(limit int, offset int) ([]model.Node, error) {
	findOptions := options.Find().SetSort(bson.M{"_id": 1}).SetLimit(int64(limit)).SetSkip(int64(offset))

	var result []node
	err := sa.db.nodes.Find(nil, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeNode, nil, err)
	}
	return nodesFromStorage(result), nil
}

// InsertNode inserts a new node
func (sa *Adapter) InsertNode(item model.Node) (*model.Node, error) {
	_, err := sa.db.nodes.InsertOne(nodeToStorage(item))
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeNode, nil, err)
	}
	return &item, nil
}

// UpdateNode replaces the node document
func (sa *Adapter) UpdateNode(item model.Node) error {
	filter := bson.M{"_id": item.ID}
	err := sa.db.nodes.ReplaceOne(filter, nodeToStorage(item), nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeNode, logutils.StringArgs(item.ID), err)
	}
	return nil
}

// DeleteNode deletes a node
func (sa *Adapter) DeleteNode(id string) error {
	filter := bson.M{"_id": id}
	result, err := sa.db.nodes.DeleteOne(filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeNode, logutils.StringArgs(id), err)
	}
	if result.DeletedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeNode, logutils.StringArgs(id))
	}
	return nil
}

// NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeout, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("setting default Mongo timeout - 500")
		timeout = 500
	}
	timeoutMS := time.Millisecond * time.Duration(timeout)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeoutMS, logger: logger}
	return &Adapter{db: db, logger: logger, cachedProjects: &syncmap.Map{}, projectsLock: &sync.RWMutex{}}
}
