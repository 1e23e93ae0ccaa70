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

	"github.com/rokwire/logging-library-go/v2/logs"
)

// Services exposes the APIs for the driver adapters on behalf of regular users
type Services interface {
	SerGetNode(l *logs.Log, id string) (*model.Node, error)
	SerCreateNode(l *logs.Log, node model.Node) (*model.Node, dynschema.Errors, error)
	SerUpdateNode(l *logs.Log, node model.Node) (*model.Node, dynschema.Errors, error)
	SerDeleteNode(l *logs.Log, id string) error

	SerSearchNodes(l *logs.Log, query string, projectID *string, limit int, offset int) ([]model.NodeHit, error)
	SerSearchUsers(l *logs.Log, query string, limit int, offset int) ([]model.UserHit, error)
}

// Administration exposes the APIs for the driver adapters on behalf of administrators
type Administration interface {
	AdmGetOrganizations(l *logs.Log) ([]model.Organization, error)
	AdmGetOrganization(l *logs.Log, id string) (*model.Organization, error)
	AdmCreateOrganization(l *logs.Log, name string, adminUID string, seatCount int, orgRoles []string) (*model.Organization, error)
	AdmUpdateOrganization(l *logs.Log, id string, name string, description string, website string, location string, ipRanges []string) (*model.Organization, error)

	AdmAssignOrganizationUsers(l *logs.Log, orgID string, emails []string) (*model.Organization, error)
	AdmRemoveOrganizationUser(l *logs.Log, orgID string, userID *string, email *string) (*model.Organization, error)
	AdmGetOrganizationMembers(l *logs.Log, orgID string) ([]model.User, error)
	AdmIsOrganizationAdmin(l *logs.Log, orgID string, userID string) (bool, error)

	AdmRefreshUserRoles(l *logs.Log, userID string) error
}

// Storage is the interface the core expects from the storage adapter
type Storage interface {
	RegisterStorageListener(listener StorageListener)

	//Organizations
	FindOrganization(id string) (*model.Organization, error)
	FindOrganizations() ([]model.Organization, error)
	InsertOrganization(organization model.Organization) (*model.Organization, error)
	UpdateOrganization(organization model.Organization) error
	UpdateOrganizationMembers(id string, members []string, unknownMembers []string) error
	FindOrganizationRolesForUser(userID string) ([]string, error)

	//Users
	FindUser(id string) (*model.User, error)
	FindUserByEmail(email string) (*model.User, error)
	FindUsersByEmails(emails []string) ([]model.User, error)
	FindUsersByIDs(ids []string) ([]model.User, error)
	FindUserRoles(userID string) ([]string, error)

	//Projects
	FindProjectNodeTypes(id string) (*model.Project, error)

	//Nodes
	FindNode(id string) (*model.Node, error)
	FindNodes(limit int, offset int) ([]model.Node, error)
	InsertNode(node model.Node) (*model.Node, error)
	UpdateNode(node model.Node) error
	DeleteNode(id string) error
}

// StorageListener is notified on storage data changes
type StorageListener interface {
	OnProjectsUpdated()
}

// RoleService grants and revokes user roles. Grant and revoke each take the
// whole batch in a single call.
type RoleService interface {
	Grant(userID string, roles []string) error
	Revoke(userID string, roles []string) error
}

// SearchIndex mirrors nodes and users into the external search index
type SearchIndex interface {
	IndexNode(node model.Node, projectName string, userName string) error
	IndexUser(user model.User) error
	DeleteNode(id string) error

	SearchNodes(query string, projectID *string, limit int, offset int) ([]model.NodeHit, error)
	SearchUsers(query string, limit int, offset int) ([]model.UserHit, error)
}

// ApplicationListener represents application listener
type ApplicationListener interface {
	OnProjectsUpdated()
}
