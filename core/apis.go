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

// APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters

	app *application
}

// Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

// AddListener adds application listener
func (c *APIs) AddListener(listener ApplicationListener) {
	c.app.addListener(listener)
}

// GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

// NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, storage Storage, roles RoleService, search SearchIndex,
	dateLayout string, reindexSchedule string, logger *logs.Logger) *APIs {
	if dateLayout == "" {
		dateLayout = dynschema.DefaultDateLayout
	}

	listeners := []ApplicationListener{}
	application := application{env: env, version: version, build: build, storage: storage, roles: roles,
		search: search, dateLayout: dateLayout, reindexSchedule: reindexSchedule, logger: logger, listeners: listeners}

	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: &application}
	return &coreAPIs
}

///

// servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerGetNode(l *logs.Log, id string) (*model.Node, error) {
	return s.app.serGetNode(l, id)
}

func (s *servicesImpl) SerCreateNode(l *logs.Log, node model.Node) (*model.Node, dynschema.Errors, error) {
	return s.app.serCreateNode(l, node)
}

func (s *servicesImpl) SerUpdateNode(l *logs.Log, node model.Node) (*model.Node, dynschema.Errors, error) {
	return s.app.serUpdateNode(l, node)
}

func (s *servicesImpl) SerDeleteNode(l *logs.Log, id string) error {
	return s.app.serDeleteNode(l, id)
}

func (s *servicesImpl) SerSearchNodes(l *logs.Log, query string, projectID *string, limit int, offset int) ([]model.NodeHit, error) {
	return s.app.serSearchNodes(l, query, projectID, limit, offset)
}

func (s *servicesImpl) SerSearchUsers(l *logs.Log, query string, limit int, offset int) ([]model.UserHit, error) {
	return s.app.serSearchUsers(l, query, limit, offset)
}

///

// administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmGetOrganizations(l *logs.Log) ([]model.Organization, error) {
	return s.app.admGetOrganizations(l)
}

func (s *administrationImpl) AdmGetOrganization(l *logs.Log, id string) (*model.Organization, error) {
	return s.app.admGetOrganization(l, id)
}

func (s *administrationImpl) AdmCreateOrganization(l *logs.Log, name string, adminUID string, seatCount int, orgRoles []string) (*model.Organization, error) {
	return s.app.admCreateOrganization(l, name, adminUID, seatCount, orgRoles)
}

func (s *administrationImpl) AdmUpdateOrganization(l *logs.Log, id string, name string, description string, website string, location string, ipRanges []string) (*model.Organization, error) {
	return s.app.admUpdateOrganization(l, id, name, description, website, location, ipRanges)
}

func (s *administrationImpl) AdmAssignOrganizationUsers(l *logs.Log, orgID string, emails []string) (*model.Organization, error) {
	return s.app.admAssignOrganizationUsers(l, orgID, emails)
}

func (s *administrationImpl) AdmRemoveOrganizationUser(l *logs.Log, orgID string, userID *string, email *string) (*model.Organization, error) {
	return s.app.admRemoveOrganizationUser(l, orgID, userID, email)
}

func (s *administrationImpl) AdmGetOrganizationMembers(l *logs.Log, orgID string) ([]model.User, error) {
	return s.app.admGetOrganizationMembers(l, orgID)
}

func (s *administrationImpl) AdmIsOrganizationAdmin(l *logs.Log, orgID string, userID string) (bool, error) {
	return s.app.admIsOrganizationAdmin(l, orgID, userID)
}

func (s *administrationImpl) AdmRefreshUserRoles(l *logs.Log, userID string) error {
	return s.app.admRefreshUserRoles(l, userID)
}
