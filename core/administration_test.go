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

func newTestCoreAPIs(storage core.Storage, roles core.RoleService) *core.APIs {
	return core.NewCoreAPIs("local", "1.1.1", "build", storage, roles, nil, "", "", logs.NewLogger("test", nil))
}

func TestAdmCreateOrganization(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("InsertOrganization", mock.AnythingOfType("model.Organization")).Return(
		func(organization model.Organization) *model.Organization { return &organization }, nil)

	coreAPIs := newTestCoreAPIs(&storage, nil)

	organization, err := coreAPIs.Administration.AdmCreateOrganization(testLog(), "Illinois", "admin-1", 5, []string{"org-editor"})
	assert.NilError(t, err)
	if organization == nil {
		t.Fatal("organization is nil")
	}
	assert.Equal(t, organization.Name, "Illinois", "name is different")
	assert.Equal(t, organization.AdminUID, "admin-1", "admin uid is different")
	assert.Equal(t, organization.SeatCount, 5, "seat count is different")
	if organization.ID == "" {
		t.Error("id was not assigned")
	}
}

func TestAdmCreateOrganizationInvalidSeatCount(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := newTestCoreAPIs(&storage, nil)

	_, err := coreAPIs.Administration.AdmCreateOrganization(testLog(), "Illinois", "admin-1", 0, nil)
	if err == nil {
		t.Error("we are expecting error")
	}
	storage.AssertNotCalled(t, "InsertOrganization", mock.Anything)
}

func TestAdmAssignOrganizationUsers(t *testing.T) {
	storage := genmocks.Storage{}
	roles := genmocks.RoleService{}

	emails := []string{"alice@illinois.edu", "bob@illinois.edu"}
	storage.On("FindUsersByEmails", emails).Return([]model.User{
		{ID: "user-alice", Email: "alice@illinois.edu"}}, nil)
	storage.On("FindOrganization", "org1").Return(&model.Organization{ID: "org1", SeatCount: 2}, nil)
	storage.On("UpdateOrganizationMembers", "org1", []string{"user-alice"}, []string{"bob@illinois.edu"}).Return(nil)
	storage.On("FindOrganizationRolesForUser", "user-alice").Return([]string{"org-editor"}, nil)
	storage.On("FindUserRoles", "user-alice").Return([]string{}, nil)
	roles.On("Grant", "user-alice", []string{"org-editor"}).Return(nil)

	coreAPIs := newTestCoreAPIs(&storage, &roles)

	organization, err := coreAPIs.Administration.AdmAssignOrganizationUsers(testLog(), "org1", emails)
	assert.NilError(t, err)
	assert.DeepEqual(t, organization.Members, []string{"user-alice"})
	assert.DeepEqual(t, organization.UnknownMembers, []string{"bob@illinois.edu"})

	storage.AssertExpectations(t)
	roles.AssertExpectations(t)
	roles.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestAdmAssignOrganizationUsersNotEnoughSeats(t *testing.T) {
	storage := genmocks.Storage{}

	emails := []string{"a@illinois.edu", "b@illinois.edu", "c@illinois.edu"}
	storage.On("FindUsersByEmails", emails).Return([]model.User{}, nil)
	storage.On("FindOrganization", "org1").Return(&model.Organization{ID: "org1", SeatCount: 2}, nil)

	coreAPIs := newTestCoreAPIs(&storage, nil)

	_, err := coreAPIs.Administration.AdmAssignOrganizationUsers(testLog(), "org1", emails)
	if err == nil {
		t.Fatal("we are expecting error")
	}

	seatsErr, ok := err.(*model.NotEnoughSeatsError)
	if !ok {
		t.Fatalf("expected NotEnoughSeatsError, got %T", err)
	}
	assert.Equal(t, seatsErr.OrgID, "org1", "org id is different")
	assert.Equal(t, seatsErr.SeatCount, 2, "seat count is different")
	assert.Equal(t, seatsErr.AttemptedSeatCount, 3, "attempted seat count is different")

	//nothing must be persisted
	storage.AssertNotCalled(t, "UpdateOrganizationMembers", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmAssignOrganizationUsersIdempotent(t *testing.T) {
	storage := genmocks.Storage{}
	roles := genmocks.RoleService{}

	//alice already occupies a seat - reassigning her must not occupy a second one
	emails := []string{"alice@illinois.edu"}
	storage.On("FindUsersByEmails", emails).Return([]model.User{
		{ID: "user-alice", Email: "alice@illinois.edu"}}, nil)
	storage.On("FindOrganization", "org1").Return(&model.Organization{ID: "org1", SeatCount: 1,
		Members: []string{"user-alice"}}, nil)
	storage.On("UpdateOrganizationMembers", "org1", []string{"user-alice"}, []string{}).Return(nil)
	storage.On("FindOrganizationRolesForUser", "user-alice").Return([]string{}, nil)
	storage.On("FindUserRoles", "user-alice").Return([]string{}, nil)

	coreAPIs := newTestCoreAPIs(&storage, &roles)

	organization, err := coreAPIs.Administration.AdmAssignOrganizationUsers(testLog(), "org1", emails)
	assert.NilError(t, err)
	assert.DeepEqual(t, organization.Members, []string{"user-alice"})
}

func TestAdmRemoveOrganizationUser(t *testing.T) {
	storage := genmocks.Storage{}
	roles := genmocks.RoleService{}

	//removal by id also cleans a stale email entry from the unknown members
	userID := "user-alice"
	storage.On("FindUser", "user-alice").Return(&model.User{ID: "user-alice", Email: "alice@illinois.edu"}, nil)
	storage.On("FindOrganization", "org1").Return(&model.Organization{ID: "org1", SeatCount: 3,
		Members: []string{"user-alice", "user-bob"}, UnknownMembers: []string{"alice@illinois.edu"}}, nil)
	storage.On("UpdateOrganizationMembers", "org1", []string{"user-bob"}, []string{}).Return(nil)
	storage.On("FindOrganizationRolesForUser", "user-alice").Return([]string{}, nil)
	storage.On("FindUserRoles", "user-alice").Return([]string{"org-editor"}, nil)
	roles.On("Revoke", "user-alice", []string{"org-editor"}).Return(nil)

	coreAPIs := newTestCoreAPIs(&storage, &roles)

	organization, err := coreAPIs.Administration.AdmRemoveOrganizationUser(testLog(), "org1", &userID, nil)
	assert.NilError(t, err)
	assert.DeepEqual(t, organization.Members, []string{"user-bob"})
	assert.Equal(t, len(organization.UnknownMembers), 0, "stale unknown member entry must be removed")

	roles.AssertExpectations(t)
}

func TestAdmRemoveOrganizationUserNoIdentifier(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := newTestCoreAPIs(&storage, nil)

	_, err := coreAPIs.Administration.AdmRemoveOrganizationUser(testLog(), "org1", nil, nil)
	if err == nil {
		t.Error("we are expecting error")
	}
}

func TestAdmRefreshUserRoles(t *testing.T) {
	storage := genmocks.Storage{}
	roles := genmocks.RoleService{}

	storage.On("FindOrganizationRolesForUser", "user-1").Return([]string{"org-a", "org-b", "org-c"}, nil)
	storage.On("FindUserRoles", "user-1").Return([]string{"org-a", "org-d", "admin"}, nil)
	roles.On("Grant", "user-1", []string{"org-b", "org-c"}).Return(nil)
	roles.On("Revoke", "user-1", []string{"org-d"}).Return(nil)

	coreAPIs := newTestCoreAPIs(&storage, &roles)

	err := coreAPIs.Administration.AdmRefreshUserRoles(testLog(), "user-1")
	assert.NilError(t, err)

	//non org- roles like "admin" are never touched
	roles.AssertExpectations(t)
}

func TestAdmIsOrganizationAdmin(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(&model.Organization{ID: "org1", AdminUID: "admin-1"}, nil)

	coreAPIs := newTestCoreAPIs(&storage, nil)

	isAdmin, err := coreAPIs.Administration.AdmIsOrganizationAdmin(testLog(), "org1", "admin-1")
	assert.NilError(t, err)
	assert.Equal(t, isAdmin, true, "admin uid must match")

	isAdmin, err = coreAPIs.Administration.AdmIsOrganizationAdmin(testLog(), "org1", "someone-else")
	assert.NilError(t, err)
	assert.Equal(t, isAdmin, false, "non admin reported as admin")
}

func TestAdmUpdateOrganizationInvalidIPRange(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := newTestCoreAPIs(&storage, nil)

	_, err := coreAPIs.Administration.AdmUpdateOrganization(testLog(), "org1", "Illinois", "", "", "", []string{"not-a-cidr"})
	if err == nil {
		t.Error("we are expecting error")
	}

	//a zero-length prefix would whitelist every address
	_, err = coreAPIs.Administration.AdmUpdateOrganization(testLog(), "org1", "Illinois", "", "", "", []string{"0.0.0.0/0"})
	if err == nil {
		t.Error("we are expecting error")
	}

	storage.AssertNotCalled(t, "UpdateOrganization", mock.Anything)
}
