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
	"net/netip"
	"strings"
	"time"

	"pillar-core/core/model"
	"pillar-core/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	actionGrant  logutils.MessageActionType = "granting"
	actionRevoke logutils.MessageActionType = "revoking"
)

// Organization management. These operations do NOT check caller permissions -
// the driver adapter is responsible for that.

func (app *application) admGetOrganizations(l *logs.Log) ([]model.Organization, error) {
	organizations, err := app.storage.FindOrganizations()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return organizations, nil
}

func (app *application) admGetOrganization(l *logs.Log, id string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, logutils.StringArgs(id), err)
	}
	if organization == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, logutils.StringArgs(id))
	}
	return organization, nil
}

func (app *application) admCreateOrganization(l *logs.Log, name string, adminUID string, seatCount int, orgRoles []string) (*model.Organization, error) {
	if seatCount < 1 {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"seat_count": seatCount})
	}

	organization := model.Organization{ID: uuid.NewString(), Name: name, AdminUID: adminUID,
		SeatCount: seatCount, OrgRoles: orgRoles, DateCreated: time.Now().UTC()}

	inserted, err := app.storage.InsertOrganization(organization)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, logutils.StringArgs(name), err)
	}

	l.Infof("created organization %s for admin %s with %d seats", inserted.ID, adminUID, seatCount)
	return inserted, nil
}

func (app *application) admUpdateOrganization(l *logs.Log, id string, name string, description string, website string, location string, ipRanges []string) (*model.Organization, error) {
	for _, ipRange := range ipRanges {
		prefix, err := netip.ParsePrefix(ipRange)
		if err != nil {
			return nil, errors.WrapErrorData(logutils.StatusInvalid, model.TypeIPRange, logutils.StringArgs(ipRange), err)
		}
		if prefix.Bits() == 0 {
			return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeIPRange, &logutils.FieldArgs{"ip_range": ipRange, "reason": "zero-length prefix is not allowed"})
		}
	}

	organization, err := app.admGetOrganization(l, id)
	if err != nil {
		return nil, err
	}

	organization.Name = name
	organization.Description = description
	organization.Website = website
	organization.Location = location
	organization.IPRanges = ipRanges

	err = app.storage.UpdateOrganization(*organization)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, logutils.StringArgs(id), err)
	}
	return organization, nil
}

// admAssignOrganizationUsers assigns users to the organization by email.
// Known users are mapped to members, the rest go to unknown members. When the
// resulting seat usage exceeds the seat count the whole operation is rejected
// with a NotEnoughSeatsError and nothing is persisted.
func (app *application) admAssignOrganizationUsers(l *logs.Log, orgID string, emails []string) (*model.Organization, error) {
	l.Infof("adding %d new members to organization %s", len(emails), orgID)

	existingUsers, err := app.storage.FindUsersByEmails(emails)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}

	knownIDs := make([]string, 0, len(existingUsers))
	knownEmails := make([]string, 0, len(existingUsers))
	for _, user := range existingUsers {
		knownIDs = append(knownIDs, user.ID)
		knownEmails = append(knownEmails, user.Email)
	}
	unknownEmails := utils.StringSetSubtract(emails, knownEmails...)

	l.Infof("  - found users: %s", strings.Join(knownIDs, ", "))
	l.Infof("  - unknown users: %s", strings.Join(unknownEmails, ", "))

	organization, err := app.admGetOrganization(l, orgID)
	if err != nil {
		return nil, err
	}

	members := utils.StringSetUnion(organization.Members, knownIDs)
	unknownMembers := utils.StringSetUnion(organization.UnknownMembers, unknownEmails)

	newSeatCount := len(members) + len(unknownMembers)
	if newSeatCount > organization.SeatCount {
		l.Warnf("assign users to %s: trying to increase seats to %d, but org only has %d seats",
			orgID, newSeatCount, organization.SeatCount)
		return nil, &model.NotEnoughSeatsError{OrgID: orgID, SeatCount: organization.SeatCount, AttemptedSeatCount: newSeatCount}
	}

	err = app.storage.UpdateOrganizationMembers(orgID, members, unknownMembers)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, logutils.StringArgs(orgID), err)
	}
	organization.Members = members
	organization.UnknownMembers = unknownMembers

	//refresh the roles of the affected known users
	for _, userID := range knownIDs {
		err = app.refreshUserRoles(l, userID)
		if err != nil {
			return nil, err
		}
	}

	return organization, nil
}

// admRemoveOrganizationUser removes a user identified by user ID or email.
// The missing identifier is resolved both ways when possible, so a user
// removed by ID also has a stale email entry cleaned from the unknown members
// and vice versa.
func (app *application) admRemoveOrganizationUser(l *logs.Log, orgID string, userID *string, email *string) (*model.Organization, error) {
	if userID == nil && email == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeUser, logutils.StringArgs("user id or email"))
	}

	if email == nil {
		user, err := app.storage.FindUser(*userID)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(*userID), err)
		}
		if user != nil {
			email = &user.Email
		}
	}
	if userID == nil {
		user, err := app.storage.FindUserByEmail(*email)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(*email), err)
		}
		if user != nil {
			userID = &user.ID
		}
	}

	l.Infof("removing user %v / %v from organization %s", userID, email, orgID)

	organization, err := app.admGetOrganization(l, orgID)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		organization.Members = utils.StringSetSubtract(organization.Members, *userID)
	}
	if email != nil {
		organization.UnknownMembers = utils.StringSetSubtract(organization.UnknownMembers, *email)
	}

	err = app.storage.UpdateOrganizationMembers(orgID, organization.Members, organization.UnknownMembers)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, logutils.StringArgs(orgID), err)
	}

	if userID != nil {
		err = app.refreshUserRoles(l, *userID)
		if err != nil {
			return nil, err
		}
	}

	return organization, nil
}

func (app *application) admGetOrganizationMembers(l *logs.Log, orgID string) ([]model.User, error) {
	organization, err := app.admGetOrganization(l, orgID)
	if err != nil {
		return nil, err
	}
	if len(organization.Members) == 0 {
		return []model.User{}, nil
	}

	members, err := app.storage.FindUsersByIDs(organization.Members)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}
	return members, nil
}

func (app *application) admIsOrganizationAdmin(l *logs.Log, orgID string, userID string) (bool, error) {
	organization, err := app.admGetOrganization(l, orgID)
	if err != nil {
		return false, err
	}
	return organization.AdminUID == userID, nil
}

func (app *application) admRefreshUserRoles(l *logs.Log, userID string) error {
	return app.refreshUserRoles(l, userID)
}

// refreshUserRoles recomputes the user's organization-derived roles from the
// org roles of every organization the user is currently a member of. Roles in
// the aggregate but missing on the user are granted; org-prefixed roles on the
// user but absent from the aggregate are revoked. Grant and revoke are each a
// single batch call.
func (app *application) refreshUserRoles(l *logs.Log, userID string) error {
	orgRoles, err := app.storage.FindOrganizationRolesForUser(userID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, logutils.StringArgs(userID), err)
	}

	userRoles, err := app.storage.FindUserRoles(userID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeUserRoles, logutils.StringArgs(userID), err)
	}

	var existingOrgRoles []string
	for _, role := range userRoles {
		if strings.HasPrefix(role, model.OrgRolePrefix) {
			existingOrgRoles = append(existingOrgRoles, role)
		}
	}

	grantRoles := utils.StringSetSubtract(orgRoles, userRoles...)
	revokeRoles := utils.StringSetSubtract(existingOrgRoles, orgRoles...)

	if len(grantRoles) > 0 {
		err = app.roles.Grant(userID, grantRoles)
		if err != nil {
			return errors.WrapErrorAction(actionGrant, model.TypeUserRoles, logutils.StringArgs(userID), err)
		}
	}
	if len(revokeRoles) > 0 {
		err = app.roles.Revoke(userID, revokeRoles)
		if err != nil {
			return errors.WrapErrorAction(actionRevoke, model.TypeUserRoles, logutils.StringArgs(userID), err)
		}
	}

	return nil
}
