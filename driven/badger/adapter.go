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

package badger

import (
	"pillar-core/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	actionGrant  logutils.MessageActionType = "granting"
	actionRevoke logutils.MessageActionType = "revoking"
)

// UserRolesStorage is the subset of the storage adapter the badger needs
type UserRolesStorage interface {
	GrantUserRoles(userID string, roles []string) error
	RevokeUserRoles(userID string, roles []string) error
}

// Adapter applies role grants and revocations to user records
type Adapter struct {
	storage UserRolesStorage

	logger *logs.Logger
}

// Grant adds the given roles to the user in a single update
func (a *Adapter) Grant(userID string, roles []string) error {
	if len(roles) == 0 {
		return nil
	}

	err := a.storage.GrantUserRoles(userID, roles)
	if err != nil {
		return errors.WrapErrorAction(actionGrant, model.TypeUserRoles, logutils.StringArgs(userID), err)
	}

	a.logger.Infof("granted roles %v to user %s", roles, userID)
	return nil
}

// Revoke removes the given roles from the user in a single update
func (a *Adapter) Revoke(userID string, roles []string) error {
	if len(roles) == 0 {
		return nil
	}

	err := a.storage.RevokeUserRoles(userID, roles)
	if err != nil {
		return errors.WrapErrorAction(actionRevoke, model.TypeUserRoles, logutils.StringArgs(userID), err)
	}

	a.logger.Infof("revoked roles %v from user %s", roles, userID)
	return nil
}

// NewBadgerAdapter creates a new badger adapter instance
func NewBadgerAdapter(storage UserRolesStorage, logger *logs.Logger) *Adapter {
	return &Adapter{storage: storage, logger: logger}
}
