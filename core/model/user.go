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

package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeUser user type
	TypeUser logutils.MessageDataType = "user"
	//TypeUserRoles user roles type
	TypeUserRoles logutils.MessageDataType = "user roles"
)

// User represents a known account. Authentication is delegated to an external
// identity provider - only the profile and role data lives here.
type User struct {
	ID string

	Username string
	FullName string
	Email    string

	Roles  []string
	Groups []string

	DateCreated time.Time
	DateUpdated *time.Time
}

// OrgRoles gives the subset of the user's roles that is derived from
// organization membership
func (u User) OrgRoles() []string {
	var orgRoles []string
	for _, role := range u.Roles {
		if strings.HasPrefix(role, OrgRolePrefix) {
			orgRoles = append(orgRoles, role)
		}
	}
	return orgRoles
}

func (u User) String() string {
	return fmt.Sprintf("[ID:%s\tUsername:%s\tEmail:%s]", u.ID, u.Username, u.Email)
}
