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
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeOrganization organization type
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeIPRange organization ip range type
	TypeIPRange logutils.MessageDataType = "ip range"

	//OrgRolePrefix marks roles that are given to users by organization membership.
	//Such roles are never hand-edited on the user - they are recomputed from the
	//user's current memberships.
	OrgRolePrefix string = "org-"
)

// Organization represents a billing/membership group. It has a seat limit and
// a set of roles granted to every member.
//
//	A seat is consumed by either a known user (members) or an email address
//	that has not been matched to a user yet (unknown_members).
type Organization struct {
	ID   string
	Name string

	Description string
	Website     string
	Location    string

	AdminUID  string
	SeatCount int

	Members        []string //user IDs
	UnknownMembers []string //email addresses
	OrgRoles       []string

	IPRanges []string

	DateCreated time.Time
	DateUpdated *time.Time
}

// SeatsUsed gives the number of occupied seats
func (o Organization) SeatsUsed() int {
	return len(o.Members) + len(o.UnknownMembers)
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tAdminUID:%s\tSeatCount:%d\tSeatsUsed:%d]",
		o.ID, o.Name, o.AdminUID, o.SeatCount, o.SeatsUsed())
}

// NotEnoughSeatsError is returned when a membership change would exceed the
// organization's seat count. The operation is rejected as a whole - membership
// is never truncated to fit.
type NotEnoughSeatsError struct {
	OrgID              string
	SeatCount          int
	AttemptedSeatCount int
}

func (e *NotEnoughSeatsError) Error() string {
	return fmt.Sprintf("organization %s has %d seats, refusing to occupy %d", e.OrgID, e.SeatCount, e.AttemptedSeatCount)
}
