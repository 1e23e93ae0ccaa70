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
	"time"
)

type organization struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`

	Description string `bson:"description,omitempty"`
	Website     string `bson:"website,omitempty"`
	Location    string `bson:"location,omitempty"`

	AdminUID  string `bson:"admin_uid"`
	SeatCount int    `bson:"seat_count"`

	Members        []string `bson:"members,omitempty"`
	UnknownMembers []string `bson:"unknown_members,omitempty"`
	OrgRoles       []string `bson:"org_roles,omitempty"`

	IPRanges []string `bson:"ip_ranges,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type user struct {
	ID string `bson:"_id"`

	Username string `bson:"username"`
	FullName string `bson:"full_name"`
	Email    string `bson:"email"`

	Roles  []string `bson:"roles,omitempty"`
	Groups []string `bson:"groups,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type project struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`

	NodeTypes []nodeType `bson:"node_types,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

type nodeType struct {
	Name      string                 `bson:"name"`
	DynSchema map[string]interface{} `bson:"dyn_schema"`
}

type node struct {
	ID string `bson:"_id"`

	Project  string `bson:"project"`
	NodeType string `bson:"node_type"`
	User     string `bson:"user"`

	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`

	Properties map[string]interface{} `bson:"properties,omitempty"`

	Tags         []string `bson:"tags,omitempty"`
	Picture      string   `bson:"picture,omitempty"`
	Media        string   `bson:"media,omitempty"`
	LicenseNotes string   `bson:"license_notes,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}
