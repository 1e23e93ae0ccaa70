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
	"pillar-core/core/model"
)

// Organization

func organizationFromStorage(item organization) model.Organization {
	return model.Organization{ID: item.ID, Name: item.Name, Description: item.Description,
		Website: item.Website, Location: item.Location, AdminUID: item.AdminUID, SeatCount: item.SeatCount,
		Members: item.Members, UnknownMembers: item.UnknownMembers, OrgRoles: item.OrgRoles,
		IPRanges: item.IPRanges, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationsFromStorage(items []organization) []model.Organization {
	result := make([]model.Organization, len(items))
	for i, item := range items {
		result[i] = organizationFromStorage(item)
	}
	return result
}

func organizationToStorage(item model.Organization) organization {
	return organization{ID: item.ID, Name: item.Name, Description: item.Description,
		Website: item.Website, Location: item.Location, AdminUID: item.AdminUID, SeatCount: item.SeatCount,
		Members: item.Members, UnknownMembers: item.UnknownMembers, OrgRoles: item.OrgRoles,
		IPRanges: item.IPRanges, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

// User

func userFromStorage(item user) model.User {
	return model.User{ID: item.ID, Username: item.Username, FullName: item.FullName, Email: item.Email,
		Roles: item.Roles, Groups: item.Groups, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func usersFromStorage(items []user) []model.User {
	result := make([]model.User, len(items))
	for i, item := range items {
		result[i] = userFromStorage(item)
	}
	return result
}

// Project

func projectFromStorage(item project) model.Project {
	nodeTypes := make([]model.NodeType, len(item.NodeTypes))
	for i, entry := range item.NodeTypes {
		nodeTypes[i] = model.NodeType{Name: entry.Name, DynSchema: entry.DynSchema}
	}
	return model.Project{ID: item.ID, Name: item.Name, NodeTypes: nodeTypes,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

// Node

func nodeFromStorage(item node) model.Node {
	return model.Node{ID: item.ID, Project: item.Project, NodeType: item.NodeType, User: item.User,
		Name: item.Name, Description: item.Description, Properties: item.Properties, Tags: item.Tags,
		Picture: item.Picture, Media: item.Media, LicenseNotes: item.LicenseNotes,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func nodesFromStorage(items []node) []model.Node {
	result := make([]model.Node, len(items))
	for i, item := range items {
		result[i] = nodeFromStorage(item)
	}
	return result
}

func nodeToStorage(item model.Node) node {
	return node{ID: item.ID, Project: item.Project, NodeType: item.NodeType, User: item.User,
		Name: item.Name, Description: item.Description, Properties: item.Properties, Tags: item.Tags,
		Picture: item.Picture, Media: item.Media, LicenseNotes: item.LicenseNotes,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}
