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

package web

import (
	"time"

	"pillar-core/core/model"
)

// Organization

type organizationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`

	AdminUID  string `json:"admin_uid"`
	SeatCount int    `json:"seat_count"`
	SeatsUsed int    `json:"seats_used"`

	Members        []string `json:"members"`
	UnknownMembers []string `json:"unknown_members"`
	OrgRoles       []string `json:"org_roles"`

	IPRanges []string `json:"ip_ranges,omitempty"`

	DateCreated time.Time  `json:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty"`
}

func organizationToResponse(item model.Organization) organizationResponse {
	return organizationResponse{ID: item.ID, Name: item.Name, Description: item.Description,
		Website: item.Website, Location: item.Location, AdminUID: item.AdminUID,
		SeatCount: item.SeatCount, SeatsUsed: item.SeatsUsed(),
		Members: item.Members, UnknownMembers: item.UnknownMembers, OrgRoles: item.OrgRoles,
		IPRanges: item.IPRanges, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationsToResponse(items []model.Organization) []organizationResponse {
	result := make([]organizationResponse, len(items))
	for i, item := range items {
		result[i] = organizationToResponse(item)
	}
	return result
}

// User

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`

	Roles  []string `json:"roles,omitempty"`
	Groups []string `json:"groups,omitempty"`
}

func userToResponse(item model.User) userResponse {
	return userResponse{ID: item.ID, Username: item.Username, FullName: item.FullName,
		Email: item.Email, Roles: item.Roles, Groups: item.Groups}
}

func usersToResponse(items []model.User) []userResponse {
	result := make([]userResponse, len(items))
	for i, item := range items {
		result[i] = userToResponse(item)
	}
	return result
}

// Node

type nodeResponse struct {
	ID string `json:"id"`

	Project  string `json:"project"`
	NodeType string `json:"node_type"`
	User     string `json:"user"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Properties map[string]interface{} `json:"properties,omitempty"`

	Tags         []string `json:"tags,omitempty"`
	Picture      string   `json:"picture,omitempty"`
	Media        string   `json:"media,omitempty"`
	LicenseNotes string   `json:"license_notes,omitempty"`

	DateCreated time.Time  `json:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty"`
}

func nodeToResponse(item model.Node) nodeResponse {
	return nodeResponse{ID: item.ID, Project: item.Project, NodeType: item.NodeType, User: item.User,
		Name: item.Name, Description: item.Description, Properties: item.Properties, Tags: item.Tags,
		Picture: item.Picture, Media: item.Media, LicenseNotes: item.LicenseNotes,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

// Search

type nodeHitResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	NodeType    string  `json:"node_type"`
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Score       float64 `json:"score"`
}

func nodeHitsToResponse(items []model.NodeHit) []nodeHitResponse {
	result := make([]nodeHitResponse, len(items))
	for i, item := range items {
		result[i] = nodeHitResponse{ID: item.ID, Name: item.Name, Description: item.Description,
			NodeType: item.NodeType, ProjectID: item.ProjectID, ProjectName: item.ProjectName, Score: item.Score}
	}
	return result
}

type userHitResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Score    float64 `json:"score"`
}

func userHitsToResponse(items []model.UserHit) []userHitResponse {
	result := make([]userHitResponse, len(items))
	for i, item := range items {
		result[i] = userHitResponse{ID: item.ID, Username: item.Username, FullName: item.FullName,
			Email: item.Email, Score: item.Score}
	}
	return result
}
