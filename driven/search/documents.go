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

package search

import (
	"time"
)

const nodesIndex string = "nodes"
const usersIndex string = "users"

// Both indices share the autocomplete analyzer: standard tokenizer with
// lowercase and edge ngram filters, so prefixes of names match as the user
// types.
const indexSettings string = `{
	"analysis": {
		"filter": {
			"edge_ngram_filter": {
				"type": "edge_ngram",
				"min_gram": 1,
				"max_gram": 15
			}
		},
		"analyzer": {
			"autocomplete": {
				"type": "custom",
				"tokenizer": "standard",
				"filter": ["lowercase", "edge_ngram_filter"]
			}
		}
	}
}`

const nodesIndexBody string = `{
	"settings": ` + indexSettings + `,
	"mappings": {
		"properties": {
			"objectID": {"type": "keyword"},
			"node_type": {"type": "keyword"},
			"name": {"type": "text", "analyzer": "autocomplete", "fielddata": true},
			"description": {"type": "text"},
			"user": {
				"properties": {
					"id": {"type": "keyword"},
					"name": {"type": "text", "analyzer": "autocomplete", "fielddata": true}
				}
			},
			"project": {
				"properties": {
					"id": {"type": "keyword"},
					"name": {"type": "keyword"}
				}
			},
			"media": {"type": "keyword"},
			"picture": {"type": "keyword"},
			"tags": {"type": "keyword"},
			"license_notes": {"type": "text"},
			"created_at": {"type": "date"},
			"updated_at": {"type": "date"}
		}
	}
}`

const usersIndexBody string = `{
	"settings": ` + indexSettings + `,
	"mappings": {
		"properties": {
			"objectID": {"type": "keyword"},
			"username": {"type": "text", "analyzer": "autocomplete", "fielddata": true},
			"full_name": {"type": "text", "analyzer": "autocomplete", "fielddata": true},
			"email": {"type": "text", "analyzer": "autocomplete", "fielddata": true},
			"roles": {"type": "keyword"},
			"groups": {"type": "keyword"}
		}
	}
}`

type nodeDocument struct {
	ObjectID     string      `json:"objectID"`
	NodeType     string      `json:"node_type"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	User         namedEntity `json:"user"`
	Project      namedEntity `json:"project"`
	Media        string      `json:"media,omitempty"`
	Picture      string      `json:"picture,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	LicenseNotes string      `json:"license_notes,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

type namedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type userDocument struct {
	ObjectID string   `json:"objectID"`
	Username string   `json:"username"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
	Groups   []string `json:"groups,omitempty"`
}
