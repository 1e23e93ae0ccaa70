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
	//TypeNode node type
	TypeNode logutils.MessageDataType = "node"
	//TypeNodeProperties node properties type
	TypeNodeProperties logutils.MessageDataType = "node properties"
)

// Node is a generic typed content record scoped to a project. Its Properties
// must validate against the dynamic schema the owning project declares for the
// node's NodeType before it is persisted.
type Node struct {
	ID string

	Project  string //project ID
	NodeType string
	User     string //owner user ID

	Name        string
	Description string

	Properties map[string]interface{}

	Tags         []string
	Picture      string
	Media        string
	LicenseNotes string

	DateCreated time.Time
	DateUpdated *time.Time
}

func (n Node) String() string {
	return fmt.Sprintf("[ID:%s\tProject:%s\tNodeType:%s\tName:%s]", n.ID, n.Project, n.NodeType, n.Name)
}
