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
	//TypeProject project type
	TypeProject logutils.MessageDataType = "project"
	//TypeNodeType node type entry type
	TypeNodeType logutils.MessageDataType = "node type"
)

// Project owns a set of node types. Each node type carries a dynamic schema
// which describes the shape of the properties of nodes of that type.
type Project struct {
	ID   string
	Name string

	NodeTypes []NodeType

	DateCreated time.Time
	DateUpdated *time.Time
}

// FindNodeType gives the project's node type with the given name, or nil
func (p Project) FindNodeType(name string) *NodeType {
	for i := range p.NodeTypes {
		if p.NodeTypes[i].Name == name {
			return &p.NodeTypes[i]
		}
	}
	return nil
}

func (p Project) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tNodeTypes:%d]", p.ID, p.Name, len(p.NodeTypes))
}

// NodeType describes one typed kind of node within a project. DynSchema is the
// raw per-field schema description as stored on the project document.
type NodeType struct {
	Name      string
	DynSchema map[string]interface{}
}
