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
	"encoding/json"
	"net/http"
	"strconv"

	"pillar-core/core"
	"pillar-core/core/dynschema"
	"pillar-core/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const defaultSearchLimit int = 20

// ServicesApisHandler handles the rest APIs implementation on behalf of regular users
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

type nodeRequest struct {
	Project  string `json:"project" validate:"required"`
	NodeType string `json:"node_type" validate:"required"`
	Name     string `json:"name" validate:"required"`

	Description string `json:"description"`

	Properties map[string]interface{} `json:"properties"`

	Tags         []string `json:"tags"`
	Picture      string   `json:"picture"`
	Media        string   `json:"media"`
	LicenseNotes string   `json:"license_notes"`
}

func (req nodeRequest) toModel(user string) model.Node {
	return model.Node{Project: req.Project, NodeType: req.NodeType, User: user,
		Name: req.Name, Description: req.Description, Properties: req.Properties,
		Tags: req.Tags, Picture: req.Picture, Media: req.Media, LicenseNotes: req.LicenseNotes}
}

func (h ServicesApisHandler) getVersion(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	version := h.coreAPIs.GetVersion()
	return l.HTTPResponseSuccessMessage(version)
}

func (h ServicesApisHandler) getNode(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	node, err := h.coreAPIs.Services.SerGetNode(l, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeNode, nil, err, http.StatusNotFound, true)
	}

	data, err := json.Marshal(nodeToResponse(*node))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeNode, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) createNode(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	var requestData nodeRequest
	response := readRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	node, validationErrors, err := h.coreAPIs.Services.SerCreateNode(l, requestData.toModel(claims.Subject))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeNode, nil, err, http.StatusInternalServerError, true)
	}
	if len(validationErrors) > 0 {
		return propertiesErrorResponse(l, validationErrors)
	}

	data, err := json.Marshal(nodeToResponse(*node))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeNode, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) updateNode(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData nodeRequest
	response := readRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	updated := requestData.toModel(claims.Subject)
	updated.ID = id

	node, validationErrors, err := h.coreAPIs.Services.SerUpdateNode(l, updated)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeNode, nil, err, http.StatusInternalServerError, true)
	}
	if len(validationErrors) > 0 {
		return propertiesErrorResponse(l, validationErrors)
	}

	data, err := json.Marshal(nodeToResponse(*node))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeNode, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) deleteNode(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Services.SerDeleteNode(l, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeNode, nil, err, http.StatusInternalServerError, true)
	}

	return l.HTTPResponseSuccess()
}

func (h ServicesApisHandler) searchNodes(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	query := r.URL.Query().Get("q")
	if query == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("q"), nil, http.StatusBadRequest, false)
	}

	var projectID *string
	if project := r.URL.Query().Get("project"); project != "" {
		projectID = &project
	}

	limit, offset, response := searchPaging(l, r)
	if response != nil {
		return *response
	}

	hits, err := h.coreAPIs.Services.SerSearchNodes(l, query, projectID, limit, offset)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypeNode, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(nodeHitsToResponse(hits))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeNode, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) searchUsers(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	query := r.URL.Query().Get("q")
	if query == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("q"), nil, http.StatusBadRequest, false)
	}

	limit, offset, response := searchPaging(l, r)
	if response != nil {
		return *response
	}

	hits, err := h.coreAPIs.Services.SerSearchUsers(l, query, limit, offset)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypeUser, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(userHitsToResponse(hits))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeUser, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

// propertiesErrorResponse maps the dynamic schema field errors into the
// response so the client can show them per field
func propertiesErrorResponse(l *logs.Log, validationErrors dynschema.Errors) logs.HTTPResponse {
	fieldArgs := logutils.FieldArgs{}
	for field, messages := range validationErrors {
		fieldArgs[field] = messages
	}
	return l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeNodeProperties, &fieldArgs, nil, http.StatusUnprocessableEntity, false)
}

func searchPaging(l *logs.Log, r *http.Request) (int, int, *logs.HTTPResponse) {
	limit := defaultSearchLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			response := l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("limit"), err, http.StatusBadRequest, false)
			return 0, 0, &response
		}
		limit = parsed
	}

	offset := 0
	if offsetParam := r.URL.Query().Get("offset"); offsetParam != "" {
		parsed, err := strconv.Atoi(offsetParam)
		if err != nil || parsed < 0 {
			response := l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("offset"), err, http.StatusBadRequest, false)
			return 0, 0, &response
		}
		offset = parsed
	}

	return limit, offset, nil
}

// NewServicesApisHandler creates new rest services Handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}
