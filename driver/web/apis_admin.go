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
	"io"
	"net/http"

	"pillar-core/core"
	"pillar-core/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	validator "gopkg.in/go-playground/validator.v9"
)

const (
	actionAssign logutils.MessageActionType = "assigning"
	actionRemove logutils.MessageActionType = "removing"
)

// AdminApisHandler handles the admin rest APIs implementation
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

type createOrganizationRequest struct {
	Name      string   `json:"name" validate:"required"`
	AdminUID  string   `json:"admin_uid" validate:"required"`
	SeatCount int      `json:"seat_count" validate:"required,min=1"`
	OrgRoles  []string `json:"org_roles"`
}

type updateOrganizationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Location    string   `json:"location"`
	IPRanges    []string `json:"ip_ranges"`
}

type assignUsersRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}

type removeUserRequest struct {
	UserID *string `json:"user_id"`
	Email  *string `json:"email"`
}

func (h AdminApisHandler) getOrganizations(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	organizations, err := h.coreAPIs.Administration.AdmGetOrganizations(l)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(organizationsToResponse(organizations))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getOrganization(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	organization, err := h.coreAPIs.Administration.AdmGetOrganization(l, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusNotFound, true)
	}

	data, err := json.Marshal(organizationToResponse(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) createOrganization(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	var requestData createOrganizationRequest
	response := readRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	organization, err := h.coreAPIs.Administration.AdmCreateOrganization(l, requestData.Name, requestData.AdminUID, requestData.SeatCount, requestData.OrgRoles)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(organizationToResponse(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) updateOrganization(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData updateOrganizationRequest
	response := readRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	organization, err := h.coreAPIs.Administration.AdmUpdateOrganization(l, id, requestData.Name, requestData.Description, requestData.Website, requestData.Location, requestData.IPRanges)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeOrganization, nil, err, http.StatusBadRequest, true)
	}

	data, err := json.Marshal(organizationToResponse(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

// assignOrganizationUsers adds members to the organization by email. When the
// organization does not have enough free seats the whole batch is rejected.
func (h AdminApisHandler) assignOrganizationUsers(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData assignUsersRequest
	response := readRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	organization, err := h.coreAPIs.Administration.AdmAssignOrganizationUsers(l, id, requestData.Emails)
	if err != nil {
		if seatsErr, ok := err.(*model.NotEnoughSeatsError); ok {
			fieldArgs := logutils.FieldArgs{"org_id": seatsErr.OrgID, "seat_count": seatsErr.SeatCount,
				"attempted_seat_count": seatsErr.AttemptedSeatCount}
			return l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeOrganization, &fieldArgs, err, http.StatusUnprocessableEntity, true)
		}
		return l.HTTPResponseErrorAction(actionAssign, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(organizationToResponse(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) removeOrganizationUser(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData removeUserRequest
	response := readRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}
	if requestData.UserID == nil && requestData.Email == nil {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeRequestBody, logutils.StringArgs("user_id or email"), nil, http.StatusBadRequest, false)
	}

	organization, err := h.coreAPIs.Administration.AdmRemoveOrganizationUser(l, id, requestData.UserID, requestData.Email)
	if err != nil {
		return l.HTTPResponseErrorAction(actionRemove, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(organizationToResponse(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getOrganizationMembers(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	members, err := h.coreAPIs.Administration.AdmGetOrganizationMembers(l, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeUser, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(usersToResponse(members))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeUser, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) refreshUserRoles(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmRefreshUserRoles(l, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeUserRoles, nil, err, http.StatusInternalServerError, true)
	}

	return l.HTTPResponseSuccess()
}

// readRequestBody reads, unmarshals and statically validates the request
// body. A non-nil response must be returned as is.
func readRequestBody(l *logs.Log, r *http.Request, requestData interface{}) *logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		response := l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
		return &response
	}

	err = json.Unmarshal(data, requestData)
	if err != nil {
		response := l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
		return &response
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		response := l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
		return &response
	}

	return nil
}

// NewAdminApisHandler creates new admin rest Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
