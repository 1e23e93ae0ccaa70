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
	"fmt"
	"net/http"

	"pillar-core/core"
	"pillar-core/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/core-auth-library-go/v3/authservice"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/logs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Adapter entity
type Adapter struct {
	env  string
	port string
	host string

	auth   *Auth
	logger *logs.Logger

	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler

	coreAPIs *core.APIs
}

type handlerFunc = func(*logs.Log, *http.Request, *tokenauth.Claims) logs.HTTPResponse

// @title Pillar Core API
// @description Pillar Core API Documentation.
// @version 1.0.0
// @host localhost:80
// @BasePath /pillar
// @schemes https http

// Start starts the module
func (we Adapter) Start() {
	//add listener to the application
	we.coreAPIs.AddListener(&AppListener{&we})

	err := we.auth.Start()
	if err != nil {
		we.logger.Fatalf("error starting auth: %v", err)
	}

	router := mux.NewRouter().StrictSlash(true)

	// handle apis
	subRouter := router.PathPrefix("/pillar").Subrouter()
	subRouter.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	subRouter.HandleFunc("/doc", we.serveDoc)
	subRouter.HandleFunc("/version", we.wrapFunc(we.servicesApisHandler.getVersion, nil)).Methods("GET")

	///services ///
	servicesSubRouter := subRouter.PathPrefix("/services").Subrouter()

	servicesSubRouter.HandleFunc("/nodes", we.wrapFunc(we.servicesApisHandler.createNode, we.auth.servicesAuth)).Methods("POST")
	servicesSubRouter.HandleFunc("/nodes/{id}", we.wrapFunc(we.servicesApisHandler.getNode, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/nodes/{id}", we.wrapFunc(we.servicesApisHandler.updateNode, we.auth.servicesAuth)).Methods("PUT")
	servicesSubRouter.HandleFunc("/nodes/{id}", we.wrapFunc(we.servicesApisHandler.deleteNode, we.auth.servicesAuth)).Methods("DELETE")

	servicesSubRouter.HandleFunc("/search/nodes", we.wrapFunc(we.servicesApisHandler.searchNodes, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/search/users", we.wrapFunc(we.servicesApisHandler.searchUsers, we.auth.servicesAuth)).Methods("GET")
	///

	///admin ///
	adminSubrouter := subRouter.PathPrefix("/admin").Subrouter()

	adminSubrouter.HandleFunc("/organizations", we.wrapFunc(we.adminApisHandler.getOrganizations, we.auth.adminAuth)).Methods("GET")
	adminSubrouter.HandleFunc("/organizations", we.wrapFunc(we.adminApisHandler.createOrganization, we.auth.adminAuth)).Methods("POST")
	adminSubrouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.adminApisHandler.getOrganization, we.auth.adminAuth)).Methods("GET")
	adminSubrouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.adminApisHandler.updateOrganization, we.auth.adminAuth)).Methods("PUT")
	adminSubrouter.HandleFunc("/organizations/{id}/members", we.wrapFunc(we.adminApisHandler.getOrganizationMembers, we.auth.adminAuth)).Methods("GET")
	adminSubrouter.HandleFunc("/organizations/{id}/users", we.wrapFunc(we.adminApisHandler.assignOrganizationUsers, we.auth.adminAuth)).Methods("POST")
	adminSubrouter.HandleFunc("/organizations/{id}/users", we.wrapFunc(we.adminApisHandler.removeOrganizationUser, we.auth.adminAuth)).Methods("DELETE")

	adminSubrouter.HandleFunc("/users/{id}/roles", we.wrapFunc(we.adminApisHandler.refreshUserRoles, we.auth.adminAuth)).Methods("PUT")
	///

	err = http.ListenAndServe(":"+we.port, router)
	if err != nil {
		we.logger.Fatalf("error on listen and server: %v", err)
	}
}

func (we Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("access-control-allow-origin", "*")
	http.ServeFile(w, r, "./driver/web/docs/def.yaml")
}

func (we Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/pillar/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we Adapter) wrapFunc(handler handlerFunc, authorization Authorization) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		utils.LogRequest(req)
		logObj := we.logger.NewRequestLog(req)

		logObj.RequestReceived()

		var response logs.HTTPResponse
		if authorization != nil {
			responseStatus, claims, err := authorization.check(req)
			if err != nil {
				logObj.SendHTTPResponse(w, logObj.HTTPResponseError("unauthorized", err, responseStatus, true))
				return
			}

			logObj.SetContext("account_id", claims.Subject)
			response = handler(logObj, req, claims)
		} else {
			response = handler(logObj, req, nil)
		}

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

// NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(env string, serviceID string, serviceRegManager *authservice.ServiceRegManager, port string,
	coreAPIs *core.APIs, host string, logger *logs.Logger) Adapter {
	auth, err := NewAuth(serviceID, serviceRegManager, logger)
	if err != nil {
		logger.Fatalf("error creating auth: %v", err)
	}

	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)
	return Adapter{env: env, port: port, host: host, auth: auth, logger: logger,
		servicesApisHandler: servicesApisHandler, adminApisHandler: adminApisHandler, coreAPIs: coreAPIs}
}

// AppListener implements core.ApplicationListener interface
type AppListener struct {
	adapter *Adapter
}

// OnProjectsUpdated notifies that the projects have been updated
func (al *AppListener) OnProjectsUpdated() {
	al.adapter.logger.Info("AppListener -> projects updated")
}
