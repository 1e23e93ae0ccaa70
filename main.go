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

package main

import (
	"strings"

	"pillar-core/core"
	"pillar-core/driven/badger"
	"pillar-core/driven/search"
	"pillar-core/driven/storage"
	"pillar-core/driver/web"
	"pillar-core/utils"

	"github.com/rokwire/core-auth-library-go/v3/authservice"
	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "pillar"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("PILLAR_CORE_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	err := utils.SetRandomSeed()
	if err != nil {
		logger.Error(err.Error())
	}

	env := envLoader.GetAndLogEnvVar("PILLAR_CORE_ENVIRONMENT", true, false) //local, dev, staging, prod
	port := envLoader.GetAndLogEnvVar("PILLAR_CORE_PORT", false, false)
	//Default port of 80
	if port == "" {
		port = "80"
	}

	host := envLoader.GetAndLogEnvVar("PILLAR_CORE_HOST", true, false)

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("PILLAR_CORE_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("PILLAR_CORE_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("PILLAR_CORE_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err = storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	// search adapter
	elasticsearchURL := envLoader.GetAndLogEnvVar("PILLAR_CORE_ELASTICSEARCH_URL", true, false)
	searchAdapter := search.NewSearchAdapter(elasticsearchURL, logger)
	err = searchAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the search adapter: %v", err)
	}

	// badger adapter
	badgerAdapter := badger.NewBadgerAdapter(storageAdapter, logger)

	// properties coercion and reindexing
	dateLayout := envLoader.GetAndLogEnvVar("PILLAR_CORE_DATE_FORMAT", false, false)
	reindexSchedule := envLoader.GetAndLogEnvVar("PILLAR_CORE_SEARCH_REINDEX_CRON", false, false)
	if reindexSchedule == "" {
		reindexSchedule = "0 3 * * *"
	}

	//core
	coreAPIs := core.NewCoreAPIs(env, Version, Build, storageAdapter, badgerAdapter, searchAdapter,
		dateLayout, reindexSchedule, logger)
	coreAPIs.Start()

	// auth service
	authHost := envLoader.GetAndLogEnvVar("PILLAR_CORE_AUTH_HOST", true, false)
	authService := authservice.AuthService{
		ServiceID:   serviceID,
		ServiceHost: host,
		FirstParty:  true,
		AuthBaseURL: authHost,
	}

	serviceRegLoader, err := authservice.NewRemoteServiceRegLoader(&authService, []string{"auth"})
	if err != nil {
		logger.Fatalf("Error initializing remote service registration loader: %v", err)
	}

	serviceRegManager, err := authservice.NewServiceRegManager(&authService, serviceRegLoader, !strings.HasPrefix(host, "http://localhost"))
	if err != nil {
		logger.Fatalf("Error initializing service registration manager: %v", err)
	}

	//web adapter
	webAdapter := web.NewWebAdapter(env, serviceID, serviceRegManager, port, coreAPIs, host, logger)
	webAdapter.Start()
}
