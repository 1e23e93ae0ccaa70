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

package core

import (
	"github.com/robfig/cron/v3"
	"github.com/rokwire/logging-library-go/v2/logs"
)

// application represents the core application code based on hexagonal architecture
type application struct {
	env     string
	version string
	build   string

	storage Storage
	roles   RoleService
	search  SearchIndex

	//wire format for datetime property values
	dateLayout string

	//cron spec for the scheduled search reindex; empty disables it
	reindexSchedule string
	scheduler       *cron.Cron

	logger *logs.Logger

	listeners []ApplicationListener
}

// start starts the core part of the application
func (app *application) start() {
	storageListener := storageListenerImpl{app: app}
	app.storage.RegisterStorageListener(&storageListener)

	if app.reindexSchedule != "" {
		app.scheduler = cron.New()
		_, err := app.scheduler.AddFunc(app.reindexSchedule, app.reindexSearch)
		if err != nil {
			app.logger.Errorf("error scheduling search reindex: %v", err)
			return
		}
		app.scheduler.Start()
		app.logger.Infof("search reindex scheduled: %s", app.reindexSchedule)
	}
}

// addListener adds application listener
func (app *application) addListener(listener ApplicationListener) {
	app.listeners = append(app.listeners, listener)
}

func (app *application) notifyListeners() {
	for _, listener := range app.listeners {
		listener.OnProjectsUpdated()
	}
}

// storageListenerImpl implements the core StorageListener interface
type storageListenerImpl struct {
	app *application
}

// OnProjectsUpdated notifies that project documents have changed
func (s *storageListenerImpl) OnProjectsUpdated() {
	s.app.logger.Info("projects updated")
	s.app.notifyListeners()
}
