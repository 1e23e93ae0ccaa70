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

package utils

import (
	"crypto/rand"
	"encoding/binary"
	"log"
	mathrand "math/rand"
	"net/http"
	"sort"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// SetRandomSeed seeds math/rand with a cryptographically random value
func SetRandomSeed() error {
	seed := make([]byte, 8)
	_, err := rand.Read(seed)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionGenerate, "math/rand seed", nil, err)
	}

	mathrand.Seed(int64(binary.BigEndian.Uint64(seed)))
	return nil
}

// LogRequest logs the request and hides some header fields for security reasons
func LogRequest(req *http.Request) {
	if req == nil {
		return
	}

	method := req.Method
	path := req.URL.Path

	header := make(map[string][]string)
	for key, value := range req.Header {
		var logValue []string
		//do not log api keys, cookies and Authorization
		if key == "Authorization" || key == "Cookie" || key == "Csrf" {
			logValue = append(logValue, "---")
		} else {
			logValue = value
		}
		header[key] = logValue
	}
	log.Printf("%s %s %s", method, path, header)
}

// Contains checks if list contains item
func Contains(list []string, item string) bool {
	for _, entry := range list {
		if entry == item {
			return true
		}
	}
	return false
}

// StringSetUnion merges two string sets, returning a sorted slice without duplicates
func StringSetUnion(a []string, b []string) []string {
	set := make(map[string]bool, len(a)+len(b))
	for _, entry := range a {
		set[entry] = true
	}
	for _, entry := range b {
		set[entry] = true
	}

	union := make([]string, 0, len(set))
	for entry := range set {
		union = append(union, entry)
	}
	sort.Strings(union)
	return union
}

// StringSetSubtract removes items from a string set, returning a sorted slice
func StringSetSubtract(a []string, remove ...string) []string {
	set := make(map[string]bool, len(a))
	for _, entry := range a {
		set[entry] = true
	}
	for _, entry := range remove {
		delete(set, entry)
	}

	result := make([]string, 0, len(set))
	for entry := range set {
		result = append(result, entry)
	}
	sort.Strings(result)
	return result
}
