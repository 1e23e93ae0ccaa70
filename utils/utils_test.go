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

package utils_test

import (
	"testing"

	"pillar-core/utils"

	"gotest.tools/assert"
)

func TestContains(t *testing.T) {
	list := []string{"a", "b"}

	assert.Equal(t, utils.Contains(list, "a"), true, "a is in the list")
	assert.Equal(t, utils.Contains(list, "c"), false, "c is not in the list")
	assert.Equal(t, utils.Contains(nil, "a"), false, "nothing is in a nil list")
}

func TestStringSetUnion(t *testing.T) {
	got := utils.StringSetUnion([]string{"b", "a"}, []string{"c", "a"})
	assert.DeepEqual(t, got, []string{"a", "b", "c"})

	got = utils.StringSetUnion(nil, nil)
	assert.Equal(t, len(got), 0, "union of nothing is empty")
}

func TestStringSetSubtract(t *testing.T) {
	got := utils.StringSetSubtract([]string{"b", "a", "c"}, "b")
	assert.DeepEqual(t, got, []string{"a", "c"})

	got = utils.StringSetSubtract([]string{"a"}, "a", "b")
	assert.Equal(t, len(got), 0, "everything removed")
}
