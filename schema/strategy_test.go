// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{
		StrategyInconsistentTypes,
		StrategyTupleAsStruct,
		StrategyMapAsStruct,
		StrategyUtcStrAsDate64,
		StrategyNaiveStrAsDate64,
	} {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.True(t, s.IsValid())
	}

	for _, s := range []string{"", "utcStrAsDate64", "Unknown", "MapAsStruct "} {
		_, err := ParseStrategy(s)
		assert.ErrorIs(t, err, ErrInvalid, "%q", s)
	}

	assert.True(t, StrategyNone.IsValid())
	assert.False(t, Strategy("Unknown").IsValid())
}
