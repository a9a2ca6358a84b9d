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

import "fmt"

// StrategyKey is the reserved metadata key under which a field's Strategy
// is stored on backend fields. No other metadata keys are interpreted by
// this module.
const StrategyKey = "SERDE_ARROW:strategy"

// Strategy records semantic intent that the plain columnar type cannot
// express, e.g. that a Date64 column actually holds datetime strings. It
// travels out-of-band in the backend field's metadata under StrategyKey.
type Strategy string

const (
	// StrategyNone marks a field without a strategy. It is never written
	// to metadata.
	StrategyNone Strategy = ""
	// StrategyInconsistentTypes marks a field whose observed values had
	// irreconcilable types.
	StrategyInconsistentTypes Strategy = "InconsistentTypes"
	// StrategyTupleAsStruct marks a Struct column that encodes a tuple;
	// the member names are positional.
	StrategyTupleAsStruct Strategy = "TupleAsStruct"
	// StrategyMapAsStruct marks a Struct column traced from map values;
	// the member names are the observed keys.
	StrategyMapAsStruct Strategy = "MapAsStruct"
	// StrategyUtcStrAsDate64 marks a Date64 column holding UTC datetime
	// strings such as "2015-09-18T23:56:04Z".
	StrategyUtcStrAsDate64 Strategy = "UtcStrAsDate64"
	// StrategyNaiveStrAsDate64 marks a Date64 column holding unzoned
	// datetime strings such as "2015-09-18T23:56:04".
	StrategyNaiveStrAsDate64 Strategy = "NaiveStrAsDate64"
)

// ParseStrategy parses the serialized form of a Strategy as stored under
// StrategyKey. Unrecognized values are an error, never ignored.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyInconsistentTypes, StrategyTupleAsStruct, StrategyMapAsStruct,
		StrategyUtcStrAsDate64, StrategyNaiveStrAsDate64:
		return st, nil
	}
	return StrategyNone, fmt.Errorf("%w: unknown strategy %q", ErrInvalid, s)
}

func (s Strategy) String() string { return string(s) }

// IsValid reports whether s is StrategyNone or one of the recognized
// strategies.
func (s Strategy) IsValid() bool {
	if s == StrategyNone {
		return true
	}
	_, err := ParseStrategy(string(s))
	return err == nil
}
