/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "fmt"

// DataType is the logical type attached to every expression node after
// analysis. Stable String() names are also used on the wire, so renaming a
// constant is a wire-format change.
type DataType int

const (
	Unknown DataType = iota
	Null
	Boolean
	Integer
	Long
	UnsignedLong
	Double
	Keyword
	Text
	IP
	Version
	Datetime
	GeoPoint
	CartesianPoint
	CounterInteger
	CounterLong
	CounterDouble
	PartialAgg
)

var dataTypeNames = map[DataType]string{
	Unknown:        "unknown",
	Null:           "null",
	Boolean:        "boolean",
	Integer:        "integer",
	Long:           "long",
	UnsignedLong:   "unsigned_long",
	Double:         "double",
	Keyword:        "keyword",
	Text:           "text",
	IP:             "ip",
	Version:        "version",
	Datetime:       "datetime",
	GeoPoint:       "geo_point",
	CartesianPoint: "cartesian_point",
	CounterInteger: "counter_integer",
	CounterLong:    "counter_long",
	CounterDouble:  "counter_double",
	PartialAgg:     "partial_agg",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("datatype(%d)", int(t))
}

// ParseDataType resolves a stable type name back to its DataType.
// Used by the plan codec when reconstructing nodes on a remote executor.
func ParseDataType(name string) (DataType, error) {
	for t, n := range dataTypeNames {
		if n == name {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("unknown data type name %q", name)
}

// IsNumeric reports whether the type participates in numeric aggregation.
// Counter types are numeric: they are time-series cousins of their base type.
func (t DataType) IsNumeric() bool {
	switch t {
	case Integer, Long, UnsignedLong, Double, CounterInteger, CounterLong, CounterDouble:
		return true
	default:
		return false
	}
}

// IsCounter reports whether the type is a time-series counter.
func (t DataType) IsCounter() bool {
	switch t {
	case CounterInteger, CounterLong, CounterDouble:
		return true
	default:
		return false
	}
}

// IsString reports whether values of the type are carried as strings.
func (t DataType) IsString() bool {
	switch t {
	case Keyword, Text, IP, Version:
		return true
	default:
		return false
	}
}

// IsSpatial reports whether the type is a spatial point type.
func (t DataType) IsSpatial() bool {
	return t == GeoPoint || t == CartesianPoint
}
