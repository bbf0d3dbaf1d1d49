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

// Value-type categories appearing in composed physical aggregator names.
const (
	CategoryBoolean        = "Boolean"
	CategoryInt            = "Int"
	CategoryLong           = "Long"
	CategoryDouble         = "Double"
	CategoryBytesRef       = "BytesRef"
	CategoryGeoPoint       = "GeoPoint"
	CategoryCartesianPoint = "CartesianPoint"
	CategoryNone           = ""
)

// AggCategory folds a logical field type into the value-type category of its
// type-specialized physical aggregator. This reflects the physical kernels'
// naming structure: datetime and the counter types ride on their base
// numeric kernels, all string-like types share the BytesRef kernels.
func AggCategory(t DataType) (string, error) {
	switch t {
	case Boolean:
		return CategoryBoolean, nil
	case Integer, CounterInteger:
		return CategoryInt, nil
	case Long, Datetime, CounterLong:
		return CategoryLong, nil
	case Double, CounterDouble:
		return CategoryDouble, nil
	case Keyword, Text, IP, Version:
		return CategoryBytesRef, nil
	case GeoPoint:
		return CategoryGeoPoint, nil
	case CartesianPoint:
		return CategoryCartesianPoint, nil
	default:
		return CategoryNone, fmt.Errorf("illegal agg type: %s", t)
	}
}
