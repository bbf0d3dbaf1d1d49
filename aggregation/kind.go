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

package aggregation

import (
	"fmt"

	"github.com/rulego/distsql/types"
)

// Kind enumerates every physically mappable aggregate. Surrogate-only
// aggregates (an average lowered to sum/count) never reach this layer and
// have no Kind. The enum is closed: adding a kind without extending the
// rule and shape switches below fails registry construction, not a query.
type Kind int

const (
	Count Kind = iota
	CountDistinct
	Max
	MedianAbsoluteDeviation
	Min
	Percentile
	SpatialCentroid
	Sum
	Values
	Top
	Rate
	FromPartial
	ToPartial
)

// Kinds returns all mappable kinds in declaration order. Registry
// construction enumerates this list, so the order fixes the deterministic
// build order per kind.
func Kinds() []Kind {
	return []Kind{
		Count,
		CountDistinct,
		Max,
		MedianAbsoluteDeviation,
		Min,
		Percentile,
		SpatialCentroid,
		Sum,
		Values,
		Top,
		Rate,
		FromPartial,
		ToPartial,
	}
}

func (k Kind) String() string {
	switch k {
	case Count:
		return "Count"
	case CountDistinct:
		return "CountDistinct"
	case Max:
		return "Max"
	case MedianAbsoluteDeviation:
		return "MedianAbsoluteDeviation"
	case Min:
		return "Min"
	case Percentile:
		return "Percentile"
	case SpatialCentroid:
		return "SpatialCentroid"
	case Sum:
		return "Sum"
	case Values:
		return "Values"
	case Top:
		return "Top"
	case Rate:
		return "Rate"
	case FromPartial:
		return "FromPartial"
	case ToPartial:
		return "ToPartial"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Auxiliary configuration tags appearing in composed implementation names.
const (
	AuxNone         = ""
	AuxSourceValues = "SourceValues"
	AuxDocValues    = "DocValues"
)

var (
	numericCategories = []string{types.CategoryInt, types.CategoryLong, types.CategoryDouble}
	spatialCategories = []string{types.CategoryGeoPoint, types.CategoryCartesianPoint}
	noCategory        = []string{types.CategoryNone}
	noAuxiliary       = []string{AuxNone}
)

// kindRule is one row of the per-kind compatibility table: the legal
// value-type categories and auxiliary configs of a kind, and whether the
// kind exists only in grouping form.
type kindRule struct {
	categories   []string
	auxiliaries  []string
	groupingOnly bool
}

// ruleFor returns the compatibility rule of a kind. The table is fixed at
// compile time; an unknown kind here means the enum grew without registry
// coverage and construction must fail.
func ruleFor(kind Kind) (kindRule, error) {
	switch kind {
	case Sum, MedianAbsoluteDeviation, Percentile:
		return kindRule{categories: numericCategories, auxiliaries: noAuxiliary}, nil
	case Min, Max:
		return kindRule{
			categories:  []string{types.CategoryBoolean, types.CategoryInt, types.CategoryLong, types.CategoryDouble},
			auxiliaries: noAuxiliary,
		}, nil
	case Count:
		// Counting is type-agnostic: one kernel serves every input type.
		return kindRule{categories: noCategory, auxiliaries: noAuxiliary}, nil
	case CountDistinct:
		return kindRule{
			categories:  append(append([]string{}, numericCategories...), types.CategoryBoolean, types.CategoryBytesRef),
			auxiliaries: noAuxiliary,
		}, nil
	case SpatialCentroid:
		return kindRule{
			categories:  spatialCategories,
			auxiliaries: []string{AuxSourceValues, AuxDocValues},
		}, nil
	case Values:
		return kindRule{
			categories:  append(append([]string{}, numericCategories...), types.CategoryBoolean, types.CategoryBytesRef),
			auxiliaries: noAuxiliary,
		}, nil
	case Top:
		return kindRule{
			categories:  []string{types.CategoryBoolean, types.CategoryInt, types.CategoryLong, types.CategoryDouble},
			auxiliaries: noAuxiliary,
		}, nil
	case Rate:
		// Rate is meaningless over the whole input: it needs a grouping key
		// (the time series) by definition.
		return kindRule{categories: numericCategories, auxiliaries: noAuxiliary, groupingOnly: true}, nil
	case FromPartial, ToPartial:
		return kindRule{categories: noCategory, auxiliaries: noAuxiliary}, nil
	default:
		return kindRule{}, fmt.Errorf("unknown aggregate kind %s", kind)
	}
}
