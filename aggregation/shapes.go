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

// categoryElement maps a value-type category to the element tag of columns
// specialized on it.
func categoryElement(category string) (types.ElementType, error) {
	switch category {
	case types.CategoryBoolean:
		return types.ElemBoolean, nil
	case types.CategoryInt:
		return types.ElemInt, nil
	case types.CategoryLong:
		return types.ElemLong, nil
	case types.CategoryDouble:
		return types.ElemDouble, nil
	case types.CategoryBytesRef:
		return types.ElemBytesRef, nil
	default:
		return types.ElemUnknown, fmt.Errorf("category %q has no element type", category)
	}
}

// intermediateStateDesc is the declared intermediate-state shape of the
// physical implementation identified by key: the compile-time equivalent of
// introspecting the kernel. Grouping kernels lead with the group-id channel.
// An unknown kind or category is a construction-time failure, never a
// partially built registry.
func intermediateStateDesc(key VariantKey) ([]IntermediateStateDesc, error) {
	state, err := baseState(key.Kind, key.Category)
	if err != nil {
		return nil, err
	}
	if key.Grouping {
		state = append([]IntermediateStateDesc{{Name: "groups", Element: types.ElemInt}}, state...)
	}
	return state, nil
}

// baseState is the per-kind shape table, before the grouping channel.
func baseState(kind Kind, category string) ([]IntermediateStateDesc, error) {
	switch kind {
	case Count:
		return []IntermediateStateDesc{
			{Name: "count", Element: types.ElemLong},
			{Name: "seen", Element: types.ElemBoolean},
		}, nil

	case CountDistinct:
		// All specializations sketch into a serialized HLL.
		return []IntermediateStateDesc{
			{Name: "hll", Element: types.ElemBytesRef},
		}, nil

	case Min, Max:
		elem, err := categoryElement(category)
		if err != nil {
			return nil, err
		}
		name := "min"
		if kind == Max {
			name = "max"
		}
		return []IntermediateStateDesc{
			{Name: name, Element: elem},
			{Name: "seen", Element: types.ElemBoolean},
		}, nil

	case MedianAbsoluteDeviation, Percentile:
		// Quantile sketches travel serialized regardless of input type.
		return []IntermediateStateDesc{
			{Name: "quart", Element: types.ElemBytesRef},
		}, nil

	case SpatialCentroid:
		// Kahan-compensated running centroid per axis plus the point count.
		return []IntermediateStateDesc{
			{Name: "xVal", Element: types.ElemDouble},
			{Name: "xDel", Element: types.ElemDouble},
			{Name: "yVal", Element: types.ElemDouble},
			{Name: "yDel", Element: types.ElemDouble},
			{Name: "count", Element: types.ElemLong},
		}, nil

	case Sum:
		switch category {
		case types.CategoryInt, types.CategoryLong:
			return []IntermediateStateDesc{
				{Name: "sum", Element: types.ElemLong},
				{Name: "seen", Element: types.ElemBoolean},
			}, nil
		case types.CategoryDouble:
			// Kahan summation carries the compensation term.
			return []IntermediateStateDesc{
				{Name: "value", Element: types.ElemDouble},
				{Name: "delta", Element: types.ElemDouble},
				{Name: "seen", Element: types.ElemBoolean},
			}, nil
		default:
			return nil, fmt.Errorf("sum has no %q specialization", category)
		}

	case Values:
		elem, err := categoryElement(category)
		if err != nil {
			return nil, err
		}
		return []IntermediateStateDesc{
			{Name: "values", Element: elem},
		}, nil

	case Top:
		elem, err := categoryElement(category)
		if err != nil {
			return nil, err
		}
		return []IntermediateStateDesc{
			{Name: "top", Element: elem},
		}, nil

	case Rate:
		elem, err := categoryElement(category)
		if err != nil {
			return nil, err
		}
		return []IntermediateStateDesc{
			{Name: "timestamps", Element: types.ElemLong},
			{Name: "values", Element: elem},
			{Name: "resets", Element: types.ElemDouble},
		}, nil

	case FromPartial, ToPartial:
		// Opaque pass-through state: the composite element has no logical
		// mapping, so the descriptor carries an explicit override.
		return []IntermediateStateDesc{
			{Name: "partial", Element: types.ElemComposite, DataTypeOverride: types.PartialAgg},
		}, nil

	default:
		return nil, fmt.Errorf("unknown aggregate kind %s", kind)
	}
}
