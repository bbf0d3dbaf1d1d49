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

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/distsql/aggregation"
	"github.com/rulego/distsql/expr"
	"github.com/rulego/distsql/types"
)

func newTopOver(fieldType types.DataType, limit int, order string) *Top {
	source := expr.Source{Line: 1, Column: 1, Text: "top(a, limit, order)"}
	return NewTop(source,
		expr.NewFieldAttribute(expr.EmptySource, "a", fieldType),
		expr.NewIntLiteral(expr.EmptySource, limit),
		expr.NewStringLiteral(expr.EmptySource, order))
}

func TestTopResolvesValidInput(t *testing.T) {
	for _, fieldType := range []types.DataType{
		types.Boolean, types.Integer, types.Long, types.Double, types.Datetime,
	} {
		top := newTopOver(fieldType, 3, "ASC")
		assert.True(t, top.ResolveType().Resolved(), "field type %s", fieldType)
	}
}

func TestTopOrderIsCaseInsensitive(t *testing.T) {
	for _, order := range []string{"ASC", "asc", "Desc", "DESC"} {
		top := newTopOver(types.Long, 2, order)
		assert.True(t, top.ResolveType().Resolved(), "order %q", order)
	}
}

func TestTopRejectsNonPositiveLimit(t *testing.T) {
	resolution := newTopOver(types.Long, 0, "ASC").ResolveType()
	require.True(t, resolution.Unresolved())
	assert.Equal(t,
		"Limit must be greater than 0 in [top(a, limit, order)], found [0]",
		resolution.Message())

	resolution = newTopOver(types.Long, -3, "ASC").ResolveType()
	require.True(t, resolution.Unresolved())
	assert.Contains(t, resolution.Message(), "Limit must be greater than 0")
}

func TestTopRejectsUnknownOrderToken(t *testing.T) {
	resolution := newTopOver(types.Long, 1, "wrong").ResolveType()
	require.True(t, resolution.Unresolved())
	assert.Equal(t,
		"Invalid order value in [top(a, limit, order)], expected [ASC, DESC] but got [wrong]",
		resolution.Message())
}

func TestTopRejectsIllegalFieldTypes(t *testing.T) {
	for _, fieldType := range []types.DataType{
		types.Keyword, types.UnsignedLong, types.CounterLong, types.GeoPoint,
	} {
		resolution := newTopOver(fieldType, 2, "DESC").ResolveType()
		assert.True(t, resolution.Unresolved(), "field type %s", fieldType)
		assert.Contains(t, resolution.Message(), "first argument")
	}
}

func TestTopRejectsNonConstantParameters(t *testing.T) {
	source := expr.Source{Line: 1, Column: 1, Text: "top(a, b, \"ASC\")"}
	top := NewTop(source,
		expr.NewFieldAttribute(expr.EmptySource, "a", types.Long),
		expr.NewFieldAttribute(expr.EmptySource, "b", types.Integer),
		expr.NewStringLiteral(expr.EmptySource, "ASC"))

	resolution := top.ResolveType()
	require.True(t, resolution.Unresolved())
	assert.Contains(t, resolution.Message(), "must be a constant")
}

func TestTopRejectsNullParameters(t *testing.T) {
	source := expr.Source{Line: 1, Column: 1, Text: "top(a, null, \"ASC\")"}
	top := NewTop(source,
		expr.NewFieldAttribute(expr.EmptySource, "a", types.Long),
		expr.NullLiteral(expr.EmptySource),
		expr.NewStringLiteral(expr.EmptySource, "ASC"))

	resolution := top.ResolveType()
	require.True(t, resolution.Unresolved())
	assert.Contains(t, resolution.Message(), "cannot be null")
}

func TestTopSupplierSelection(t *testing.T) {
	tests := []struct {
		fieldType types.DataType
		kernel    string
	}{
		{types.Integer, "TopIntAggregatorFunction"},
		{types.Long, "TopLongAggregatorFunction"},
		{types.Datetime, "TopLongAggregatorFunction"},
		{types.Double, "TopDoubleAggregatorFunction"},
		{types.Boolean, "TopBooleanAggregatorFunction"},
	}
	for _, test := range tests {
		top := newTopOver(test.fieldType, 5, "DESC")
		supplier, err := top.Supplier([]int{0})
		require.NoError(t, err, "field type %s", test.fieldType)
		assert.Equal(t, test.kernel, supplier.Describe())
		assert.Equal(t, []int{0}, supplier.InputChannels())
	}
}

func TestTopSupplierCarriesFoldedConfiguration(t *testing.T) {
	supplier, err := newTopOver(types.Double, 7, "asc").Supplier([]int{2})
	require.NoError(t, err)

	double, ok := supplier.(*aggregation.TopDoubleAggregatorFunctionSupplier)
	require.True(t, ok)
	assert.Equal(t, 7, double.Limit)
	assert.True(t, double.Ascending)

	supplier, err = newTopOver(types.Double, 7, "DESC").Supplier([]int{2})
	require.NoError(t, err)
	double, ok = supplier.(*aggregation.TopDoubleAggregatorFunctionSupplier)
	require.True(t, ok)
	assert.False(t, double.Ascending)
}

func TestTopSupplierRejectsUnsupportedType(t *testing.T) {
	top := newTopOver(types.Keyword, 5, "DESC")
	_, err := top.Supplier([]int{0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal data type")
}

func TestTopSurrogate(t *testing.T) {
	field := expr.NewFieldAttribute(expr.EmptySource, "a", types.Long)
	source := expr.Source{Line: 1, Column: 1, Text: "top(a, 1, order)"}

	// limit 1 ascending keeps the single smallest value: a minimum.
	top := NewTop(source, field,
		expr.NewIntLiteral(expr.EmptySource, 1),
		expr.NewStringLiteral(expr.EmptySource, "ASC"))
	surrogate := top.Surrogate()
	minimum, ok := surrogate.(*Min)
	require.True(t, ok)
	assert.Same(t, field, minimum.Field())

	// limit 1 descending keeps the single largest value: a maximum.
	top = NewTop(source, field,
		expr.NewIntLiteral(expr.EmptySource, 1),
		expr.NewStringLiteral(expr.EmptySource, "desc"))
	surrogate = top.Surrogate()
	maximum, ok := surrogate.(*Max)
	require.True(t, ok)
	assert.Same(t, field, maximum.Field())

	// Larger limits have no cheaper equivalent.
	assert.Nil(t, newTopOver(types.Long, 2, "ASC").Surrogate())
}

func TestTopVariantKey(t *testing.T) {
	key, err := VariantKeyFor(newTopOver(types.Datetime, 3, "ASC"), true)
	require.NoError(t, err)
	assert.Equal(t, aggregation.VariantKey{
		Kind:     aggregation.Top,
		Category: types.CategoryLong,
		Grouping: true,
	}, key)
}
