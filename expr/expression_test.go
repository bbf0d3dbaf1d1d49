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

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/distsql/types"
)

func TestLiteralNormalizesIntegers(t *testing.T) {
	for _, value := range []interface{}{int(7), int8(7), int16(7), int32(7), int64(7)} {
		l := NewLiteral(EmptySource, value, types.Integer)
		folded, err := l.Fold()
		require.NoError(t, err)
		assert.Equal(t, int64(7), folded, "input %T", value)
	}
}

func TestLiteralFold(t *testing.T) {
	assert.True(t, NewIntLiteral(EmptySource, 3).Foldable())

	folded, err := NewStringLiteral(EmptySource, "DESC").Fold()
	require.NoError(t, err)
	assert.Equal(t, "DESC", folded)

	null := NullLiteral(EmptySource)
	assert.Equal(t, types.Null, null.DataType())
	folded, err = null.Fold()
	require.NoError(t, err)
	assert.Nil(t, folded)
}

func TestAttributeIsNotFoldable(t *testing.T) {
	field := NewFieldAttribute(EmptySource, "price", types.Double)
	assert.False(t, field.Foldable())

	_, err := field.Fold()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestAttributeResolved(t *testing.T) {
	assert.True(t, NewFieldAttribute(EmptySource, "a", types.Long).Resolved())
	assert.False(t, NewFieldAttribute(EmptySource, "a", types.Unknown).Resolved())
}

func TestUnwrapStripsAliasChains(t *testing.T) {
	field := NewFieldAttribute(EmptySource, "a", types.Long)
	inner := NewAlias(EmptySource, "x", field)
	outer := NewAlias(EmptySource, "y", inner)

	assert.Same(t, field, Unwrap(outer))
	assert.Same(t, field, Unwrap(inner))
	assert.Same(t, field, Unwrap(field))
}

func TestAliasDelegatesToChild(t *testing.T) {
	child := NewIntLiteral(EmptySource, 5)
	alias := NewAlias(EmptySource, "limit", child)

	assert.Equal(t, types.Integer, alias.DataType())
	assert.True(t, alias.Foldable())
	folded, err := alias.Fold()
	require.NoError(t, err)
	assert.Equal(t, int64(5), folded)
	assert.Equal(t, "5 AS limit", alias.String())
}

func TestFoldHelpers(t *testing.T) {
	i, err := FoldInt(NewIntLiteral(EmptySource, 42))
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	// Cast-based coercion: a string parameter folding to a number is
	// accepted, matching how loosely typed query params arrive.
	i, err = FoldInt(NewStringLiteral(EmptySource, "42"))
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	s, err := FoldString(NewStringLiteral(EmptySource, "asc"))
	require.NoError(t, err)
	assert.Equal(t, "asc", s)

	f, err := FoldFloat64(NewDoubleLiteral(EmptySource, 99.9))
	require.NoError(t, err)
	assert.Equal(t, 99.9, f)

	_, err = FoldInt(NewFieldAttribute(EmptySource, "a", types.Long))
	assert.Error(t, err)
}

func TestTypeResolutionAnd(t *testing.T) {
	failed := NewTypeResolution("first failure")
	other := NewTypeResolution("second failure")

	assert.True(t, TypeResolved.Resolved())
	assert.True(t, failed.Unresolved())

	// The first failure wins.
	assert.Equal(t, "first failure", failed.And(other).Message())
	assert.Equal(t, "second failure", TypeResolved.And(other).Message())
	assert.True(t, TypeResolved.And(TypeResolved).Resolved())
}

func TestIsTypeDiagnostic(t *testing.T) {
	field := NewFieldAttribute(EmptySource, "name", types.Keyword)
	resolution := IsType(field, types.DataType.IsNumeric, "sum(name)", First, "numeric")
	require.True(t, resolution.Unresolved())
	assert.Equal(t,
		"first argument of [sum(name)] must be [numeric], found value [name] type [keyword]",
		resolution.Message())
}

func TestIsNotNullAndFoldable(t *testing.T) {
	assert.True(t, IsNotNullAndFoldable(NewIntLiteral(EmptySource, 1), "top", Second).Resolved())

	resolution := IsNotNullAndFoldable(NullLiteral(EmptySource), "top", Second)
	require.True(t, resolution.Unresolved())
	assert.Contains(t, resolution.Message(), "cannot be null")

	field := NewFieldAttribute(EmptySource, "a", types.Integer)
	resolution = IsNotNullAndFoldable(field, "top", Second)
	require.True(t, resolution.Unresolved())
	assert.Contains(t, resolution.Message(), "must be a constant")
}
