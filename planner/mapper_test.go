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

package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/distsql/aggregate"
	"github.com/rulego/distsql/aggregation"
	"github.com/rulego/distsql/expr"
	"github.com/rulego/distsql/logger"
	"github.com/rulego/distsql/types"
)

func newMapper(t *testing.T) *AggregateMapper {
	t.Helper()
	m, err := NewAggregateMapper(WithLogger(logger.NewDiscardLogger()))
	require.NoError(t, err)
	return m
}

func longField(name string) *expr.FieldAttribute {
	return expr.NewFieldAttribute(expr.EmptySource, name, types.Long)
}

func namesOf(refs []expr.NamedExpression) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name())
	}
	return names
}

func TestMapNonGroupingSumLong(t *testing.T) {
	m := newMapper(t)
	sum := aggregate.NewSum(expr.EmptySource, longField("a"))

	refs, err := m.MapNonGrouping(sum)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, []string{"sum", "seen"}, namesOf(refs))
	assert.Equal(t, types.Long, refs[0].DataType())
	assert.Equal(t, types.Boolean, refs[1].DataType())
}

func TestMapGroupingAddsGroupColumn(t *testing.T) {
	m := newMapper(t)
	sum := aggregate.NewSum(expr.EmptySource, longField("a"))

	plain, err := m.MapNonGrouping(sum)
	require.NoError(t, err)
	grouped, err := m.MapGrouping(sum)
	require.NoError(t, err)

	require.Len(t, grouped, len(plain)+1)
	assert.Equal(t, "groups", grouped[0].Name())
	assert.Equal(t, types.Integer, grouped[0].DataType())
	assert.Equal(t, namesOf(plain), namesOf(grouped[1:]))
}

func TestMappingIsIdempotent(t *testing.T) {
	m := newMapper(t)
	sum := aggregate.NewSum(expr.EmptySource, longField("a"))

	first, err := m.MapNonGrouping(sum)
	require.NoError(t, err)
	second, err := m.MapNonGrouping(sum)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		// Cache hits return the same synthesized references, not copies.
		assert.Same(t, first[i], second[i])
	}
}

func TestAliasMapsLikeTheBareAggregate(t *testing.T) {
	m := newMapper(t)
	sum := aggregate.NewSum(expr.EmptySource, longField("a"))
	aliased := expr.NewAlias(expr.EmptySource, "total", sum)

	direct, err := m.MapNonGrouping(sum)
	require.NoError(t, err)
	viaAlias, err := m.MapNonGrouping(aliased)
	require.NoError(t, err)

	require.Len(t, viaAlias, len(direct))
	for i := range direct {
		assert.Same(t, direct[i], viaAlias[i])
	}
}

func TestBatchDeduplicatesStructurallyIdenticalReferences(t *testing.T) {
	m := newMapper(t)
	// Two distinct nodes over different fields of the same type produce
	// structurally identical intermediate columns.
	first := aggregate.NewSum(expr.EmptySource, longField("a"))
	second := aggregate.NewSum(expr.EmptySource, longField("b"))

	refs, err := m.MapNonGrouping(first, second)
	require.NoError(t, err)
	assert.Equal(t, []string{"sum", "seen"}, namesOf(refs))
}

func TestBatchPreservesFirstSeenOrder(t *testing.T) {
	m := newMapper(t)
	count := aggregate.NewCount(expr.EmptySource, longField("a"))
	sum := aggregate.NewSum(expr.EmptySource, longField("a"))

	refs, err := m.MapNonGrouping(count, sum)
	require.NoError(t, err)
	// Count contributes (count, seen); Sum contributes (sum, seen) with the
	// seen column deduplicated against Count's.
	assert.Equal(t, []string{"count", "seen", "sum"}, namesOf(refs))
}

func TestBareAttributesContributeNoState(t *testing.T) {
	m := newMapper(t)

	refs, err := m.MapNonGrouping(longField("a"))
	require.NoError(t, err)
	assert.Empty(t, refs)

	refs, err = m.MapGrouping(
		expr.NewMetadataAttribute(expr.EmptySource, "_index", types.Keyword),
		expr.NewReferenceAttribute(expr.EmptySource, "r", types.Long),
	)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestUnknownExpressionFailsLoudly(t *testing.T) {
	m := newMapper(t)

	_, err := m.MapNonGrouping(expr.NewIntLiteral(expr.EmptySource, 1))
	require.Error(t, err)

	var unknown *UnknownAggregateExpressionError
	require.True(t, errors.As(err, &unknown))
	assert.Contains(t, err.Error(), "cannot map expression")
}

func TestRateRequiresGrouping(t *testing.T) {
	m := newMapper(t)
	rate := aggregate.NewRate(expr.EmptySource,
		expr.NewFieldAttribute(expr.EmptySource, "requests", types.CounterLong))

	refs, err := m.MapGrouping(rate)
	require.NoError(t, err)
	assert.Equal(t, []string{"groups", "timestamps", "values", "resets"}, namesOf(refs))

	_, err = m.MapNonGrouping(rate)
	require.Error(t, err)
	var unknown *aggregation.UnknownVariantError
	assert.True(t, errors.As(err, &unknown))
}

func TestPartialPassThroughMapping(t *testing.T) {
	m := newMapper(t)
	toPartial := aggregate.NewToPartial(expr.EmptySource, longField("a"))

	refs, err := m.MapNonGrouping(toPartial)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "partial", refs[0].Name())
	assert.Equal(t, types.PartialAgg, refs[0].DataType())
}

func TestApplySurrogatesRewritesTopLimitOne(t *testing.T) {
	m := newMapper(t)
	field := longField("a")

	top := aggregate.NewTop(expr.EmptySource, field,
		expr.NewIntLiteral(expr.EmptySource, 1),
		expr.NewStringLiteral(expr.EmptySource, "ASC"))
	rewritten := m.ApplySurrogates(top)
	minimum, ok := rewritten.(*aggregate.Min)
	require.True(t, ok)
	assert.Same(t, field, minimum.Field())

	top = aggregate.NewTop(expr.EmptySource, field,
		expr.NewIntLiteral(expr.EmptySource, 1),
		expr.NewStringLiteral(expr.EmptySource, "DESC"))
	_, ok = m.ApplySurrogates(top).(*aggregate.Max)
	assert.True(t, ok)
}

func TestApplySurrogatesKeepsLargerLimits(t *testing.T) {
	m := newMapper(t)
	top := aggregate.NewTop(expr.EmptySource, longField("a"),
		expr.NewIntLiteral(expr.EmptySource, 2),
		expr.NewStringLiteral(expr.EmptySource, "ASC"))

	assert.Same(t, top, m.ApplySurrogates(top).(*aggregate.Top))
}

func TestApplySurrogatesPreservesAliases(t *testing.T) {
	m := newMapper(t)
	top := aggregate.NewTop(expr.EmptySource, longField("a"),
		expr.NewIntLiteral(expr.EmptySource, 1),
		expr.NewStringLiteral(expr.EmptySource, "ASC"))
	aliased := expr.NewAlias(expr.EmptySource, "lowest", top)

	rewritten := m.ApplySurrogates(aliased)
	alias, ok := rewritten.(*expr.Alias)
	require.True(t, ok)
	assert.Equal(t, "lowest", alias.Name())
	_, ok = alias.Child().(*aggregate.Min)
	assert.True(t, ok)
}

func TestApplySurrogatesLeavesNonSurrogatesAlone(t *testing.T) {
	m := newMapper(t)
	sum := aggregate.NewSum(expr.EmptySource, longField("a"))
	assert.Same(t, sum, m.ApplySurrogates(sum).(*aggregate.Sum))
}

func TestWithoutSurrogatesDisablesRewrites(t *testing.T) {
	m, err := NewAggregateMapper(WithoutSurrogates(), WithLogger(logger.NewDiscardLogger()))
	require.NoError(t, err)

	top := aggregate.NewTop(expr.EmptySource, longField("a"),
		expr.NewIntLiteral(expr.EmptySource, 1),
		expr.NewStringLiteral(expr.EmptySource, "ASC"))
	assert.Same(t, top, m.ApplySurrogates(top).(*aggregate.Top))
}

func TestSurrogateThenMapScenario(t *testing.T) {
	// The planner's full path: resolve, rewrite, then map the substitute.
	m := newMapper(t)
	top := aggregate.NewTop(expr.EmptySource, longField("a"),
		expr.NewIntLiteral(expr.EmptySource, 1),
		expr.NewStringLiteral(expr.EmptySource, "DESC"))
	require.True(t, top.ResolveType().Resolved())

	rewritten := m.ApplySurrogates(top)
	refs, err := m.MapNonGrouping(rewritten)
	require.NoError(t, err)
	assert.Equal(t, []string{"max", "seen"}, namesOf(refs))
}
