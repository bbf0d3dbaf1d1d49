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
	"fmt"

	"github.com/rulego/distsql/aggregate"
	"github.com/rulego/distsql/aggregation"
	"github.com/rulego/distsql/expr"
	"github.com/rulego/distsql/logger"
	"github.com/rulego/distsql/types"
)

// AggregateMapper resolves logical aggregate expressions to the ordered
// named references that form the column contract between the partial and
// final aggregation stages. One mapper serves one planning session; it is
// not goroutine-safe and holds only a back reference to the shared registry.
type AggregateMapper struct {
	registry   *aggregation.Registry
	log        logger.Logger
	surrogates bool

	// arena assigns each distinct (by pointer identity) unwrapped node a
	// stable index within this session. The cache is keyed by that index
	// plus the grouping mode, because the same node is a distinct wiring
	// point under each mode.
	arena map[expr.Expression]int
	cache map[cacheKey][]expr.NamedExpression
}

type cacheKey struct {
	index    int
	grouping bool
}

// NewAggregateMapper creates a mapper for one planning session. It fails
// only if the process-wide registry could not be built.
func NewAggregateMapper(opts ...Option) (*AggregateMapper, error) {
	registry, err := aggregation.StateRegistry()
	if err != nil {
		return nil, err
	}
	m := &AggregateMapper{
		registry:   registry,
		log:        logger.GetDefault(),
		surrogates: true,
		arena:      make(map[expr.Expression]int),
		cache:      make(map[cacheKey][]expr.NamedExpression),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// MapNonGrouping maps aggregates computed over the whole input.
func (m *AggregateMapper) MapNonGrouping(aggregates ...expr.Expression) ([]expr.NamedExpression, error) {
	return m.doMapping(aggregates, false)
}

// MapGrouping maps aggregates computed per distinct grouping key.
func (m *AggregateMapper) MapGrouping(aggregates ...expr.Expression) ([]expr.NamedExpression, error) {
	return m.doMapping(aggregates, true)
}

// referenceKey is the structural identity used for batch deduplication:
// two references to the same name and type wire to the same channel.
type referenceKey struct {
	name     string
	dataType types.DataType
}

// doMapping resolves each aggregate and concatenates the results,
// deduplicated across the whole batch in first-seen order.
func (m *AggregateMapper) doMapping(aggregates []expr.Expression, grouping bool) ([]expr.NamedExpression, error) {
	var out []expr.NamedExpression
	seen := make(map[referenceKey]struct{})
	for _, agg := range aggregates {
		entry, err := m.entryFor(agg, grouping)
		if err != nil {
			return nil, err
		}
		for _, ref := range entry {
			key := referenceKey{name: ref.Name(), dataType: ref.DataType()}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, ref)
		}
	}
	return out, nil
}

// entryFor memoizes per-expression resolution. The cache hit path returns
// the previously synthesized references unchanged, so mapping the same node
// twice in one session yields reference-identical output.
func (m *AggregateMapper) entryFor(agg expr.Expression, grouping bool) ([]expr.NamedExpression, error) {
	unwrapped := expr.Unwrap(agg)
	key := cacheKey{index: m.arenaIndex(unwrapped), grouping: grouping}
	if entry, ok := m.cache[key]; ok {
		return entry, nil
	}
	entry, err := m.computeEntryForAgg(unwrapped, grouping)
	if err != nil {
		return nil, err
	}
	m.cache[key] = entry
	return entry, nil
}

// arenaIndex returns the session-stable index of a node, assigning the next
// free one on first sight.
func (m *AggregateMapper) arenaIndex(e expr.Expression) int {
	if idx, ok := m.arena[e]; ok {
		return idx
	}
	idx := len(m.arena)
	m.arena[e] = idx
	return idx
}

// computeEntryForAgg resolves one unwrapped expression. Aggregate functions
// consult the registry; bare attributes pass through the aggregation
// boundary and contribute no intermediate state; anything else is an
// illegal input.
func (m *AggregateMapper) computeEntryForAgg(agg expr.Expression, grouping bool) ([]expr.NamedExpression, error) {
	switch node := agg.(type) {
	case aggregate.Function:
		key, err := aggregate.VariantKeyFor(node, grouping)
		if err != nil {
			return nil, fmt.Errorf("mapping [%s]: %w", node, err)
		}
		state, err := m.registry.Lookup(key)
		if err != nil {
			return nil, err
		}
		entry := make([]expr.NamedExpression, 0, len(state))
		for _, desc := range state {
			logicalType, err := desc.LogicalType()
			if err != nil {
				return nil, fmt.Errorf("mapping [%s]: %w", node, err)
			}
			entry = append(entry, expr.NewReferenceAttribute(expr.EmptySource, desc.Name, logicalType))
		}
		m.log.Debug("planner: mapped %s to %d intermediate columns", key.ImplementationName(), len(entry))
		return entry, nil
	case *expr.FieldAttribute, *expr.MetadataAttribute, *expr.ReferenceAttribute:
		return nil, nil
	default:
		return nil, &UnknownAggregateExpressionError{Expression: agg}
	}
}

// ApplySurrogates substitutes the cheaper equivalent of an aggregate when
// one exists for its parameterization, re-applying on the substitute until
// none offers a rewrite. Aliases are preserved around the substituted
// child. Grouping mode plays no part in the rewrite: surrogates are
// value-equivalent under both modes, and the mode is supplied separately
// at mapping time.
func (m *AggregateMapper) ApplySurrogates(e expr.Expression) expr.Expression {
	if !m.surrogates {
		return e
	}
	return applySurrogate(e)
}

func applySurrogate(e expr.Expression) expr.Expression {
	if alias, ok := e.(*expr.Alias); ok {
		child := applySurrogate(alias.Child())
		if child == alias.Child() {
			return e
		}
		return expr.NewAlias(alias.Source(), alias.Name(), child)
	}
	s, ok := e.(aggregate.SurrogateExpression)
	if !ok {
		return e
	}
	surrogate := s.Surrogate()
	if surrogate == nil {
		return e
	}
	return applySurrogate(surrogate)
}
