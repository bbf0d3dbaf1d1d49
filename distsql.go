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

package distsql

import (
	"fmt"

	"github.com/rulego/distsql/aggregate"
	"github.com/rulego/distsql/expr"
	"github.com/rulego/distsql/planner"
)

// Session runs the full aggregate-mapping pipeline for one planning pass:
// type resolution, surrogate rewriting, then physical mapping. It wraps one
// planner.AggregateMapper and shares its lifecycle and threading rules.
type Session struct {
	mapper *planner.AggregateMapper
}

// NewSession creates a planning session. Options are forwarded to the
// underlying mapper.
func NewSession(opts ...planner.Option) (*Session, error) {
	mapper, err := planner.NewAggregateMapper(opts...)
	if err != nil {
		return nil, err
	}
	return &Session{mapper: mapper}, nil
}

// Mapper exposes the underlying mapper for callers that drive the stages
// separately.
func (s *Session) Mapper() *planner.AggregateMapper {
	return s.mapper
}

// ResolutionError is the user-facing rejection of a query whose aggregate
// failed type resolution. The query is refused before execution; nothing
// about the engine is wrong.
type ResolutionError struct {
	Source  expr.Source
	Message string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// MapAggregates resolves, rewrites, and maps a batch of aggregate (and
// pass-through attribute) expressions under the given grouping mode,
// returning the intermediate column contract between the partial and final
// aggregation stages.
func (s *Session) MapAggregates(grouping bool, aggregates ...expr.Expression) ([]expr.NamedExpression, error) {
	rewritten := make([]expr.Expression, 0, len(aggregates))
	for _, agg := range aggregates {
		if f, ok := expr.Unwrap(agg).(aggregate.Function); ok {
			if resolution := f.ResolveType(); resolution.Unresolved() {
				return nil, &ResolutionError{Source: f.Source(), Message: resolution.Message()}
			}
		}
		rewritten = append(rewritten, s.mapper.ApplySurrogates(agg))
	}
	if grouping {
		return s.mapper.MapGrouping(rewritten...)
	}
	return s.mapper.MapNonGrouping(rewritten...)
}
