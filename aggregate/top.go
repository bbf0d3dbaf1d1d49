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
	"fmt"
	"strings"

	"github.com/rulego/distsql/aggregation"
	"github.com/rulego/distsql/expr"
	"github.com/rulego/distsql/types"
	"github.com/rulego/distsql/wire"
)

// Order tokens accepted by Top.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Top collects the top N values of a field, including repeated values. The
// limit and order parameters are plan-time constants.
type Top struct {
	baseFunction
}

// NewTop creates a top-N collector over field. The limit parameter must fold
// to a positive integer, the order parameter to "ASC" or "DESC"
// (case-insensitive); both are checked by ResolveType.
func NewTop(source expr.Source, field, limit, order expr.Expression) *Top {
	return &Top{newBaseFunction(source, field, limit, order)}
}

func (t *Top) Kind() aggregation.Kind { return aggregation.Top }

// DataType of the collected values is the field type itself.
func (t *Top) DataType() types.DataType {
	return t.field.DataType()
}

func (t *Top) limitField() expr.Expression { return t.params[0] }
func (t *Top) orderField() expr.Expression { return t.params[1] }

func (t *Top) limitValue() (int, error) {
	return expr.FoldInt(t.limitField())
}

func (t *Top) orderRawValue() (string, error) {
	return expr.FoldString(t.orderField())
}

// ascending reports whether the smallest values are kept.
func (t *Top) ascending() (bool, error) {
	order, err := t.orderRawValue()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(order, OrderAsc), nil
}

func (t *Top) ResolveType() expr.TypeResolution {
	resolution := t.resolveChildren().
		And(expr.IsType(
			t.field,
			func(dt types.DataType) bool {
				return dt == types.Boolean || dt == types.Datetime || isAggregatable(dt)
			},
			t.sourceText(), expr.First, "boolean, datetime or numeric except unsigned_long or counter types",
		)).
		And(expr.IsNotNullAndFoldable(t.limitField(), t.sourceText(), expr.Second)).
		And(expr.IsInteger(t.limitField(), t.sourceText(), expr.Second)).
		And(expr.IsNotNullAndFoldable(t.orderField(), t.sourceText(), expr.Third)).
		And(expr.IsString(t.orderField(), t.sourceText(), expr.Third))
	if resolution.Unresolved() {
		return resolution
	}

	limit, err := t.limitValue()
	if err != nil {
		return expr.NewTypeResolution("Invalid limit value in [%s]: %v", t.sourceText(), err)
	}
	if limit <= 0 {
		return expr.NewTypeResolution("Limit must be greater than 0 in [%s], found [%d]", t.sourceText(), limit)
	}

	order, err := t.orderRawValue()
	if err != nil {
		return expr.NewTypeResolution("Invalid order value in [%s]: %v", t.sourceText(), err)
	}
	if !strings.EqualFold(order, OrderAsc) && !strings.EqualFold(order, OrderDesc) {
		return expr.NewTypeResolution(
			"Invalid order value in [%s], expected [%s, %s] but got [%s]",
			t.sourceText(), OrderAsc, OrderDesc, order,
		)
	}

	return expr.TypeResolved
}

// Supplier selects the type-specialized top-N kernel, parameterized by the
// folded limit and order. Reaching the default branch means type resolution
// let an unsupported type through.
func (t *Top) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	limit, err := t.limitValue()
	if err != nil {
		return nil, fmt.Errorf("selecting aggregator for [%s]: %w", t, err)
	}
	ascending, err := t.ascending()
	if err != nil {
		return nil, fmt.Errorf("selecting aggregator for [%s]: %w", t, err)
	}
	switch t.field.DataType() {
	case types.Long, types.Datetime:
		return aggregation.NewTopLongAggregatorFunctionSupplier(inputChannels, limit, ascending), nil
	case types.Integer:
		return aggregation.NewTopIntAggregatorFunctionSupplier(inputChannels, limit, ascending), nil
	case types.Double:
		return aggregation.NewTopDoubleAggregatorFunctionSupplier(inputChannels, limit, ascending), nil
	case types.Boolean:
		return aggregation.NewTopBooleanAggregatorFunctionSupplier(inputChannels, limit, ascending), nil
	default:
		return nil, fmt.Errorf("illegal data type [%s] for [%s]", t.field.DataType(), t)
	}
}

// Surrogate rewrites a single-value collection to the plain extremum: top 1
// ascending is the minimum, top 1 descending the maximum. Larger limits have
// no cheaper equivalent.
func (t *Top) Surrogate() expr.Expression {
	limit, err := t.limitValue()
	if err != nil || limit != 1 {
		return nil
	}
	ascending, err := t.ascending()
	if err != nil {
		return nil
	}
	if ascending {
		return NewMin(t.source, t.field)
	}
	return NewMax(t.source, t.field)
}

func (t *Top) String() string {
	return fmt.Sprintf("top(%s, %s, %s)", t.field, t.limitField(), t.orderField())
}

func (t *Top) WriteableName() string { return aggregation.Top.String() }

func (t *Top) WriteTo(w *wire.Writer) error {
	return t.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.Top.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 2)
		if err != nil {
			return nil, err
		}
		return &Top{base}, nil
	})
}
