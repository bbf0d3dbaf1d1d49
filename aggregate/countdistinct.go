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

	"github.com/rulego/distsql/aggregation"
	"github.com/rulego/distsql/expr"
	"github.com/rulego/distsql/types"
	"github.com/rulego/distsql/wire"
)

// DefaultPrecision is the HLL precision threshold used when the query does
// not override it.
const DefaultPrecision = 3000

// CountDistinct estimates the number of distinct values of a field with an
// HLL sketch. The optional precision parameter is a plan-time constant.
type CountDistinct struct {
	baseFunction
}

// NewCountDistinct creates a distinct-count aggregate over field. precision
// may be nil, in which case DefaultPrecision applies.
func NewCountDistinct(source expr.Source, field, precision expr.Expression) *CountDistinct {
	if precision == nil {
		return &CountDistinct{newBaseFunction(source, field)}
	}
	return &CountDistinct{newBaseFunction(source, field, precision)}
}

func (c *CountDistinct) Kind() aggregation.Kind   { return aggregation.CountDistinct }
func (c *CountDistinct) DataType() types.DataType { return types.Long }

func (c *CountDistinct) precisionField() expr.Expression {
	if len(c.params) == 0 {
		return nil
	}
	return c.params[0]
}

// PrecisionValue folds the precision parameter, falling back to
// DefaultPrecision when absent.
func (c *CountDistinct) PrecisionValue() (int, error) {
	p := c.precisionField()
	if p == nil {
		return DefaultPrecision, nil
	}
	return expr.FoldInt(p)
}

func (c *CountDistinct) ResolveType() expr.TypeResolution {
	resolution := c.resolveChildren().
		And(expr.IsType(
			c.field,
			func(dt types.DataType) bool {
				return dt == types.Boolean || dt == types.Datetime || dt.IsString() || isAggregatable(dt)
			},
			c.sourceText(), expr.First, "any exact type except unsigned_long or counter types",
		))
	if resolution.Unresolved() {
		return resolution
	}

	p := c.precisionField()
	if p == nil {
		return expr.TypeResolved
	}
	resolution = expr.IsNotNullAndFoldable(p, c.sourceText(), expr.Second).
		And(expr.IsInteger(p, c.sourceText(), expr.Second))
	if resolution.Unresolved() {
		return resolution
	}
	precision, err := c.PrecisionValue()
	if err != nil {
		return expr.NewTypeResolution("Invalid precision value in [%s]: %v", c.sourceText(), err)
	}
	if precision <= 0 {
		return expr.NewTypeResolution("Precision must be greater than 0 in [%s], found [%d]", c.sourceText(), precision)
	}
	return expr.TypeResolved
}

func (c *CountDistinct) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(c, inputChannels)
}

func (c *CountDistinct) String() string {
	if p := c.precisionField(); p != nil {
		return fmt.Sprintf("count_distinct(%s, %s)", c.field, p)
	}
	return fmt.Sprintf("count_distinct(%s)", c.field)
}

func (c *CountDistinct) WriteableName() string { return aggregation.CountDistinct.String() }

func (c *CountDistinct) WriteTo(w *wire.Writer) error {
	expr.WriteSource(w, c.source)
	if err := expr.WriteNamed(w, c.field); err != nil {
		return err
	}
	p := c.precisionField()
	w.WriteBool(p != nil)
	if p != nil {
		return expr.WriteNamed(w, p)
	}
	return nil
}

func init() {
	expr.MustRegisterDecoder(aggregation.CountDistinct.String(), func(r *wire.Reader) (expr.Expression, error) {
		source, err := expr.ReadSource(r)
		if err != nil {
			return nil, err
		}
		field, err := expr.ReadNamed(r)
		if err != nil {
			return nil, err
		}
		hasPrecision, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		var precision expr.Expression
		if hasPrecision {
			precision, err = expr.ReadNamed(r)
			if err != nil {
				return nil, err
			}
		}
		return NewCountDistinct(source, field, precision), nil
	})
}
