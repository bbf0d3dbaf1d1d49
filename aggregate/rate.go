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

// Rate computes the per-second rate of change of a counter field. It is
// defined only under time-series grouping, so its physical variants exist
// exclusively in grouping mode.
type Rate struct {
	baseFunction
}

// NewRate creates a rate aggregate over a counter or numeric field.
func NewRate(source expr.Source, field expr.Expression) *Rate {
	return &Rate{newBaseFunction(source, field)}
}

func (r *Rate) Kind() aggregation.Kind   { return aggregation.Rate }
func (r *Rate) DataType() types.DataType { return types.Double }

func (r *Rate) ResolveType() expr.TypeResolution {
	return r.resolveChildren().
		And(expr.IsType(r.field, isRateField, r.sourceText(), expr.First,
			"counter or numeric"))
}

func (r *Rate) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	key, err := VariantKeyFor(r, true)
	if err != nil {
		return nil, fmt.Errorf("selecting aggregator for [%s]: %w", r, err)
	}
	return aggregation.NewFunctionSupplier(key.ImplementationName(), inputChannels), nil
}

func (r *Rate) String() string {
	return fmt.Sprintf("rate(%s)", r.field)
}

func (r *Rate) WriteableName() string { return aggregation.Rate.String() }

func (r *Rate) WriteTo(w *wire.Writer) error {
	return r.writeTo(w)
}

// isRateField admits the counter types and the plain numerics they decay to.
func isRateField(t types.DataType) bool {
	return t.IsCounter() || isAggregatable(t)
}

func init() {
	expr.MustRegisterDecoder(aggregation.Rate.String(), func(rd *wire.Reader) (expr.Expression, error) {
		base, err := readBase(rd, 0)
		if err != nil {
			return nil, err
		}
		return &Rate{base}, nil
	})
}
