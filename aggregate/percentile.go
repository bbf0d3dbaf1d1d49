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

// Percentile estimates the value below which the given percentage of a
// field's values fall. The percentile parameter is a plan-time constant.
type Percentile struct {
	baseFunction
}

// NewPercentile creates a percentile aggregate over field.
func NewPercentile(source expr.Source, field, percentile expr.Expression) *Percentile {
	return &Percentile{newBaseFunction(source, field, percentile)}
}

func (p *Percentile) Kind() aggregation.Kind   { return aggregation.Percentile }
func (p *Percentile) DataType() types.DataType { return types.Double }

func (p *Percentile) percentileField() expr.Expression { return p.params[0] }

// PercentileValue folds the percentile parameter.
func (p *Percentile) PercentileValue() (float64, error) {
	return expr.FoldFloat64(p.percentileField())
}

func (p *Percentile) ResolveType() expr.TypeResolution {
	resolution := p.resolveChildren().
		And(expr.IsType(p.field, isAggregatable, p.sourceText(), expr.First,
			"numeric except unsigned_long or counter types")).
		And(expr.IsNotNullAndFoldable(p.percentileField(), p.sourceText(), expr.Second)).
		And(expr.IsNumeric(p.percentileField(), p.sourceText(), expr.Second))
	if resolution.Unresolved() {
		return resolution
	}

	percentile, err := p.PercentileValue()
	if err != nil {
		return expr.NewTypeResolution("Invalid percentile value in [%s]: %v", p.sourceText(), err)
	}
	if percentile < 0 || percentile > 100 {
		return expr.NewTypeResolution(
			"Percentile must be between 0 and 100 in [%s], found [%v]", p.sourceText(), percentile,
		)
	}
	return expr.TypeResolved
}

func (p *Percentile) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(p, inputChannels)
}

func (p *Percentile) String() string {
	return fmt.Sprintf("percentile(%s, %s)", p.field, p.percentileField())
}

func (p *Percentile) WriteableName() string { return aggregation.Percentile.String() }

func (p *Percentile) WriteTo(w *wire.Writer) error {
	return p.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.Percentile.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 1)
		if err != nil {
			return nil, err
		}
		return &Percentile{base}, nil
	})
}
