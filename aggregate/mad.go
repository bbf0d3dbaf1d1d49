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

// MedianAbsoluteDeviation estimates the median of each value's deviation
// from the field's median.
type MedianAbsoluteDeviation struct {
	baseFunction
}

// NewMedianAbsoluteDeviation creates a median-absolute-deviation aggregate
// over field.
func NewMedianAbsoluteDeviation(source expr.Source, field expr.Expression) *MedianAbsoluteDeviation {
	return &MedianAbsoluteDeviation{newBaseFunction(source, field)}
}

func (m *MedianAbsoluteDeviation) Kind() aggregation.Kind   { return aggregation.MedianAbsoluteDeviation }
func (m *MedianAbsoluteDeviation) DataType() types.DataType { return types.Double }

func (m *MedianAbsoluteDeviation) ResolveType() expr.TypeResolution {
	return m.resolveChildren().
		And(expr.IsType(m.field, isAggregatable, m.sourceText(), expr.First,
			"numeric except unsigned_long or counter types"))
}

func (m *MedianAbsoluteDeviation) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(m, inputChannels)
}

func (m *MedianAbsoluteDeviation) String() string {
	return fmt.Sprintf("median_absolute_deviation(%s)", m.field)
}

func (m *MedianAbsoluteDeviation) WriteableName() string {
	return aggregation.MedianAbsoluteDeviation.String()
}

func (m *MedianAbsoluteDeviation) WriteTo(w *wire.Writer) error {
	return m.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.MedianAbsoluteDeviation.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &MedianAbsoluteDeviation{base}, nil
	})
}
