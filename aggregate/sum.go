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

// Sum accumulates the total of a numeric field.
type Sum struct {
	baseFunction
}

// NewSum creates a sum aggregate over field.
func NewSum(source expr.Source, field expr.Expression) *Sum {
	return &Sum{newBaseFunction(source, field)}
}

func (s *Sum) Kind() aggregation.Kind { return aggregation.Sum }

// DataType widens integer sums to long; everything else sums as double.
func (s *Sum) DataType() types.DataType {
	switch s.field.DataType() {
	case types.Integer, types.Long:
		return types.Long
	default:
		return types.Double
	}
}

func (s *Sum) ResolveType() expr.TypeResolution {
	return s.resolveChildren().
		And(expr.IsType(s.field, isAggregatable, s.sourceText(), expr.First,
			"numeric except unsigned_long or counter types"))
}

func (s *Sum) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(s, inputChannels)
}

func (s *Sum) String() string {
	return fmt.Sprintf("sum(%s)", s.field)
}

func (s *Sum) WriteableName() string { return aggregation.Sum.String() }

func (s *Sum) WriteTo(w *wire.Writer) error {
	return s.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.Sum.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &Sum{base}, nil
	})
}
