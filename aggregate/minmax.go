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

func isMinMaxField(t types.DataType) bool {
	return t == types.Boolean || t == types.Datetime || isAggregatable(t)
}

// Min keeps the smallest value of a field.
type Min struct {
	baseFunction
}

// NewMin creates a minimum aggregate over field.
func NewMin(source expr.Source, field expr.Expression) *Min {
	return &Min{newBaseFunction(source, field)}
}

func (m *Min) Kind() aggregation.Kind   { return aggregation.Min }
func (m *Min) DataType() types.DataType { return m.field.DataType() }

func (m *Min) ResolveType() expr.TypeResolution {
	return m.resolveChildren().
		And(expr.IsType(m.field, isMinMaxField, m.sourceText(), expr.First,
			"boolean, datetime or numeric except unsigned_long or counter types"))
}

func (m *Min) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(m, inputChannels)
}

func (m *Min) String() string {
	return fmt.Sprintf("min(%s)", m.field)
}

func (m *Min) WriteableName() string { return aggregation.Min.String() }

func (m *Min) WriteTo(w *wire.Writer) error {
	return m.writeTo(w)
}

// Max keeps the largest value of a field.
type Max struct {
	baseFunction
}

// NewMax creates a maximum aggregate over field.
func NewMax(source expr.Source, field expr.Expression) *Max {
	return &Max{newBaseFunction(source, field)}
}

func (m *Max) Kind() aggregation.Kind   { return aggregation.Max }
func (m *Max) DataType() types.DataType { return m.field.DataType() }

func (m *Max) ResolveType() expr.TypeResolution {
	return m.resolveChildren().
		And(expr.IsType(m.field, isMinMaxField, m.sourceText(), expr.First,
			"boolean, datetime or numeric except unsigned_long or counter types"))
}

func (m *Max) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(m, inputChannels)
}

func (m *Max) String() string {
	return fmt.Sprintf("max(%s)", m.field)
}

func (m *Max) WriteableName() string { return aggregation.Max.String() }

func (m *Max) WriteTo(w *wire.Writer) error {
	return m.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.Min.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &Min{base}, nil
	})
	expr.MustRegisterDecoder(aggregation.Max.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &Max{base}, nil
	})
}
