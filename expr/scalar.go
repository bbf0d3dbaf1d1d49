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

package expr

import (
	"fmt"
	"math"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/distsql/types"
	"github.com/rulego/distsql/wire"
)

// ScalarExpression is a constant scalar computation written in the query,
// such as an arithmetic limit parameter. The program references no fields,
// so it is compiled once and folded at plan time, never per row.
type ScalarExpression struct {
	source   Source
	code     string
	program  *vm.Program
	value    interface{}
	dataType types.DataType
}

// NewScalarExpression compiles and folds a constant scalar program. A
// program that fails to compile or evaluate is a query-analysis error.
func NewScalarExpression(source Source, code string) (*ScalarExpression, error) {
	program, err := exprlang.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("compile scalar expression [%s]: %w", code, err)
	}
	value, err := exprlang.Run(program, nil)
	if err != nil {
		return nil, fmt.Errorf("fold scalar expression [%s]: %w", code, err)
	}
	dataType, err := dataTypeOfValue(value)
	if err != nil {
		return nil, fmt.Errorf("scalar expression [%s]: %w", code, err)
	}
	return &ScalarExpression{
		source:   source,
		code:     code,
		program:  program,
		value:    value,
		dataType: dataType,
	}, nil
}

// dataTypeOfValue assigns a logical type to a folded constant.
func dataTypeOfValue(value interface{}) (types.DataType, error) {
	switch v := value.(type) {
	case nil:
		return types.Null, nil
	case bool:
		return types.Boolean, nil
	case int:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return types.Integer, nil
		}
		return types.Long, nil
	case int64:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return types.Integer, nil
		}
		return types.Long, nil
	case float64:
		return types.Double, nil
	case string:
		return types.Keyword, nil
	default:
		return types.Unknown, fmt.Errorf("folded value %v (%T) has no logical type", value, value)
	}
}

func (s *ScalarExpression) Source() Source           { return s.source }
func (s *ScalarExpression) Code() string             { return s.code }
func (s *ScalarExpression) DataType() types.DataType { return s.dataType }
func (s *ScalarExpression) Children() []Expression   { return nil }
func (s *ScalarExpression) Resolved() bool           { return true }
func (s *ScalarExpression) Foldable() bool           { return true }

func (s *ScalarExpression) Fold() (interface{}, error) {
	return s.value, nil
}

func (s *ScalarExpression) String() string {
	return s.code
}

const scalarExpressionName = "ScalarExpression"

func (s *ScalarExpression) WriteableName() string { return scalarExpressionName }

func (s *ScalarExpression) WriteTo(w *wire.Writer) error {
	WriteSource(w, s.source)
	w.WriteString(s.code)
	return nil
}

func decodeScalarExpression(r *wire.Reader) (Expression, error) {
	source, err := ReadSource(r)
	if err != nil {
		return nil, err
	}
	code, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return NewScalarExpression(source, code)
}

func init() {
	MustRegisterDecoder(scalarExpressionName, decodeScalarExpression)
}
