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

// Values collects every distinct value of a field into a multivalue result.
type Values struct {
	baseFunction
}

// NewValues creates a values collector over field.
func NewValues(source expr.Source, field expr.Expression) *Values {
	return &Values{newBaseFunction(source, field)}
}

func (v *Values) Kind() aggregation.Kind   { return aggregation.Values }
func (v *Values) DataType() types.DataType { return v.field.DataType() }

func (v *Values) ResolveType() expr.TypeResolution {
	return v.resolveChildren().
		And(expr.IsType(
			v.field,
			func(dt types.DataType) bool {
				return dt == types.Boolean || dt == types.Datetime || dt.IsString() || isAggregatable(dt)
			},
			v.sourceText(), expr.First, "any exact type except unsigned_long or counter types",
		))
}

func (v *Values) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(v, inputChannels)
}

func (v *Values) String() string {
	return fmt.Sprintf("values(%s)", v.field)
}

func (v *Values) WriteableName() string { return aggregation.Values.String() }

func (v *Values) WriteTo(w *wire.Writer) error {
	return v.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.Values.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &Values{base}, nil
	})
}
