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

// Count counts non-null values of a field. One kernel serves every input
// type, so the variant key always carries the empty category.
type Count struct {
	baseFunction
}

// NewCount creates a count aggregate over field.
func NewCount(source expr.Source, field expr.Expression) *Count {
	return &Count{newBaseFunction(source, field)}
}

func (c *Count) Kind() aggregation.Kind   { return aggregation.Count }
func (c *Count) DataType() types.DataType { return types.Long }

func (c *Count) ResolveType() expr.TypeResolution {
	return c.resolveChildren()
}

func (c *Count) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(c, inputChannels)
}

func (c *Count) String() string {
	return fmt.Sprintf("count(%s)", c.field)
}

func (c *Count) WriteableName() string { return aggregation.Count.String() }

func (c *Count) WriteTo(w *wire.Writer) error {
	return c.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.Count.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &Count{base}, nil
	})
}
