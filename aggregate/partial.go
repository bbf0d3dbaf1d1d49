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

// ToPartial freezes the intermediate state of its child aggregate into a
// single opaque column of partial-aggregation type, so a later plan stage
// can ship it across nodes without knowing its shape.
type ToPartial struct {
	baseFunction
}

// NewToPartial wraps an aggregate's output for cross-node transport.
func NewToPartial(source expr.Source, field expr.Expression) *ToPartial {
	return &ToPartial{newBaseFunction(source, field)}
}

func (t *ToPartial) Kind() aggregation.Kind   { return aggregation.ToPartial }
func (t *ToPartial) DataType() types.DataType { return types.PartialAgg }

func (t *ToPartial) ResolveType() expr.TypeResolution {
	return t.resolveChildren()
}

func (t *ToPartial) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(t, inputChannels)
}

func (t *ToPartial) String() string {
	return fmt.Sprintf("to_partial(%s)", t.field)
}

func (t *ToPartial) WriteableName() string { return aggregation.ToPartial.String() }

func (t *ToPartial) WriteTo(w *wire.Writer) error {
	return t.writeTo(w)
}

// FromPartial thaws a partial-aggregation column back into the concrete
// output type of the aggregate that produced it.
type FromPartial struct {
	baseFunction
}

// NewFromPartial resumes aggregation from a frozen partial column.
func NewFromPartial(source expr.Source, field expr.Expression) *FromPartial {
	return &FromPartial{newBaseFunction(source, field)}
}

func (f *FromPartial) Kind() aggregation.Kind   { return aggregation.FromPartial }
func (f *FromPartial) DataType() types.DataType { return f.field.DataType() }

func (f *FromPartial) ResolveType() expr.TypeResolution {
	return f.resolveChildren()
}

func (f *FromPartial) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(f, inputChannels)
}

func (f *FromPartial) String() string {
	return fmt.Sprintf("from_partial(%s)", f.field)
}

func (f *FromPartial) WriteableName() string { return aggregation.FromPartial.String() }

func (f *FromPartial) WriteTo(w *wire.Writer) error {
	return f.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.ToPartial.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &ToPartial{base}, nil
	})
	expr.MustRegisterDecoder(aggregation.FromPartial.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &FromPartial{base}, nil
	})
}
