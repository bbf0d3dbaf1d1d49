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

// Function is a logical aggregate node: a target field plus zero or more
// constant-folded configuration parameters. Mapping reads it, never mutates
// it; the node is discarded with the plan.
type Function interface {
	expr.Expression

	// Kind identifies the physical aggregate family.
	Kind() aggregation.Kind
	// Field is the target field expression.
	Field() expr.Expression
	// Parameters are the declared configuration parameters, in fixed order.
	Parameters() []expr.Expression
	// ResolveType gates physical mapping. A failure is a user-facing
	// query-analysis diagnostic, not an engine fault.
	ResolveType() expr.TypeResolution
	// Supplier selects the physical kernel for the resolved field type,
	// parameterized by folded configuration and the planner-assigned input
	// channels. An unsupported type here is an internal-consistency fault:
	// type resolution should have rejected it.
	Supplier(inputChannels []int) (aggregation.FunctionSupplier, error)
}

// SurrogateExpression is implemented by functions that can offer an
// equivalent, cheaper logical expression for some parameterizations.
// Surrogate returns nil when none applies.
type SurrogateExpression interface {
	Surrogate() expr.Expression
}

// VariantKeyFor derives the registry key of an aggregate under the grouping
// mode supplied by the planner's aggregation operator. Count and the partial
// pass-through kinds are type-agnostic and always use the empty category;
// spatial centroids map from source values at this layer.
func VariantKeyFor(f Function, grouping bool) (aggregation.VariantKey, error) {
	category := types.CategoryNone
	switch f.Kind() {
	case aggregation.Count, aggregation.ToPartial, aggregation.FromPartial:
	default:
		var err error
		category, err = types.AggCategory(f.Field().DataType())
		if err != nil {
			return aggregation.VariantKey{}, err
		}
	}
	auxiliary := aggregation.AuxNone
	if f.Kind() == aggregation.SpatialCentroid {
		auxiliary = aggregation.AuxSourceValues
	}
	return aggregation.VariantKey{
		Kind:      f.Kind(),
		Category:  category,
		Auxiliary: auxiliary,
		Grouping:  grouping,
	}, nil
}

// baseFunction carries the parts shared by every aggregate node.
type baseFunction struct {
	source expr.Source
	field  expr.Expression
	params []expr.Expression
}

func newBaseFunction(source expr.Source, field expr.Expression, params ...expr.Expression) baseFunction {
	return baseFunction{source: source, field: field, params: params}
}

func (b *baseFunction) Source() expr.Source           { return b.source }
func (b *baseFunction) Field() expr.Expression        { return b.field }
func (b *baseFunction) Parameters() []expr.Expression { return b.params }

func (b *baseFunction) Children() []expr.Expression {
	children := make([]expr.Expression, 0, 1+len(b.params))
	children = append(children, b.field)
	children = append(children, b.params...)
	return children
}

func (b *baseFunction) Resolved() bool {
	for _, c := range b.Children() {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

func (b *baseFunction) Foldable() bool { return false }

func (b *baseFunction) Fold() (interface{}, error) {
	return nil, fmt.Errorf("aggregate over [%s] is not foldable", b.field)
}

// sourceText is the query fragment quoted in diagnostics.
func (b *baseFunction) sourceText() string {
	return b.source.Text
}

// resolveChildren is the shared pre-condition of every ResolveType.
func (b *baseFunction) resolveChildren() expr.TypeResolution {
	if !b.Resolved() {
		return expr.NewTypeResolution("Unresolved children in [%s]", b.sourceText())
	}
	return expr.TypeResolved
}

// writeTo encodes the fixed-arity child list: source, target field, then
// declared parameters in order. Decoders read back the exact same arity.
func (b *baseFunction) writeTo(w *wire.Writer) error {
	expr.WriteSource(w, b.source)
	if err := expr.WriteNamed(w, b.field); err != nil {
		return err
	}
	for _, p := range b.params {
		if err := expr.WriteNamed(w, p); err != nil {
			return err
		}
	}
	return nil
}

// readBase decodes source, field, and exactly nparams parameters.
func readBase(r *wire.Reader, nparams int) (baseFunction, error) {
	source, err := expr.ReadSource(r)
	if err != nil {
		return baseFunction{}, err
	}
	field, err := expr.ReadNamed(r)
	if err != nil {
		return baseFunction{}, err
	}
	params := make([]expr.Expression, 0, nparams)
	for i := 0; i < nparams; i++ {
		p, err := expr.ReadNamed(r)
		if err != nil {
			return baseFunction{}, err
		}
		params = append(params, p)
	}
	return baseFunction{source: source, field: field, params: params}, nil
}

// plainSupplier builds the configuration-free supplier of a function whose
// kernel needs only its input channels: the non-grouping implementation name
// minus the grouping marker is the kernel family.
func plainSupplier(f Function, channels []int) (aggregation.FunctionSupplier, error) {
	key, err := VariantKeyFor(f, false)
	if err != nil {
		return nil, fmt.Errorf("selecting aggregator for [%s]: %w", f, err)
	}
	return aggregation.NewFunctionSupplier(key.ImplementationName(), channels), nil
}

// isAggregatable is the field predicate shared by the plain numeric
// reducers: numeric except unsigned_long and the counter types.
func isAggregatable(t types.DataType) bool {
	return t.IsNumeric() && t != types.UnsignedLong && !t.IsCounter()
}
