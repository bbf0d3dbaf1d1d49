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

	"github.com/rulego/distsql/types"
	"github.com/rulego/distsql/wire"
)

// Expression is a node of the analyzed logical expression tree. Nodes are
// created during analysis, read during physical mapping, and discarded with
// the plan; mapping never mutates them. Every node is transportable so that
// plan fragments can be reconstructed on remote executors.
type Expression interface {
	// Source locates the node in the query text for diagnostics.
	Source() Source
	// DataType is the logical result type assigned by analysis.
	DataType() types.DataType
	// Children returns the ordered child list. The order is the wire order.
	Children() []Expression
	// Resolved reports whether analysis fully typed this node and its children.
	Resolved() bool
	// Foldable reports whether Fold can evaluate the node at plan time.
	Foldable() bool
	// Fold evaluates the node to a constant. Calling Fold on a non-foldable
	// node is an error, not a panic: the planner gates folding behind
	// type resolution.
	Fold() (interface{}, error)
	// WriteableName identifies the node type in the decoder registry.
	WriteableName() string
	// WriteTo encodes the node payload (everything after the name frame).
	WriteTo(w *wire.Writer) error

	fmt.Stringer
}

// NamedExpression is an expression that contributes a named column to its
// enclosing plan node.
type NamedExpression interface {
	Expression
	Name() string
}

// Unwrap strips any chain of aliases around an expression. An alias over an
// aggregate maps to the same intermediate state as the bare aggregate.
func Unwrap(e Expression) Expression {
	for {
		alias, ok := e.(*Alias)
		if !ok {
			return e
		}
		e = alias.Child()
	}
}

// Alias renames the expression it wraps without changing its value.
type Alias struct {
	source Source
	name   string
	child  Expression
}

// NewAlias wraps child under the given output name.
func NewAlias(source Source, name string, child Expression) *Alias {
	return &Alias{source: source, name: name, child: child}
}

func (a *Alias) Source() Source           { return a.source }
func (a *Alias) Name() string             { return a.name }
func (a *Alias) Child() Expression        { return a.child }
func (a *Alias) DataType() types.DataType { return a.child.DataType() }
func (a *Alias) Children() []Expression   { return []Expression{a.child} }
func (a *Alias) Resolved() bool           { return a.child.Resolved() }
func (a *Alias) Foldable() bool           { return a.child.Foldable() }

func (a *Alias) Fold() (interface{}, error) {
	return a.child.Fold()
}

func (a *Alias) String() string {
	return fmt.Sprintf("%s AS %s", a.child, a.name)
}

const aliasName = "Alias"

func (a *Alias) WriteableName() string { return aliasName }

func (a *Alias) WriteTo(w *wire.Writer) error {
	WriteSource(w, a.source)
	w.WriteString(a.name)
	return WriteNamed(w, a.child)
}

func decodeAlias(r *wire.Reader) (Expression, error) {
	source, err := ReadSource(r)
	if err != nil {
		return nil, err
	}
	name, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	child, err := ReadNamed(r)
	if err != nil {
		return nil, err
	}
	return NewAlias(source, name, child), nil
}

func init() {
	MustRegisterDecoder(aliasName, decodeAlias)
}
