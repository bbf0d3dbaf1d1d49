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

	"github.com/spf13/cast"

	"github.com/rulego/distsql/types"
	"github.com/rulego/distsql/wire"
)

// Literal is a constant produced by parsing or by earlier folding. Integer
// values are normalized to int64 at construction so folded values compare
// and encode uniformly.
type Literal struct {
	source   Source
	value    interface{}
	dataType types.DataType
}

// NewLiteral creates a constant of the given logical type.
func NewLiteral(source Source, value interface{}, dataType types.DataType) *Literal {
	switch v := value.(type) {
	case int:
		value = int64(v)
	case int8:
		value = int64(v)
	case int16:
		value = int64(v)
	case int32:
		value = int64(v)
	}
	return &Literal{source: source, value: value, dataType: dataType}
}

// NewIntLiteral creates an integer-typed constant.
func NewIntLiteral(source Source, value int) *Literal {
	return NewLiteral(source, value, types.Integer)
}

// NewStringLiteral creates a keyword-typed constant.
func NewStringLiteral(source Source, value string) *Literal {
	return NewLiteral(source, value, types.Keyword)
}

// NewBoolLiteral creates a boolean constant.
func NewBoolLiteral(source Source, value bool) *Literal {
	return NewLiteral(source, value, types.Boolean)
}

// NewDoubleLiteral creates a double constant.
func NewDoubleLiteral(source Source, value float64) *Literal {
	return NewLiteral(source, value, types.Double)
}

// NullLiteral creates a null constant.
func NullLiteral(source Source) *Literal {
	return NewLiteral(source, nil, types.Null)
}

func (l *Literal) Source() Source           { return l.source }
func (l *Literal) Value() interface{}       { return l.value }
func (l *Literal) DataType() types.DataType { return l.dataType }
func (l *Literal) Children() []Expression   { return nil }
func (l *Literal) Resolved() bool           { return true }
func (l *Literal) Foldable() bool           { return true }

func (l *Literal) Fold() (interface{}, error) {
	return l.value, nil
}

func (l *Literal) String() string {
	return fmt.Sprintf("%v", l.value)
}

// Wire tags for the literal value payload.
const (
	literalNil = iota
	literalBool
	literalInt
	literalDouble
	literalString
)

const literalName = "Literal"

func (l *Literal) WriteableName() string { return literalName }

func (l *Literal) WriteTo(w *wire.Writer) error {
	WriteSource(w, l.source)
	w.WriteString(l.dataType.String())
	switch v := l.value.(type) {
	case nil:
		w.WriteInt(literalNil)
	case bool:
		w.WriteInt(literalBool)
		w.WriteBool(v)
	case int64:
		w.WriteInt(literalInt)
		w.WriteVarint(v)
	case float64:
		w.WriteInt(literalDouble)
		w.WriteFloat64(v)
	case string:
		w.WriteInt(literalString)
		w.WriteString(v)
	default:
		return fmt.Errorf("literal value %v (%T) is not transportable", l.value, l.value)
	}
	return nil
}

func decodeLiteral(r *wire.Reader) (Expression, error) {
	source, err := ReadSource(r)
	if err != nil {
		return nil, err
	}
	typeName, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	dataType, err := types.ParseDataType(typeName)
	if err != nil {
		return nil, err
	}
	tag, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	var value interface{}
	switch tag {
	case literalNil:
		value = nil
	case literalBool:
		value, err = r.ReadBool()
	case literalInt:
		value, err = r.ReadVarint()
	case literalDouble:
		value, err = r.ReadFloat64()
	case literalString:
		value, err = r.ReadString()
	default:
		return nil, fmt.Errorf("unknown literal value tag %d", tag)
	}
	if err != nil {
		return nil, err
	}
	return NewLiteral(source, value, dataType), nil
}

// FoldInt folds an expression and coerces the result to an int.
func FoldInt(e Expression) (int, error) {
	v, err := e.Fold()
	if err != nil {
		return 0, err
	}
	return cast.ToIntE(v)
}

// FoldString folds an expression and coerces the result to a string.
func FoldString(e Expression) (string, error) {
	v, err := e.Fold()
	if err != nil {
		return "", err
	}
	return cast.ToStringE(v)
}

// FoldFloat64 folds an expression and coerces the result to a float64.
func FoldFloat64(e Expression) (float64, error) {
	v, err := e.Fold()
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

func init() {
	MustRegisterDecoder(literalName, decodeLiteral)
}
