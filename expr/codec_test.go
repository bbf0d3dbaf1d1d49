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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/distsql/types"
	"github.com/rulego/distsql/wire"
)

func roundTrip(t *testing.T, e Expression) Expression {
	t.Helper()
	w := wire.NewWriter()
	require.NoError(t, WriteNamed(w, e))
	decoded, err := ReadNamed(wire.NewReader(w.Bytes()))
	require.NoError(t, err)
	return decoded
}

func TestAttributeRoundTrip(t *testing.T) {
	source := Source{Line: 2, Column: 7, Text: "price"}

	decoded := roundTrip(t, NewFieldAttribute(source, "price", types.Double))
	field, ok := decoded.(*FieldAttribute)
	require.True(t, ok)
	assert.Equal(t, "price", field.Name())
	assert.Equal(t, types.Double, field.DataType())
	assert.Equal(t, source, field.Source())

	decoded = roundTrip(t, NewMetadataAttribute(EmptySource, "_index", types.Keyword))
	meta, ok := decoded.(*MetadataAttribute)
	require.True(t, ok)
	assert.Equal(t, "_index", meta.Name())

	decoded = roundTrip(t, NewReferenceAttribute(EmptySource, "sum", types.Long))
	ref, ok := decoded.(*ReferenceAttribute)
	require.True(t, ok)
	assert.Equal(t, "sum", ref.Name())
	assert.Equal(t, types.Long, ref.DataType())
}

func TestLiteralRoundTrip(t *testing.T) {
	literals := []*Literal{
		NewIntLiteral(EmptySource, 42),
		NewStringLiteral(EmptySource, "DESC"),
		NewBoolLiteral(EmptySource, true),
		NewDoubleLiteral(EmptySource, 2.5),
		NullLiteral(EmptySource),
	}
	for _, l := range literals {
		decoded := roundTrip(t, l)
		got, ok := decoded.(*Literal)
		require.True(t, ok)
		assert.Equal(t, l.DataType(), got.DataType(), "literal %s", l)
		assert.Equal(t, l.Value(), got.Value(), "literal %s", l)
	}
}

func TestAliasRoundTrip(t *testing.T) {
	alias := NewAlias(Source{Line: 1, Column: 1, Text: "a AS x"}, "x",
		NewFieldAttribute(EmptySource, "a", types.Long))

	decoded := roundTrip(t, alias)
	got, ok := decoded.(*Alias)
	require.True(t, ok)
	assert.Equal(t, "x", got.Name())
	child, ok := got.Child().(*FieldAttribute)
	require.True(t, ok)
	assert.Equal(t, "a", child.Name())
}

func TestScalarExpressionRoundTrip(t *testing.T) {
	s, err := NewScalarExpression(EmptySource, "10 / 2")
	require.NoError(t, err)

	decoded := roundTrip(t, s)
	got, ok := decoded.(*ScalarExpression)
	require.True(t, ok)
	assert.Equal(t, "10 / 2", got.Code())
	assert.Equal(t, s.DataType(), got.DataType())
	folded, err := FoldInt(got)
	require.NoError(t, err)
	assert.Equal(t, 5, folded)
}

func TestRegisterDecoderRejectsDuplicates(t *testing.T) {
	decoder := func(r *wire.Reader) (Expression, error) { return nil, nil }

	require.NoError(t, RegisterDecoder("codec-test-node", decoder))
	err := RegisterDecoder("codec-test-node", decoder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterDecoderRejectsInvalidArgs(t *testing.T) {
	assert.Error(t, RegisterDecoder("", func(r *wire.Reader) (Expression, error) { return nil, nil }))
	assert.Error(t, RegisterDecoder("codec-test-nil", nil))
}

func TestReadNamedUnknownName(t *testing.T) {
	w := wire.NewWriter()
	w.WriteString("NoSuchNode")

	_, err := ReadNamed(wire.NewReader(w.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no decoder registered")
}
