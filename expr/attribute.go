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

// attribute carries the parts shared by every leaf column reference.
type attribute struct {
	source   Source
	name     string
	dataType types.DataType
}

func (a *attribute) Source() Source           { return a.source }
func (a *attribute) Name() string             { return a.name }
func (a *attribute) DataType() types.DataType { return a.dataType }
func (a *attribute) Children() []Expression   { return nil }
func (a *attribute) Resolved() bool           { return a.dataType != types.Unknown }
func (a *attribute) Foldable() bool           { return false }

func (a *attribute) Fold() (interface{}, error) {
	return nil, fmt.Errorf("attribute %s is not foldable", a.name)
}

func (a *attribute) String() string {
	return a.name
}

func (a *attribute) writeTo(w *wire.Writer) error {
	WriteSource(w, a.source)
	w.WriteString(a.name)
	w.WriteString(a.dataType.String())
	return nil
}

func readAttribute(r *wire.Reader) (attribute, error) {
	source, err := ReadSource(r)
	if err != nil {
		return attribute{}, err
	}
	name, err := r.ReadString()
	if err != nil {
		return attribute{}, err
	}
	typeName, err := r.ReadString()
	if err != nil {
		return attribute{}, err
	}
	dataType, err := types.ParseDataType(typeName)
	if err != nil {
		return attribute{}, err
	}
	return attribute{source: source, name: name, dataType: dataType}, nil
}

// FieldAttribute references a stored field of the underlying index. It
// passes through the aggregation boundary unchanged and contributes no
// intermediate state.
type FieldAttribute struct {
	attribute
}

// NewFieldAttribute creates a reference to a stored field.
func NewFieldAttribute(source Source, name string, dataType types.DataType) *FieldAttribute {
	return &FieldAttribute{attribute{source: source, name: name, dataType: dataType}}
}

const fieldAttributeName = "FieldAttribute"

func (f *FieldAttribute) WriteableName() string { return fieldAttributeName }

func (f *FieldAttribute) WriteTo(w *wire.Writer) error {
	return f.writeTo(w)
}

// MetadataAttribute references an engine-provided metadata column, such as
// the row's shard or index name.
type MetadataAttribute struct {
	attribute
}

// NewMetadataAttribute creates a reference to a metadata column.
func NewMetadataAttribute(source Source, name string, dataType types.DataType) *MetadataAttribute {
	return &MetadataAttribute{attribute{source: source, name: name, dataType: dataType}}
}

const metadataAttributeName = "MetadataAttribute"

func (m *MetadataAttribute) WriteableName() string { return metadataAttributeName }

func (m *MetadataAttribute) WriteTo(w *wire.Writer) error {
	return m.writeTo(w)
}

// ReferenceAttribute is a synthesized reference-by-name to a column produced
// earlier in the plan. The aggregate mapper emits these as the contract
// between the partial and final aggregation stages.
type ReferenceAttribute struct {
	attribute
}

// NewReferenceAttribute creates a synthesized named reference.
func NewReferenceAttribute(source Source, name string, dataType types.DataType) *ReferenceAttribute {
	return &ReferenceAttribute{attribute{source: source, name: name, dataType: dataType}}
}

const referenceAttributeName = "ReferenceAttribute"

func (ra *ReferenceAttribute) WriteableName() string { return referenceAttributeName }

func (ra *ReferenceAttribute) WriteTo(w *wire.Writer) error {
	return ra.writeTo(w)
}

func init() {
	MustRegisterDecoder(fieldAttributeName, func(r *wire.Reader) (Expression, error) {
		a, err := readAttribute(r)
		if err != nil {
			return nil, err
		}
		return &FieldAttribute{a}, nil
	})
	MustRegisterDecoder(metadataAttributeName, func(r *wire.Reader) (Expression, error) {
		a, err := readAttribute(r)
		if err != nil {
			return nil, err
		}
		return &MetadataAttribute{a}, nil
	})
	MustRegisterDecoder(referenceAttributeName, func(r *wire.Reader) (Expression, error) {
		a, err := readAttribute(r)
		if err != nil {
			return nil, err
		}
		return &ReferenceAttribute{a}, nil
	})
}
