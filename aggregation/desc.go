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

package aggregation

import (
	"fmt"

	"github.com/rulego/distsql/types"
)

// IntermediateStateDesc describes one column of an aggregator variant's
// partial state. Position within the descriptor list is the physical channel
// index, so order is part of the contract.
type IntermediateStateDesc struct {
	// Name of the intermediate column, unique within one variant.
	Name string
	// Element is the primitive tag of the column.
	Element types.ElementType
	// DataTypeOverride, when not Unknown, replaces the element-derived
	// logical type. Used by opaque state columns (partial pass-through)
	// whose element tag has no logical mapping.
	DataTypeOverride types.DataType
}

// LogicalType resolves the logical type the column carries across the
// partial/final boundary: the explicit override if present, otherwise the
// fixed element mapping. An element with no mapping is an engine defect.
func (d IntermediateStateDesc) LogicalType() (types.DataType, error) {
	if d.DataTypeOverride != types.Unknown {
		return d.DataTypeOverride, nil
	}
	t, err := d.Element.DataType()
	if err != nil {
		return types.Unknown, fmt.Errorf("intermediate state %s: %w", d.Name, err)
	}
	return t, nil
}

func (d IntermediateStateDesc) String() string {
	return fmt.Sprintf("%s:%s", d.Name, d.Element)
}
