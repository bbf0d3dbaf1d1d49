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

package types

import "fmt"

// ElementType is the primitive column tag of one channel of physical
// aggregation state. It is deliberately narrower than DataType: many logical
// types share one physical element.
type ElementType int

const (
	ElemUnknown ElementType = iota
	ElemBoolean
	ElemInt
	ElemLong
	ElemDouble
	ElemFloat
	ElemBytesRef
	ElemNull
	ElemDoc
	ElemComposite
)

func (e ElementType) String() string {
	switch e {
	case ElemBoolean:
		return "BOOLEAN"
	case ElemInt:
		return "INT"
	case ElemLong:
		return "LONG"
	case ElemDouble:
		return "DOUBLE"
	case ElemFloat:
		return "FLOAT"
	case ElemBytesRef:
		return "BYTES_REF"
	case ElemNull:
		return "NULL"
	case ElemDoc:
		return "DOC"
	case ElemComposite:
		return "COMPOSITE"
	default:
		return "UNKNOWN"
	}
}

// DataType maps a physical element tag to the logical type that intermediate
// state columns carry across the partial/final boundary. Only the five
// aggregation-state elements are legal here; anything else surfacing at the
// mapping layer is an engine defect.
func (e ElementType) DataType() (DataType, error) {
	switch e {
	case ElemBoolean:
		return Boolean, nil
	case ElemBytesRef:
		return Keyword, nil
	case ElemInt:
		return Integer, nil
	case ElemLong:
		return Long, nil
	case ElemDouble:
		return Double, nil
	default:
		return Unknown, fmt.Errorf("unsupported agg type: %s", e)
	}
}
