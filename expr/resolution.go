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
)

// TypeResolution is the outcome of type-checking an expression node. A
// failed resolution carries a user-facing diagnostic; it is reported as a
// query-analysis error, never as a process fault.
type TypeResolution struct {
	message string
}

// TypeResolved is the successful resolution.
var TypeResolved = TypeResolution{}

// NewTypeResolution creates a failed resolution with a formatted diagnostic.
func NewTypeResolution(format string, args ...interface{}) TypeResolution {
	return TypeResolution{message: fmt.Sprintf(format, args...)}
}

// Resolved reports whether resolution succeeded.
func (r TypeResolution) Resolved() bool {
	return r.message == ""
}

// Unresolved reports whether resolution failed.
func (r TypeResolution) Unresolved() bool {
	return r.message != ""
}

// Message returns the diagnostic of a failed resolution.
func (r TypeResolution) Message() string {
	return r.message
}

// And chains resolutions: the first failure wins.
func (r TypeResolution) And(next TypeResolution) TypeResolution {
	if r.Unresolved() {
		return r
	}
	return next
}

// ParamOrdinal names an argument position in diagnostics.
type ParamOrdinal int

const (
	First ParamOrdinal = iota
	Second
	Third
)

func (p ParamOrdinal) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	default:
		return fmt.Sprintf("argument %d", int(p)+1)
	}
}

// IsType checks the argument's logical type against a predicate, producing
// a diagnostic that names the expected types when it fails.
func IsType(e Expression, pred func(types.DataType) bool, operation string, ord ParamOrdinal, expected string) TypeResolution {
	if pred(e.DataType()) {
		return TypeResolved
	}
	return NewTypeResolution(
		"%s argument of [%s] must be [%s], found value [%s] type [%s]",
		ord, operation, expected, e, e.DataType(),
	)
}

// IsNotNullAndFoldable checks that a configuration parameter is a non-null
// plan-time constant.
func IsNotNullAndFoldable(e Expression, operation string, ord ParamOrdinal) TypeResolution {
	if e.DataType() == types.Null {
		return NewTypeResolution(
			"%s argument of [%s] cannot be null, received [%s]", ord, operation, e,
		)
	}
	if !e.Foldable() {
		return NewTypeResolution(
			"%s argument of [%s] must be a constant, received [%s]", ord, operation, e,
		)
	}
	return TypeResolved
}

// IsString checks that the argument is string-typed.
func IsString(e Expression, operation string, ord ParamOrdinal) TypeResolution {
	return IsType(e, types.DataType.IsString, operation, ord, "string")
}

// IsInteger checks that the argument is integer-typed.
func IsInteger(e Expression, operation string, ord ParamOrdinal) TypeResolution {
	return IsType(e, func(t types.DataType) bool { return t == types.Integer }, operation, ord, "integer")
}

// IsNumeric checks that the argument is numeric.
func IsNumeric(e Expression, operation string, ord ParamOrdinal) TypeResolution {
	return IsType(e, types.DataType.IsNumeric, operation, ord, "numeric")
}
