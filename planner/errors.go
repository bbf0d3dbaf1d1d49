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

package planner

import (
	"fmt"

	"github.com/rulego/distsql/expr"
)

// UnknownAggregateExpressionError reports an expression the mapper has no
// rule for. It is an engine defect: analysis handed physical mapping a node
// shape that is neither an aggregate function nor a pass-through attribute.
// The planning call surfaces it and aborts the query.
type UnknownAggregateExpressionError struct {
	Expression expr.Expression
}

func (e *UnknownAggregateExpressionError) Error() string {
	return fmt.Sprintf("cannot map expression to intermediate aggregation state: %s", e.Expression)
}
