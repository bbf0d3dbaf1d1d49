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

/*
Package distsql is the physical-aggregation mapping layer of a distributed
query engine: it turns analyzed logical aggregate expressions into the
intermediate-state column contract of a two-phase (partial/final)
distributed aggregation pipeline.

# Core features

• Closed-world variant registry - every {kind × value category × auxiliary
config × grouping mode} combination a query can produce is enumerated once
at startup and looked up without locking afterwards

• Plan-time constant folding - aggregate configuration parameters (limits,
order tokens, precisions, percentiles) fold to concrete values before any
row is read

• Algebraic surrogate rewrites - parameterizations with a cheaper
equivalent (a top-1 collection is a plain extremum) are substituted before
physical mapping

• Transportable plan nodes - every aggregate node encodes to a name-framed
ordered child list so remote executors reconstruct identical plans

# Getting started

Map a grouped sum onto its physical intermediate state:

	package main

	import (
		"fmt"

		"github.com/rulego/distsql"
		"github.com/rulego/distsql/aggregate"
		"github.com/rulego/distsql/expr"
		"github.com/rulego/distsql/types"
	)

	func main() {
		session, err := distsql.NewSession()
		if err != nil {
			panic(err)
		}

		field := expr.NewFieldAttribute(expr.EmptySource, "bytes", types.Long)
		sum := aggregate.NewSum(expr.EmptySource, field)

		columns, err := session.MapAggregates(true, sum)
		if err != nil {
			panic(err)
		}
		for _, column := range columns {
			fmt.Printf("%s %s\n", column.Name(), column.DataType())
		}
		// groups integer
		// sum long
		// seen boolean
	}

The packages layer bottom-up: types (logical and element types), wire (plan
fragment codec), expr (expression nodes, folding, codec registry),
aggregation (variant registry and kernel suppliers), aggregate (logical
aggregate functions), planner (the per-session mapper).
*/
package distsql
