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
Package expr provides the analyzed logical expression tree consumed by the
physical planner.

# Node types

• Literal - constants produced by parsing or earlier folding
• ScalarExpression - constant scalar programs folded at plan time via expr-lang/expr
• FieldAttribute / MetadataAttribute - references to stored and engine columns
• ReferenceAttribute - synthesized references to columns produced earlier in the plan
• Alias - output renaming, stripped by Unwrap before physical mapping

# Type resolution

TypeResolution is the outcome of type-checking a node: a failure carries a
user-facing diagnostic quoting the offending source fragment, and the query
is rejected during analysis rather than at execution.

# Transport

Every node encodes itself through the wire package as a name frame plus an
ordered child payload. Decoders are registered once per node type; duplicate
registration is an error.
*/
package expr
