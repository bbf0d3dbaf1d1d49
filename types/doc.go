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
Package types defines the type vocabulary shared by the logical planner and
the physical aggregation layer.

DataType is the logical type carried by analyzed expression nodes.
ElementType is the primitive tag of one column of physical aggregation
state. AggCategory folds a DataType into the value-type category used when
composing physical aggregator implementation names, which is how the planner
and the executor agree on which type-specialized kernel serves a given
logical aggregate.
*/
package types
