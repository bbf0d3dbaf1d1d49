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
Package aggregate defines the logical aggregate function nodes the planner
maps onto physical kernels.

Core components:
  - Function: the common contract of every aggregate node (kind, target
    field, configuration parameters, type resolution, kernel selection)
  - Concrete nodes: Count, CountDistinct, Min, Max, Sum, Percentile,
    MedianAbsoluteDeviation, Values, Top, Rate, SpatialCentroid, and the
    ToPartial/FromPartial transport pair
  - SurrogateExpression: the rewrite hook a node implements when a cheaper
    equivalent exists for some of its parameterizations

Every node resolves its own types and produces user-facing diagnostics;
kernel selection after a successful resolution never fails on type grounds.
*/
package aggregate
