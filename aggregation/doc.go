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
Package aggregation is the physical aggregator catalogue: the compatibility
matrix between logical aggregate kinds and type-specialized execution
kernels, reified as an enumerable table.

The registry crosses every aggregate Kind with its legal value-type
categories, auxiliary configurations, and grouping forms, and records the
ordered intermediate-state shape each resulting variant declares. It is
built exactly once per process and is immutable afterwards; a key that
cannot be built, or is built twice, aborts construction, so the engine never
runs with a partially populated catalogue.

FunctionSupplier values are the per-node output of supplier selection: the
kernel family plus folded configuration and input channels, handed to the
physical plan builder. Execution itself lives in the compute layer, not
here.
*/
package aggregation
