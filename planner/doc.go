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
Package planner maps logical aggregate expressions onto the two-phase
physical aggregation pipeline.

Core components:
  - AggregateMapper: the per-planning-session façade that resolves each
    aggregate's registry variant and synthesizes the named references
    wiring the partial stage to the final stage
  - ApplySurrogates: the algebraic rewrite pass that substitutes cheaper
    equivalent aggregates before mapping
  - Option: functional configuration (logger, rewrite toggles)

One AggregateMapper serves one single-threaded planning pass; the variant
registry behind it is shared, immutable, and read without locking.
*/
package planner
