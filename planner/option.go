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

import "github.com/rulego/distsql/logger"

// Option configures an AggregateMapper at construction time.
type Option func(*AggregateMapper)

// WithLogger routes the mapper's diagnostics to a specific logger instead
// of the process default.
func WithLogger(log logger.Logger) Option {
	return func(m *AggregateMapper) {
		m.log = log
	}
}

// WithoutSurrogates disables algebraic surrogate rewriting, so every
// aggregate maps to its own physical form. Intended for plan debugging and
// for comparing rewritten plans against the direct mapping.
func WithoutSurrogates() Option {
	return func(m *AggregateMapper) {
		m.surrogates = false
	}
}
