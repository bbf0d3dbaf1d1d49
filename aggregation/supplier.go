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

package aggregation

// FunctionSupplier is what the mapping layer hands the physical plan
// builder per aggregate node: which kernel family to instantiate and the
// input channels it reads. The executor turns suppliers into running
// aggregators; this layer never executes them.
type FunctionSupplier interface {
	// Describe returns the kernel family name, without the grouping suffix:
	// the executor picks the grouping or non-grouping form per operator.
	Describe() string
	// InputChannels returns the channel indices, in kernel argument order.
	InputChannels() []int
}

// supplier is the configuration-free supplier used by aggregates whose
// kernels need nothing beyond the input channels.
type supplier struct {
	name     string
	channels []int
}

// NewFunctionSupplier creates a plain supplier for the named kernel family.
func NewFunctionSupplier(name string, channels []int) FunctionSupplier {
	return &supplier{name: name, channels: channels}
}

func (s *supplier) Describe() string     { return s.name }
func (s *supplier) InputChannels() []int { return s.channels }

// topSupplier carries the folded configuration shared by the top-N kernels.
type topSupplier struct {
	channels []int
	// Limit is the folded maximum number of collected values, always > 0.
	Limit int
	// Ascending is true when the smallest values are kept.
	Ascending bool
}

func (s *topSupplier) InputChannels() []int { return s.channels }

// TopIntAggregatorFunctionSupplier supplies the int-specialized top-N kernel.
type TopIntAggregatorFunctionSupplier struct{ topSupplier }

// NewTopIntAggregatorFunctionSupplier creates a supplier for the
// int-specialized top-N kernel.
func NewTopIntAggregatorFunctionSupplier(channels []int, limit int, ascending bool) *TopIntAggregatorFunctionSupplier {
	return &TopIntAggregatorFunctionSupplier{topSupplier{channels: channels, Limit: limit, Ascending: ascending}}
}

func (s *TopIntAggregatorFunctionSupplier) Describe() string { return "TopIntAggregatorFunction" }

// TopLongAggregatorFunctionSupplier supplies the long-specialized top-N
// kernel. Datetime fields ride on this one.
type TopLongAggregatorFunctionSupplier struct{ topSupplier }

// NewTopLongAggregatorFunctionSupplier creates a supplier for the
// long-specialized top-N kernel.
func NewTopLongAggregatorFunctionSupplier(channels []int, limit int, ascending bool) *TopLongAggregatorFunctionSupplier {
	return &TopLongAggregatorFunctionSupplier{topSupplier{channels: channels, Limit: limit, Ascending: ascending}}
}

func (s *TopLongAggregatorFunctionSupplier) Describe() string { return "TopLongAggregatorFunction" }

// TopDoubleAggregatorFunctionSupplier supplies the double-specialized top-N
// kernel.
type TopDoubleAggregatorFunctionSupplier struct{ topSupplier }

// NewTopDoubleAggregatorFunctionSupplier creates a supplier for the
// double-specialized top-N kernel.
func NewTopDoubleAggregatorFunctionSupplier(channels []int, limit int, ascending bool) *TopDoubleAggregatorFunctionSupplier {
	return &TopDoubleAggregatorFunctionSupplier{topSupplier{channels: channels, Limit: limit, Ascending: ascending}}
}

func (s *TopDoubleAggregatorFunctionSupplier) Describe() string {
	return "TopDoubleAggregatorFunction"
}

// TopBooleanAggregatorFunctionSupplier supplies the boolean-specialized
// top-N kernel.
type TopBooleanAggregatorFunctionSupplier struct{ topSupplier }

// NewTopBooleanAggregatorFunctionSupplier creates a supplier for the
// boolean-specialized top-N kernel.
func NewTopBooleanAggregatorFunctionSupplier(channels []int, limit int, ascending bool) *TopBooleanAggregatorFunctionSupplier {
	return &TopBooleanAggregatorFunctionSupplier{topSupplier{channels: channels, Limit: limit, Ascending: ascending}}
}

func (s *TopBooleanAggregatorFunctionSupplier) Describe() string {
	return "TopBooleanAggregatorFunction"
}
