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

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rulego/distsql/logger"
)

// VariantKey identifies one physical aggregator specialization: an aggregate
// kind applied to a value-type category under an auxiliary configuration, in
// grouping or non-grouping form. Keys are comparable and used directly as
// map keys.
type VariantKey struct {
	Kind      Kind
	Category  string
	Auxiliary string
	Grouping  bool
}

// ImplementationName composes the deterministic identifier of the physical
// implementation backing the key. The executor resolves kernels by the same
// composition, which is how both sides stay consistent without sharing code.
func (k VariantKey) ImplementationName() string {
	var sb strings.Builder
	sb.WriteString(k.Kind.String())
	sb.WriteString(k.Category)
	sb.WriteString(k.Auxiliary)
	if k.Grouping {
		sb.WriteString("Grouping")
	}
	sb.WriteString("AggregatorFunction")
	return sb.String()
}

func (k VariantKey) String() string {
	return fmt.Sprintf("%s[category=%q, auxiliary=%q, grouping=%t]", k.Kind, k.Category, k.Auxiliary, k.Grouping)
}

// UnknownVariantError reports a variant key the registry was never built
// with. It is an engine defect (a kind added without registry coverage, or
// type resolution letting an unsupported category through), not a user error.
type UnknownVariantError struct {
	Key VariantKey
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("cannot find intermediate state for: %s", e.Key)
}

// ConstructionError reports that the registry could not be fully built. The
// engine must not start with a partially populated registry.
type ConstructionError struct {
	Key    VariantKey
	Reason error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("building aggregator registry failed at %s: %v", e.Key.ImplementationName(), e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return e.Reason
}

// Registry maps every legal variant key to the ordered intermediate-state
// shape its implementation declares. It is built exactly once and immutable
// afterwards, so concurrent planning sessions read it without locking.
type Registry struct {
	entries map[VariantKey][]IntermediateStateDesc
}

// Lookup returns the intermediate-state shape of the variant. The returned
// slice is shared and must not be mutated.
func (r *Registry) Lookup(key VariantKey) ([]IntermediateStateDesc, error) {
	state, ok := r.entries[key]
	if !ok {
		return nil, &UnknownVariantError{Key: key}
	}
	return state, nil
}

// Size returns the number of registered variants.
func (r *Registry) Size() int {
	return len(r.entries)
}

// Keys returns every registered variant key. Intended for completeness
// checks; the iteration order is unspecified.
func (r *Registry) Keys() []VariantKey {
	keys := make([]VariantKey, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

var (
	registryOnce sync.Once
	registry     *Registry
	registryErr  error
)

// StateRegistry returns the process-wide registry, building it on first use.
// Construction runs under sync.Once, so racing planning sessions observe
// exactly one build. A construction error is sticky: the engine refuses to
// plan until restarted with a fixed catalogue.
func StateRegistry() (*Registry, error) {
	registryOnce.Do(func() {
		registry, registryErr = buildRegistry()
	})
	return registry, registryErr
}

// buildRegistry enumerates the per-kind rule table crossed with grouping
// forms and collects each variant's declared shape. Duplicate keys and
// missing shapes are construction errors.
func buildRegistry() (*Registry, error) {
	entries := make(map[VariantKey][]IntermediateStateDesc)
	for _, kind := range Kinds() {
		rule, err := ruleFor(kind)
		if err != nil {
			return nil, &ConstructionError{Key: VariantKey{Kind: kind}, Reason: err}
		}
		groupings := []bool{true, false}
		if rule.groupingOnly {
			groupings = []bool{true}
		}
		for _, category := range rule.categories {
			for _, auxiliary := range rule.auxiliaries {
				for _, grouping := range groupings {
					key := VariantKey{Kind: kind, Category: category, Auxiliary: auxiliary, Grouping: grouping}
					state, err := intermediateStateDesc(key)
					if err != nil {
						return nil, &ConstructionError{Key: key, Reason: err}
					}
					if len(state) == 0 {
						return nil, &ConstructionError{Key: key, Reason: fmt.Errorf("empty intermediate state")}
					}
					if _, dup := entries[key]; dup {
						return nil, &ConstructionError{Key: key, Reason: fmt.Errorf("duplicate variant key")}
					}
					entries[key] = state
				}
			}
		}
	}
	logger.Debug("aggregation: registered %d physical aggregator variants", len(entries))
	return &Registry{entries: entries}, nil
}
