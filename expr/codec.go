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

package expr

import (
	"fmt"
	"sync"

	"github.com/rulego/distsql/wire"
)

// Decoder reconstructs one expression node type from its wire payload.
type Decoder func(r *wire.Reader) (Expression, error)

var (
	decodersMu sync.RWMutex
	decoders   = make(map[string]Decoder)
)

// RegisterDecoder registers the decoder for a node type name. Registering
// the same name twice is an error: two node types sharing a wire name would
// silently corrupt remote plans.
func RegisterDecoder(name string, d Decoder) error {
	decodersMu.Lock()
	defer decodersMu.Unlock()

	if name == "" {
		return fmt.Errorf("decoder name must not be empty")
	}
	if d == nil {
		return fmt.Errorf("decoder for %s must not be nil", name)
	}
	if _, exists := decoders[name]; exists {
		return fmt.Errorf("decoder %s already registered", name)
	}
	decoders[name] = d
	return nil
}

// MustRegisterDecoder is RegisterDecoder for init-time registration, where a
// failure means the binary itself is miswired.
func MustRegisterDecoder(name string, d Decoder) {
	if err := RegisterDecoder(name, d); err != nil {
		panic(err)
	}
}

// WriteNamed encodes an expression as a name frame followed by the node
// payload, so that ReadNamed can dispatch without knowing the concrete type.
func WriteNamed(w *wire.Writer, e Expression) error {
	w.WriteString(e.WriteableName())
	return e.WriteTo(w)
}

// ReadNamed decodes one expression node written by WriteNamed.
func ReadNamed(r *wire.Reader) (Expression, error) {
	name, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	decodersMu.RLock()
	d, ok := decoders[name]
	decodersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no decoder registered for expression %s", name)
	}
	return d(r)
}
