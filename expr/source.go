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

	"github.com/rulego/distsql/wire"
)

// Source locates an expression node in the original query text. Diagnostics
// quote Text so the user sees the offending fragment verbatim.
type Source struct {
	Line   int
	Column int
	Text   string
}

// EmptySource marks synthesized nodes that have no user-written origin.
var EmptySource = Source{}

func (s Source) String() string {
	if s == EmptySource {
		return "<synthetic>"
	}
	return fmt.Sprintf("%d:%d [%s]", s.Line, s.Column, s.Text)
}

func WriteSource(w *wire.Writer, s Source) {
	w.WriteInt(s.Line)
	w.WriteInt(s.Column)
	w.WriteString(s.Text)
}

func ReadSource(r *wire.Reader) (Source, error) {
	line, err := r.ReadInt()
	if err != nil {
		return Source{}, err
	}
	column, err := r.ReadInt()
	if err != nil {
		return Source{}, err
	}
	text, err := r.ReadString()
	if err != nil {
		return Source{}, err
	}
	return Source{Line: line, Column: column, Text: text}, nil
}
