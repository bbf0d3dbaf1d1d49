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

package aggregate

import (
	"fmt"

	"github.com/rulego/distsql/aggregation"
	"github.com/rulego/distsql/expr"
	"github.com/rulego/distsql/types"
	"github.com/rulego/distsql/wire"
)

// SpatialCentroid computes the running centroid of a spatial point field.
// The planner maps it from source values; the doc-values specialization is
// chosen by a later physical rewrite, outside this layer.
type SpatialCentroid struct {
	baseFunction
}

// NewSpatialCentroid creates a centroid aggregate over a spatial field.
func NewSpatialCentroid(source expr.Source, field expr.Expression) *SpatialCentroid {
	return &SpatialCentroid{newBaseFunction(source, field)}
}

func (s *SpatialCentroid) Kind() aggregation.Kind   { return aggregation.SpatialCentroid }
func (s *SpatialCentroid) DataType() types.DataType { return s.field.DataType() }

func (s *SpatialCentroid) ResolveType() expr.TypeResolution {
	return s.resolveChildren().
		And(expr.IsType(s.field, types.DataType.IsSpatial, s.sourceText(), expr.First,
			"geo_point or cartesian_point"))
}

func (s *SpatialCentroid) Supplier(inputChannels []int) (aggregation.FunctionSupplier, error) {
	return plainSupplier(s, inputChannels)
}

func (s *SpatialCentroid) String() string {
	return fmt.Sprintf("st_centroid_agg(%s)", s.field)
}

func (s *SpatialCentroid) WriteableName() string { return aggregation.SpatialCentroid.String() }

func (s *SpatialCentroid) WriteTo(w *wire.Writer) error {
	return s.writeTo(w)
}

func init() {
	expr.MustRegisterDecoder(aggregation.SpatialCentroid.String(), func(r *wire.Reader) (expr.Expression, error) {
		base, err := readBase(r, 0)
		if err != nil {
			return nil, err
		}
		return &SpatialCentroid{base}, nil
	})
}
