/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package graphlib

import (
	"context"

	"github.com/flxj/tri3ec/triconn"
)

// ThreeEdgeConnectedComponents partitions g's vertices into maximal
// three-edge-connected components: removing any two edges leaves every
// pair of vertices within a reported group still connected.
//
// The classical result assumes g is biconnected; on a non-biconnected
// graph, bridges are implicitly treated as cut-pairs, so the partition
// is still well-defined but no longer matches the textbook definition
// on the whole graph. Callers that need that guarantee should first
// check IsCutvertex/IsBridge over their own edge set.
//
// ctx is checked between vertices while the dense adjacency is being
// extracted from g; once the underlying computation starts it always
// runs to completion, since the algorithm itself observes no
// cancellation token.
func ThreeEdgeConnectedComponents[K comparable, V any, W number](ctx context.Context, g Graph[K, V, W]) ([][]K, error) {
	vertexes, err := g.AllVertexes()
	if err != nil {
		return nil, err
	}

	index := make(map[K]int, len(vertexes))
	keys := make([]K, len(vertexes))
	for i, v := range vertexes {
		index[v.Key] = i
		keys[i] = v.Key
	}

	adjacency := make([][]int, len(vertexes))
	for i, v := range vertexes {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Neighbours collapses parallel edges into a set, which would
		// hide the exact cut-pair multiplicity three-edge-connectivity
		// depends on. IncidentEdges preserves one entry per edge, so the
		// required adjacency-list duplication falls out naturally: a
		// self-loop at v contributes two entries, one per endpoint role.
		es, err := g.IncidentEdges(v.Key)
		if err != nil {
			return nil, err
		}
		var neighbours []int
		for _, e := range es {
			switch {
			case e.Head == v.Key && e.Tail == v.Key:
				neighbours = append(neighbours, index[v.Key], index[v.Key])
			case e.Head == v.Key:
				neighbours = append(neighbours, index[e.Tail])
			default:
				neighbours = append(neighbours, index[e.Head])
			}
		}
		adjacency[i] = neighbours
	}

	res, err := triconn.Compute(adjacency)
	if err != nil {
		return nil, err
	}

	components := make([][]K, len(res.Components))
	for i, comp := range res.Components {
		ks := make([]K, len(comp))
		for j, id := range comp {
			ks[j] = keys[id]
		}
		components[i] = ks
	}
	return components, nil
}

// IsThreeEdgeConnected reports whether g's vertices form a single
// three-edge-connected component as a whole.
func IsThreeEdgeConnected[K comparable, V any, W number](ctx context.Context, g Graph[K, V, W]) (bool, error) {
	components, err := ThreeEdgeConnectedComponents[K, V, W](ctx, g)
	if err != nil {
		return false, err
	}
	return len(components) == 1, nil
}
