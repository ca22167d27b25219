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

package triconn

// Option configures a Compute call.
type Option func(*computeOptions)

type computeOptions struct {
	log Logger
}

// WithLogger overrides the default slog-backed Logger.
func WithLogger(l Logger) Option {
	return func(o *computeOptions) {
		o.log = l
	}
}

// Compute partitions an undirected multigraph into its three-edge
// connected components.
//
// adjacency is indexed 0..N-1; adjacency[i] lists the 0-based ids of
// i's neighbours. Every undirected edge (a,b) must appear once in a's
// list and once in b's list (self-loops twice on the same list);
// violating this returns ErrInconsistentUndirected. A neighbour id
// outside [0,N) returns ErrMalformedInput.
//
// The algorithm's classical semantics assume a biconnected input; on a
// non-biconnected graph, bridge edges are implicitly treated as
// cut-pairs, and the returned partition, while well-defined, no longer
// corresponds to three-edge-connectivity of the original graph as a
// whole.
func Compute(adjacency [][]int, opts ...Option) (*Result, error) {
	o := computeOptions{log: defaultLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = defaultLogger()
	}

	lg, n, err := buildAdjacency(adjacency)
	if err != nil {
		return nil, err
	}

	edgeCount := 0
	for _, ns := range adjacency {
		edgeCount += len(ns)
	}
	edgeCount /= 2

	o.log.Infof("computing three-edge-connected components: %d vertices, %d edges", n, edgeCount)

	e := newEngine(lg, n, o.log)
	for r := 1; r <= n; r++ {
		if e.visited[r] {
			continue
		}
		e.threeEdgeConnect(r, 0)
		e.emitComponent(r)
	}

	o.log.Infof("found %d component(s)", len(e.components))

	return &Result{Components: e.components}, nil
}
