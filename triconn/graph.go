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

import "fmt"

// adjCell is one node of a vertex's singly linked adjacency list.
type adjCell struct {
	u    int
	more *adjCell
}

// backCell is one node of a vertex's singly linked outgoing back-edge
// list (LB). LBend tracking is kept alongside in the engine so a cell
// to its own tail can be appended in O(1).
type backCell struct {
	u    int
	more *backCell
}

// buildAdjacency turns a 0-based external adjacency list into the
// dense, 1-based internal representation LG uses. Vertex 0 is the
// "no parent" sentinel, so external id i maps to internal id i+1.
//
// Every undirected edge (a,b) must appear once in a's list and once in
// b's list; this is checked via a directed-pair counter rather than
// assuming sortedness or uniqueness, since self-loops and parallel
// edges are both legal inputs.
func buildAdjacency(adjacency [][]int) (lg []*adjCell, n int, err error) {
	n = len(adjacency)
	lg = make([]*adjCell, n+1)

	seen := make(map[[2]int]int, n)
	for a, neighbours := range adjacency {
		for _, b := range neighbours {
			if b < 0 || b >= n {
				return nil, 0, fmt.Errorf("%w: vertex %d references out-of-range neighbour %d", ErrMalformedInput, a, b)
			}
			iw, iu := a+1, b+1
			cell := &adjCell{u: iu, more: lg[iw]}
			lg[iw] = cell

			seen[[2]int{a, b}]++
		}
	}

	for key, count := range seen {
		a, b := key[0], key[1]
		if a == b {
			// self-loop: must appear an even number of times on the
			// single vertex's own list to be well-formed.
			if count%2 != 0 {
				return nil, 0, fmt.Errorf("%w: self-loop at vertex %d listed an odd number of times", ErrInconsistentUndirected, a)
			}
			continue
		}
		if seen[[2]int{b, a}] != count {
			return nil, 0, fmt.Errorf("%w: edge (%d,%d) appears %d time(s) but mate (%d,%d) appears %d time(s)",
				ErrInconsistentUndirected, a, b, count, b, a, seen[[2]int{b, a}])
		}
	}

	return lg, n, nil
}
