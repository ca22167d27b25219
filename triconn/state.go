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

// engine holds every per-vertex array and the back-edge/adjacency
// arenas for a single Compute call. It is never reused or shared
// across calls: once Compute returns, nothing keeps it reachable and
// the whole arena is collected together.
type engine struct {
	n int

	lg []*adjCell

	lb    []*backCell
	lbEnd []*backCell

	pre              []int
	lowpt            []int
	nd               []int
	nextOnPath       []int
	nextSigmaElement []int
	visited          []bool
	outgoingTreeEdge []bool

	count int

	components [][]int

	log Logger
}

func newEngine(lg []*adjCell, n int, log Logger) *engine {
	e := &engine{
		n:                n,
		lg:               lg,
		lb:               make([]*backCell, n+1),
		lbEnd:            make([]*backCell, n+1),
		pre:              make([]int, n+1),
		lowpt:            make([]int, n+1),
		nd:               make([]int, n+1),
		nextOnPath:       make([]int, n+1),
		nextSigmaElement: make([]int, n+1),
		visited:          make([]bool, n+1),
		outgoingTreeEdge: make([]bool, n+1),
		count:            1,
		log:              log,
	}
	for v := 1; v <= n; v++ {
		e.outgoingTreeEdge[v] = true
	}
	return e
}

// initVertex performs the per-vertex initialisation done on first
// visit: marks w visited, seeds its singleton sigma-cycle and empty
// path, and assigns the next pre-order number.
func (e *engine) initVertex(w int) {
	e.nd[w] = 1
	e.visited[w] = true
	e.nextSigmaElement[w] = w
	e.nextOnPath[w] = w
	e.pre[w] = e.count
	e.lowpt[w] = e.pre[w]
	e.count++
}
