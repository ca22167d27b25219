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

// frame is one activation record of the explicit DFS control stack.
// resume=false means "enter w for the first time"; resume=true means
// "w is resuming after its child u returned", with edge pointing at
// the adjacency cell of the tree edge (w,u) that triggered the push,
// so the scan can continue from edge.more.
type frame struct {
	w, v, u int
	edge    *adjCell
	resume  bool
}

// threeEdgeConnect runs one DFS rooted at w with parent sentinel v
// (0 for a true root), using an explicit stack instead of native
// recursion so depth is bounded only by heap, not by the call stack.
func (e *engine) threeEdgeConnect(w, v int) {
	stack := []*frame{{w: w, v: v}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.runFrame(f, &stack)
	}
}

func (e *engine) runFrame(f *frame, stack *[]*frame) {
	if f.resume {
		e.treeEdgeReturn(f.w, f.u)
		e.scan(f.w, f.v, f.edge.more, stack)
		return
	}

	e.initVertex(f.w)
	e.scan(f.w, f.v, e.lg[f.w], stack)
}

// scan walks w's adjacency list starting at edge. On a tree edge to an
// unvisited neighbour it pushes w's continuation frame followed by the
// child's frame and returns immediately, mirroring the source's
// explicit-stack recursion; everything else is handled inline and the
// loop continues.
func (e *engine) scan(w, v int, edge *adjCell, stack *[]*frame) {
	for edge != nil {
		u := edge.u
		if !e.visited[u] {
			*stack = append(*stack, &frame{w: w, v: v, u: u, edge: edge, resume: true})
			*stack = append(*stack, &frame{w: u, v: w})
			return
		}
		e.visitedEdge(w, v, u)
		edge = edge.more
	}
}
