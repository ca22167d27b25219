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

// pruneAndCountEmptyPath scans LB[u] from the head, discarding
// self-loop/outdated entries (pre[u] <= pre[target]), until it has
// seen more than one real entry or the list is exhausted. Used when
// u's path is empty, where reduced degree is 2 as soon as at most one
// real back edge remains.
func (e *engine) pruneAndCountEmptyPath(u int) int {
	var bedge int
	var first *backCell

	for bedge <= 1 && e.lb[u] != nil {
		if e.pre[u] > e.pre[e.lb[u].u] {
			bedge++
			if bedge == 1 {
				first = e.lb[u]
				e.lb[u] = e.lb[u].more
			}
		} else {
			e.lb[u] = e.lb[u].more
			if e.lb[u] == nil {
				e.lbEnd[u] = nil
			}
		}
	}
	if bedge != 0 {
		first.more = e.lb[u]
		e.lb[u] = first
		if e.lb[u].more == nil {
			e.lbEnd[u] = e.lb[u]
		}
	}
	return bedge
}

// pruneAndCountNonEmptyPath scans LB[u] from the head, discarding
// self-loop/outdated entries, until it has seen one real entry or the
// list is exhausted. Used when u's path is non-empty, where reduced
// degree is 2 only if no real back edge remains at all.
func (e *engine) pruneAndCountNonEmptyPath(u int) int {
	var bedge int
	for bedge == 0 && e.lb[u] != nil {
		if e.pre[u] > e.pre[e.lb[u].u] {
			bedge++
		} else {
			e.lb[u] = e.lb[u].more
			if e.lb[u] == nil {
				e.lbEnd[u] = nil
			}
		}
	}
	return bedge
}

// treeEdgeReturn is the post-order continuation of case A (tree edge
// w->u): it folds u's subtree size into w, determines u's reduced
// degree, emits a component if u turns out to have degree <= 2, and
// absorbs u's path (or u itself) into w according to the lowpt rule.
func (e *engine) treeEdgeReturn(w, u int) {
	e.nd[w] += e.nd[u]

	var degreeIsTwo bool
	if e.nextOnPath[u] == u {
		degreeIsTwo = e.pruneAndCountEmptyPath(u) <= 1
	} else {
		degreeIsTwo = e.pruneAndCountNonEmptyPath(u) == 0
	}

	var pu int
	if degreeIsTwo {
		if e.nextOnPath[u] != u {
			pu = e.nextOnPath[u]
		} else {
			pu = w
			if e.lb[u] != nil {
				if e.lb[w] == nil {
					e.lbEnd[w] = e.lb[u]
				}
				e.lb[u].more = e.lb[w]
				e.lb[w] = e.lb[u]
			}
		}
		e.emitComponent(u)
	} else {
		pu = u
	}

	if e.lowpt[w] <= e.lowpt[u] {
		e.absorbPath(w, pu, 0)
	} else {
		e.lowpt[w] = e.lowpt[u]
		e.absorbPath(w, e.nextOnPath[w], 0)
		e.nextOnPath[w] = pu
	}
}

// visitedEdge handles an edge (w,u) where u has already been visited:
// the real parent edge (case B), an outgoing back edge to a proper
// ancestor (case C), or an incoming back edge from a descendant's
// subtree (case D).
func (e *engine) visitedEdge(w, v, u int) {
	switch {
	case u == v && e.outgoingTreeEdge[w]:
		e.outgoingTreeEdge[w] = false

	case e.pre[w] > e.pre[u]:
		cell := &backCell{u: u, more: e.lb[w]}
		if e.lb[w] == nil {
			e.lbEnd[w] = cell
		}
		e.lb[w] = cell

		if e.pre[u] < e.lowpt[w] {
			e.absorbPath(w, e.nextOnPath[w], 0)
			e.nextOnPath[w] = w
			e.lowpt[w] = e.pre[u]
		}

	case e.nextOnPath[w] != w:
		parent, child := w, e.nextOnPath[w]
		for parent != child && e.pre[child] <= e.pre[u] && e.pre[u] <= e.pre[child]+e.nd[child]-1 {
			parent, child = child, e.nextOnPath[child]
		}
		e.absorbPath(w, e.nextOnPath[w], parent)
		if parent == e.nextOnPath[parent] {
			e.nextOnPath[w] = w
		} else {
			e.nextOnPath[w] = e.nextOnPath[parent]
		}
	}
}
