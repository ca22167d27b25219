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

// absorbPath merges into sigma(root) the chain first, nextOnPath[first],
// nextOnPath[nextOnPath[first]], ... stopping after absorbing terminator
// (or when the chain reaches a fixed point x == nextOnPath[x]).
// terminator == 0 (the parent sentinel) means "no real terminator, run
// to the fixed point".
func (e *engine) absorbPath(root, first, terminator int) {
	x := first
	prev := root
	if prev == x || prev == terminator {
		return
	}
	for prev != x {
		next := e.nextSigmaElement[root]
		e.nextSigmaElement[root], e.nextSigmaElement[x] = e.nextSigmaElement[x], next

		if e.lb[root] == nil {
			e.lb[root] = e.lb[x]
			e.lbEnd[root] = e.lbEnd[x]
		} else if e.lb[x] != nil {
			e.lbEnd[root].more = e.lb[x]
			e.lbEnd[root] = e.lbEnd[x]
		}

		prev = x
		if x != terminator {
			x = e.nextOnPath[x]
		}
	}
}
