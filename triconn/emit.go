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

// emitComponent walks the sigma-cycle anchored at representative r and
// records its members as a finished component, shifting each internal
// 1-based id back to the external 0-based id.
func (e *engine) emitComponent(r int) {
	comp := []int{r - 1}
	for x := e.nextSigmaElement[r]; x != r; x = e.nextSigmaElement[x] {
		comp = append(comp, x-1)
	}
	e.components = append(e.components, comp)
	e.log.Debugf("found component of size %d anchored at vertex %d", len(comp), r-1)
}
