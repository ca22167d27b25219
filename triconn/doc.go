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

// Package triconn computes the three-edge-connected components of an
// undirected multigraph using Tsin's single-pass DFS algorithm with
// reduction. It maintains, incrementally during one depth-first
// traversal, per-vertex sigma-chains, path lists and back-edge lists
// that absorb degree-two subtrees as soon as they are discovered,
// avoiding the classical two-pass lowpt/cut-pair construction.
//
// The traversal is an explicit, non-recursive control stack: recursion
// depth is bounded by the vertex count and a native call stack of
// unbounded size cannot be assumed.
package triconn
