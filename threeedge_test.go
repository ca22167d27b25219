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
	"fmt"
	"sort"
	"testing"
)

func buildUndirected(t *testing.T, n int, edges [][2]int) Graph[int, int, int] {
	t.Helper()
	g, err := NewGraph[int, int, int](false, "test-g")
	if err != nil {
		t.Fatalf("new graph error: %v", err)
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(Vertex[int, int]{Key: i}); err != nil {
			t.Fatalf("add vertex error: %v", err)
		}
	}
	for i, e := range edges {
		if err := g.AddEdge(Edge[int, int]{Key: i, Head: e[0], Tail: e[1]}); err != nil {
			t.Fatalf("add edge error: %v", err)
		}
	}
	return g
}

func TestThreeEdgeConnectedComponentsTriangle(t *testing.T) {
	g := buildUndirected(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	comps, err := ThreeEdgeConnectedComponents[int, int, int](context.Background(), g)
	if err != nil {
		t.Fatalf("ThreeEdgeConnectedComponents returned error: %v", err)
	}
	if len(comps) != 1 || len(comps[0]) != 3 {
		t.Fatalf("components = %v, want one component of size 3", comps)
	}
}

func TestThreeEdgeConnectedComponentsTwoTrianglesBridge(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	})

	comps, err := ThreeEdgeConnectedComponents[int, int, int](context.Background(), g)
	if err != nil {
		t.Fatalf("ThreeEdgeConnectedComponents returned error: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("got %d components, want 2: %v", len(comps), comps)
	}
	for _, c := range comps {
		if len(c) != 3 {
			t.Fatalf("component %v has size %d, want 3", c, len(c))
		}
	}

	connected, err := IsThreeEdgeConnected[int, int, int](context.Background(), g)
	if err != nil {
		t.Fatalf("IsThreeEdgeConnected returned error: %v", err)
	}
	if connected {
		t.Fatalf("graph with a bridge reported as a single three-edge-connected component")
	}
}

func TestThreeEdgeConnectedComponentsParallelEdgesMerge(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3}, {2, 3}, {2, 3},
	})

	connected, err := IsThreeEdgeConnected[int, int, int](context.Background(), g)
	if err != nil {
		t.Fatalf("IsThreeEdgeConnected returned error: %v", err)
	}
	if !connected {
		t.Fatalf("three parallel bridging edges should merge both triangles into one component")
	}
}

func TestThreeEdgeConnectedComponentsStringKeys(t *testing.T) {
	g, err := NewGraph[string, any, int](false, "k4")
	if err != nil {
		t.Fatalf("new graph error: %v", err)
	}
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		if err := g.AddVertex(Vertex[string, any]{Key: n}); err != nil {
			t.Fatalf("add vertex error: %v", err)
		}
	}
	k := 0
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if err := g.AddEdge(Edge[string, int]{Key: fmt.Sprintf("e%d", k), Head: names[i], Tail: names[j]}); err != nil {
				t.Fatalf("add edge error: %v", err)
			}
			k++
		}
	}

	comps, err := ThreeEdgeConnectedComponents[string, any, int](context.Background(), g)
	if err != nil {
		t.Fatalf("ThreeEdgeConnectedComponents returned error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	got := append([]string(nil), comps[0]...)
	sort.Strings(got)
	want := append([]string(nil), names...)
	sort.Strings(want)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("component = %v, want %v", got, want)
	}
}
