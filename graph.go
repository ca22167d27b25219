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

type number interface {
	int | int64
}

// Graph represents an undirected or directed simple/multi graph
// backed by an adjacency-list representation.
type Graph[K comparable, V any, W number] interface {
	Name() string
	SetName(name string)

	IsDigraph() bool
	IsSimple() bool
	HasNegativeWeight() bool
	IsRegular() bool
	IsAcyclic() bool
	IsConnected(unidirectional bool) bool
	IsCompleted() bool
	IsTree() bool
	IsForest() bool
	HasLoop() bool

	Order() int
	Size() int
	MinDegree() int
	MaxDegree() int
	AvgDegree() float64

	Property(p PropertyName) (GraphProperty[any], error)

	AllVertexes() ([]Vertex[K, V], error)
	AllEdges() ([]Edge[K, W], error)

	AddVertex(vertex Vertex[K, V]) error
	RemoveVertex(key K) error
	AddEdge(edge Edge[K, W]) error
	RemoveEdgeByKey(key K) error
	RemoveEdge(endpoint1, endpoint2 K) error

	Degree(key K) (int, error)
	Neighbours(v K) ([]Vertex[K, V], error)
	GetVertex(key K) (Vertex[K, V], error)
	GetEdge(v1, v2 K) ([]Edge[K, W], error)
	GetEdgeByKey(key K) (Edge[K, W], error)
	GetVertexesByLabel(labels map[string]string) ([]Vertex[K, V], error)
	GetEdgesByLabel(labels map[string]string) ([]Edge[K, W], error)

	SetVertexValue(key K, value V) error
	SetVertexLabel(key K, labelKey, labelVal string) error
	DeleteVertexLabel(key K, labelKey string) error
	SetEdgeValueByKey(key K, value any) error
	SetEdgeLabelByKey(key K, labelKey, labelVal string) error
	DeleteEdgeLabelByKey(key K, labelKey string) error
	SetEdgeValue(endpoint1, endpoint2 K, value any) error
	SetEdgeLabel(endpoint1, endpoint2 K, labelKey, labelVal string) error
	DeleteEdgeLabel(endpoint1, endpoint2 K, labelKey string) error

	RandomVertex() (Vertex[K, V], error)
	RandomEdge() (Edge[K, W], error)
	NeighbourEdgesByKey(edge K) ([]Edge[K, W], error)
	NeighbourEdges(endpoint1, endpoint2 K) ([]Edge[K, W], error)
	IncidentEdges(vertex K) ([]Edge[K, W], error)

	Clone() (Graph[K, V, W], error)
}

type Vertex[K comparable, V any] struct {
	Key    K
	Value  V
	Labels map[string]string
}

type Edge[K comparable, W number] struct {
	Key    K
	Head   K
	Tail   K
	Value  any
	Weight W
	Labels map[string]string
}
