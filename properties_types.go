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

// PropertyName identifies a queryable graph-level property.
type PropertyName int

const (
	PropertyDigraph PropertyName = iota
	PropertyAcyclic
	PropertySimple
	PropertyRegular
	PropertyConnected
	PropertyUnilateralConnected
	PropertyForest
	PropertyLoop
	PropertyCompleted
	PropertyTree
	PropertyNegativeWeight
	PropertyGraphName
	PropertyOrder
	PropertySize
	PropertyMaxDegree
	PropertyMinDegree
	PropertyAvgDegree
)

// GraphProperty carries the value of a property queried via Graph.Property.
type GraphProperty[T any] struct {
	Name  PropertyName
	Value T
}
