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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGraphServiceThreeEdgeComponents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	g, err := NewGraph[string, any, int](false, "triangle")
	if err != nil {
		t.Fatalf("new graph error: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := g.AddVertex(Vertex[string, any]{Key: k}); err != nil {
			t.Fatalf("add vertex error: %v", err)
		}
	}
	for i, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		if err := g.AddEdge(Edge[string, int]{Key: i, Head: e[0], Tail: e[1]}); err != nil {
			t.Fatalf("add edge error: %v", err)
		}
	}

	svc := NewGraphService("localhost", 0)
	svc.Register("triangle", g)
	svc.svc = gin.New()
	svc.router()

	req := httptest.NewRequest(http.MethodPost, "/graph/triangle/three-edge-components", nil)
	rec := httptest.NewRecorder()
	svc.svc.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestGraphServiceUnknownGraph(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewGraphService("localhost", 0)
	svc.svc = gin.New()
	svc.router()

	req := httptest.NewRequest(http.MethodPost, "/graph/missing/three-edge-components", nil)
	rec := httptest.NewRecorder()
	svc.svc.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
