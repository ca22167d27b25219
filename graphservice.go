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
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

var errGraphNotExists = errors.New("graph not exists")

// GraphService exposes registered graphs over HTTP, mirroring the
// workflow package's Service: a named registry plus a gin.Engine the
// caller starts explicitly.
type GraphService struct {
	host string
	port int

	mu      sync.RWMutex
	running bool
	graphs  map[string]Graph[string, any, int]
	svc     *gin.Engine
}

func NewGraphService(host string, port int) *GraphService {
	return &GraphService{
		host:   host,
		port:   port,
		graphs: make(map[string]Graph[string, any, int]),
	}
}

func (s *GraphService) Register(name string, g Graph[string, any, int]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graphs[name] = g
}

func (s *GraphService) Run() error {
	s.mu.Lock()

	if s.running {
		s.mu.Unlock()
		return nil
	}

	s.svc = gin.Default()
	s.router()

	var err error
	go func() {
		time.Sleep(2 * time.Second)
		if err == nil {
			s.running = true
			s.mu.Unlock()
		}
	}()

	err = s.svc.Run(fmt.Sprintf("%s:%d", s.host, s.port))
	if err != nil {
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *GraphService) router() {
	gr := s.svc.Group("/graph")

	gr.POST("/:name/three-edge-components", func(c *gin.Context) {
		g, err := s.get(c.Param("name"))
		if err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}

		components, err := ThreeEdgeConnectedComponents[string, any, int](c.Request.Context(), g)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"components": components})
	})
}

func (s *GraphService) get(name string) (Graph[string, any, int], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.graphs[name]
	if !ok {
		return nil, errGraphNotExists
	}
	return g, nil
}
