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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const exampleGraph = `5
1>2>5>2
2>5>4>4>3>3>1>1
3>2>2
4>2>2
5>2>1
`

func writeTempGraph(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp graph: %v", err)
	}
	return path
}

func TestRunTextFormat(t *testing.T) {
	path := writeTempGraph(t, exampleGraph)
	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "\n") {
		t.Fatalf("expected at least one component line, got %q", stdout.String())
	}
}

func TestRunYamlFormat(t *testing.T) {
	path := writeTempGraph(t, exampleGraph)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "yaml", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "components:") {
		t.Fatalf("expected yaml components key, got %q", stdout.String())
	}
}

func TestRunMalformedInput(t *testing.T) {
	path := writeTempGraph(t, "not-a-number\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	if code == 0 {
		t.Fatalf("expected non-zero exit code for malformed input")
	}
	if stderr.String() == "" {
		t.Fatalf("expected a diagnostic on stderr")
	}
}

func TestRunCheckBiconnectedWarnsOnBridge(t *testing.T) {
	// Two triangles joined by a single bridging edge (2-4): vertex 2 and
	// vertex 4 are cut-vertices and the 2-4 edge is a bridge.
	bridged := `6
1>2>3
2>1>3>4
3>1>2
4>2>5>6
5>4>6
6>4>5
`
	path := writeTempGraph(t, bridged)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-check-biconnected", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "not biconnected") {
		t.Fatalf("expected a biconnectivity warning on stderr, got %q", stderr.String())
	}
}

func TestRunMissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	if code == 0 {
		t.Fatalf("expected non-zero exit code for missing argument")
	}
}
