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

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseAdjacencyText reads the example adjacency text format: a
// decimal vertex count N on the first line, followed by N lines of
// the form "v_i>n1>n2>...", where v_i is the line's own 1-based
// vertex id (redundant with line order, but present so the format
// round-trips the original source's example files) and n1,n2,... are
// its 1-based neighbour ids. The result is the 0-based adjacency list
// Compute expects.
func ParseAdjacencyText(r io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad vertex count %q", ErrMalformedInput, scanner.Text())
	}

	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d adjacency lines, got %d", ErrMalformedInput, n, i)
		}
		fields := strings.Split(strings.TrimSpace(scanner.Text()), ">")
		if len(fields) < 1 {
			return nil, fmt.Errorf("%w: empty adjacency line %d", ErrMalformedInput, i+1)
		}
		selfID, err := strconv.Atoi(fields[0])
		if err != nil || selfID != i+1 {
			return nil, fmt.Errorf("%w: adjacency line %d declares id %q, want %d", ErrMalformedInput, i+1, fields[0], i+1)
		}
		neighbours := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: bad neighbour id %q on line %d", ErrMalformedInput, f, i+1)
			}
			neighbours = append(neighbours, id-1)
		}
		adjacency[i] = neighbours
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return adjacency, nil
}

// FormatComponents renders components one per line, space-separated
// 0-based vertex ids, matching the CLI's default plain-text output.
func FormatComponents(w io.Writer, components [][]int) error {
	bw := bufio.NewWriter(w)
	for _, comp := range components {
		strs := make([]string, len(comp))
		for i, v := range comp {
			strs[i] = strconv.Itoa(v)
		}
		if _, err := bw.WriteString(strings.Join(strs, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
