// SPDX-License-Identifier: MIT
// File: tsv.go
// Role: Import of tab-separated reference network edge lists.

package topology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/qnetsim/core"
)

// TSVLengthScale divides the kilometre column of reference edge lists.
const TSVLengthScale = 100.0

// ReadTSV parses "from<TAB>to<TAB>km" rows after a single header row.
// Lengths are km/TSVLengthScale; every edge gets p=1 and Qc=1 and starts
// unentangled. Duplicate rows for the same pair keep the first length.
func ReadTSV(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	g := core.NewGraph()
	header := true
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
		}
		if header {
			header = false
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 columns, got %d", ErrFormat, line, len(row))
		}
		u, v := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		km, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: length %q: %v", ErrFormat, line, row[2], err)
		}
		if g.HasEdge(u, v) {
			continue
		}
		if err := g.AddEdge(u, v, km/TSVLengthScale); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
		}
	}

	return g, nil
}
