// SPDX-License-Identifier: MIT
// File: nodelink.go
// Role: Node-link JSON encoding of *core.Graph, optionally snappy-framed.
// Determinism:
//   - Nodes are written sorted by ID and links by canonical key, so equal
//     graphs encode to equal bytes.

package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/kaptinlin/jsonrepair"

	"github.com/katalvlaran/qnetsim/core"
)

// CompressedExt marks snappy-compressed topology files.
const CompressedExt = ".sz"

type nodeLinkDoc struct {
	Directed   bool           `json:"directed"`
	Multigraph bool           `json:"multigraph"`
	Graph      map[string]any `json:"graph"`
	Nodes      []nodeRecord   `json:"nodes"`
	Links      []linkRecord   `json:"links"`
}

// Attribute pointers distinguish "absent" from zero so that files carrying
// only topology pick up core defaults.
type nodeRecord struct {
	ID            string  `json:"id"`
	Qc            *int    `json:"Qc,omitempty"`
	Entangled     bool    `json:"entangled"`
	Age           int     `json:"age"`
	UsageCount    int     `json:"usage_count"`
	UsageFraction float64 `json:"usage_fraction"`
}

type linkRecord struct {
	Source    string   `json:"source"`
	Target    string   `json:"target"`
	Length    *float64 `json:"length,omitempty"`
	PEdge     *float64 `json:"p_edge,omitempty"`
	Qc        *int     `json:"Qc,omitempty"`
	Entangled bool     `json:"entangled"`
	Age       int      `json:"age"`
}

// Encode writes g to w as node-link JSON with every attribute.
func Encode(w io.Writer, g *core.Graph) error {
	doc := nodeLinkDoc{Graph: map[string]any{}}
	for _, n := range g.NodeList() {
		qc := n.Qc
		doc.Nodes = append(doc.Nodes, nodeRecord{
			ID: n.ID, Qc: &qc, Entangled: n.Entangled, Age: n.Age,
			UsageCount: n.UsageCount, UsageFraction: n.UsageFraction,
		})
	}
	for _, e := range g.Edges() {
		length, p, qc := e.Length, e.PEdge, e.Qc
		doc.Links = append(doc.Links, linkRecord{
			Source: e.From, Target: e.To, Length: &length, PEdge: &p, Qc: &qc,
			Entangled: e.Entangled, Age: e.Age,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode node-link: %w", err)
	}

	return nil
}

// Decode reads a node-link document. Input that is not valid JSON is passed
// through jsonrepair once before giving up, which tolerates hand-edited
// files with trailing commas, comments or single quotes. Directed and
// multigraph documents are rejected.
func Decode(r io.Reader) (*core.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read node-link: %w", err)
	}
	var doc nodeLinkDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(raw))
		if repairErr != nil {
			return nil, fmt.Errorf("%w: %v (repair: %v)", ErrFormat, err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
	}
	if doc.Directed || doc.Multigraph {
		return nil, fmt.Errorf("%w: directed=%t multigraph=%t", ErrFormat, doc.Directed, doc.Multigraph)
	}

	return doc.graph()
}

func (doc *nodeLinkDoc) graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, rec := range doc.Nodes {
		var opts []core.NodeOption
		if rec.Qc != nil {
			opts = append(opts, core.WithNodeQc(*rec.Qc))
		}
		if err := g.AddNode(rec.ID, opts...); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrFormat, rec.ID, err)
		}
		n, _ := g.Node(rec.ID)
		n.Entangled, n.Age = rec.Entangled, rec.Age
		n.UsageCount, n.UsageFraction = rec.UsageCount, rec.UsageFraction
	}
	for _, rec := range doc.Links {
		length := core.DefaultLength
		if rec.Length != nil {
			length = *rec.Length
		}
		var opts []core.EdgeOption
		if rec.PEdge != nil {
			opts = append(opts, core.WithPEdge(*rec.PEdge))
		}
		if rec.Qc != nil {
			opts = append(opts, core.WithEdgeQc(*rec.Qc))
		}
		if err := g.AddEdge(rec.Source, rec.Target, length, opts...); err != nil {
			return nil, fmt.Errorf("%w: link %q-%q: %v", ErrFormat, rec.Source, rec.Target, err)
		}
		e, _ := g.Edge(rec.Source, rec.Target)
		e.Entangled, e.Age = rec.Entangled, rec.Age
	}

	return g, nil
}

// SaveFile writes g to path, snappy-compressed when path ends in ".sz".
func SaveFile(path string, g *core.Graph) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}
	data := buf.Bytes()
	if strings.HasSuffix(path, CompressedExt) {
		data = snappy.Encode(nil, data)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write topology %s: %w", path, err)
	}

	return nil
}

// LoadFile reads a topology from path. ".sz" files are snappy-decoded,
// ".tsv" and ".txt" files go through ReadTSV, everything else is node-link
// JSON.
func LoadFile(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topology %s: %w", path, err)
	}
	name := path
	if strings.HasSuffix(name, CompressedExt) {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("%w: snappy %s: %v", ErrFormat, path, err)
		}
		name = strings.TrimSuffix(name, CompressedExt)
	}
	if strings.HasSuffix(name, ".tsv") || strings.HasSuffix(name, ".txt") {
		return ReadTSV(bytes.NewReader(data))
	}

	return Decode(bytes.NewReader(data))
}
