// SPDX-License-Identifier: MIT

// Package graphfile reads and writes the teampath graph file format.
//
// A graph file is YAML (JSON is accepted as a YAML subset) in one of two
// shapes:
//
//	nodes: 6
//	directed: false
//	edges:
//	  - {from: 0, to: 1, weight: 40}
//
// or a literal matrix whose missing edges are written "inf":
//
//	matrix:
//	  - [0, 40, inf]
//	  - [40, 0, 20]
//	  - [inf, 20, 0]
//
// An optional top-level "source" selects the default source node.
package graphfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/teampath/matrix"
)

// ErrFormat indicates a structurally invalid graph file.
var ErrFormat = errors.New("graphfile: invalid graph file")

// infToken is the spelling of a missing edge in matrix form.
const infToken = "inf"

// File is the on-disk representation of a graph.
type File struct {
	// Nodes is required in edge form; in matrix form it may be omitted.
	Nodes int `yaml:"nodes,omitempty"`
	// Directed disables edge mirroring in edge form.
	Directed bool `yaml:"directed,omitempty"`
	// KeepMin keeps the lightest of duplicate edges instead of the last one.
	KeepMin bool `yaml:"keep_min,omitempty"`
	// Source is the default source node (optional).
	Source *int `yaml:"source,omitempty"`
	// Edges is the edge-list form.
	Edges []EdgeSpec `yaml:"edges,omitempty"`
	// Matrix is the literal-row form.
	Matrix [][]Weight `yaml:"matrix,omitempty"`
}

// EdgeSpec is one edge of the edge-list form.
type EdgeSpec struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// Weight is a matrix entry: a non-negative integer or "inf".
type Weight int64

// UnmarshalYAML accepts integers and the case-insensitive token "inf".
func (w *Weight) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: matrix entry must be a scalar", ErrFormat, value.Line)
	}
	s := strings.TrimSpace(value.Value)
	if strings.EqualFold(s, infToken) || strings.EqualFold(s, ".inf") {
		*w = Weight(matrix.Inf)
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: %q is neither an integer nor %q", ErrFormat, value.Line, s, infToken)
	}
	*w = Weight(n)

	return nil
}

// MarshalYAML writes Inf back as "inf".
func (w Weight) MarshalYAML() (any, error) {
	if int64(w) == matrix.Inf {
		return infToken, nil
	}

	return int64(w), nil
}

// Graph is a decoded graph file.
type Graph struct {
	Matrix *matrix.Distance
	// Source is the file's source node, valid only when HasSource is set.
	Source    int
	HasSource bool
}

// Load reads and decodes the graph file at path.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse decodes a graph file held in memory.
func Parse(data []byte) (*Graph, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing graph file: %w", err)
	}

	return f.Build()
}

// Build validates f and converts it into a distance matrix.
func (f *File) Build() (*Graph, error) {
	var (
		m   *matrix.Distance
		err error
	)

	switch {
	case len(f.Edges) > 0 && len(f.Matrix) > 0:
		return nil, fmt.Errorf("%w: both edges and matrix given", ErrFormat)

	case len(f.Matrix) > 0:
		if f.Nodes != 0 && f.Nodes != len(f.Matrix) {
			return nil, fmt.Errorf("%w: nodes=%d but matrix has %d rows", ErrFormat, f.Nodes, len(f.Matrix))
		}
		rows := make([][]int64, len(f.Matrix))
		for i, row := range f.Matrix {
			rows[i] = make([]int64, len(row))
			for j, w := range row {
				if w < 0 {
					return nil, fmt.Errorf("%w: negative weight %d at (%d,%d)", ErrFormat, w, i, j)
				}
				rows[i][j] = int64(w)
			}
		}
		m, err = matrix.FromRows(rows)

	default:
		if f.Nodes <= 0 {
			return nil, fmt.Errorf("%w: nodes must be > 0", ErrFormat)
		}
		edges := make([]matrix.Edge, len(f.Edges))
		for k, e := range f.Edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d (%d→%d): negative weight %d", ErrFormat, k, e.From, e.To, e.Weight)
			}
			edges[k] = matrix.Edge{From: e.From, To: e.To, Weight: e.Weight}
		}
		opts := []matrix.Option{}
		if f.Directed {
			opts = append(opts, matrix.WithDirected())
		}
		if f.KeepMin {
			opts = append(opts, matrix.WithKeepMin())
		}
		m, err = matrix.New(f.Nodes, edges, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	g := &Graph{Matrix: m}
	if f.Source != nil {
		if *f.Source < 0 || *f.Source >= m.Size() {
			return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrFormat, *f.Source, m.Size())
		}
		g.Source, g.HasSource = *f.Source, true
	}

	return g, nil
}

// Marshal encodes m in matrix form.
func Marshal(m *matrix.Distance) ([]byte, error) {
	n := m.Size()
	f := File{Nodes: n, Matrix: make([][]Weight, n)}
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		f.Matrix[i] = make([]Weight, n)
		for j, w := range row {
			f.Matrix[i][j] = Weight(w)
		}
	}

	out, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encoding graph file: %w", err)
	}

	return out, nil
}
