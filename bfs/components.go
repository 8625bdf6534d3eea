// SPDX-License-Identifier: MIT
// Package: subiso/bfs
//
// components.go - connected components and a structural summary of a graph.

package bfs

import (
	"sort"

	"github.com/katalvlaran/subiso/core"
)

// Components returns the connected components of g. Each component is
// sorted; components are ordered by their smallest vertex.
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool)
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := Walk(g, v)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		sort.Strings(comp)
		for _, id := range comp {
			seen[id] = true
		}
		out = append(out, comp)
	}

	return out, nil
}

// Profile summarizes a graph for the info command.
type Profile struct {
	Vertices       int   `json:"vertices" yaml:"vertices"`
	Edges          int   `json:"edges" yaml:"edges"`
	MaxDegree      int   `json:"max_degree" yaml:"max_degree"`
	DegreeSequence []int `json:"degree_sequence" yaml:"degree_sequence,flow"`
	ComponentSizes []int `json:"component_sizes" yaml:"component_sizes,flow"`
	// Diameter is the largest eccentricity over all vertices; -1 when the
	// graph is disconnected or empty.
	Diameter int `json:"diameter" yaml:"diameter"`
}

// Describe computes the Profile of g. DegreeSequence is sorted descending;
// ComponentSizes follow Components order.
// Complexity: O(V·(V + E)) for the diameter.
func Describe(g *core.Graph) (Profile, error) {
	comps, err := Components(g)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		Vertices:       g.VertexCount(),
		Edges:          g.EdgeCount(),
		MaxDegree:      g.MaxDegree(),
		DegreeSequence: g.DegreeSequence(),
		ComponentSizes: make([]int, len(comps)),
		Diameter:       -1,
	}
	sort.Sort(sort.Reverse(sort.IntSlice(p.DegreeSequence)))
	for i, c := range comps {
		p.ComponentSizes[i] = len(c)
	}

	if len(comps) == 1 {
		p.Diameter = 0
		for _, v := range comps[0] {
			res, err := Walk(g, v)
			if err != nil {
				return Profile{}, err
			}
			if e := res.Eccentricity(); e > p.Diameter {
				p.Diameter = e
			}
		}
	}

	return p, nil
}
