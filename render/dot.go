//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package render prints a gate graph as Graphviz DOT, optionally
// highlighting the nodes of an extracted cone, and can rasterize the
// result through an in-process Graphviz.
package render

import (
	"bytes"
	"fmt"

	"github.com/dreamer1977/gatecuts/gate"
)

// Options configures DOT generation.
type Options struct {
	// ConeMap, when non-nil, highlights every listed original-graph
	// id in red and labels it with its id in the extracted cone plus
	// its function.
	ConeMap map[gate.Id]gate.Id
}

// ToDOT renders net as Graphviz DOT source: one "digraph substNet"
// graph, one node declaration per gate, and one edge per input link,
// named "<func><id>".
func ToDOT(net gate.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph substNet {\n")

	for _, id := range net.Gates() {
		g := net.Gate(id)
		name := nodeName(g)
		if newID, ok := opts.ConeMap[id]; ok {
			fmt.Fprintf(&buf, "  %s [label=\"%d(%d, %s)\", color=red, style=filled];\n",
				name, id, newID, g.Function())
			continue
		}
		fmt.Fprintf(&buf, "  %s;\n", name)
	}

	for _, id := range net.Gates() {
		g := net.Gate(id)
		for _, s := range g.Inputs() {
			src := net.Gate(s.Node)
			fmt.Fprintf(&buf, "  %s -> %s;\n", nodeName(src), nodeName(g))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(g *gate.Gate) string {
	return fmt.Sprintf("%s%d", g.Function(), g.Id())
}
