//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package walk

import (
	"os"

	"github.com/dreamer1977/gatecuts/gate"
)

// Walker traces a net in topological order and calls a Visitor's
// callbacks on each node. It supports whole-graph walks, walks over
// an explicit node sequence, and walks bounded to a cone.
type Walker struct {
	net     gate.Graph
	visitor Visitor
}

// New creates a walker over net, driving visitor.
func New(net gate.Graph, visitor Visitor) *Walker {
	return &Walker{net: net, visitor: visitor}
}

// getNext returns a node's successors (forward) or predecessors
// (!forward).
func getNext(net gate.Graph, id gate.Id, forward bool) []gate.Id {
	if forward {
		links := net.Gate(id).Links()
		next := make([]gate.Id, len(links))
		for i, l := range links {
			next[i] = l.Target
		}
		return next
	}
	inputs := net.Gate(id).Inputs()
	next := make([]gate.Id, len(inputs))
	for i, s := range inputs {
		next[i] = s.Node
	}
	return next
}

// Walk traces every node of the net in topological (forward=true) or
// reverse-topological (forward=false) order.
func (w *Walker) Walk(forward bool) {
	order := gate.TopoSort(w.net)
	if !forward {
		order = gate.Reversed(order)
	}
	w.WalkNodes(order)
}

// WalkNodes traces a caller-supplied explicit node sequence in the
// order given.
func (w *Walker) WalkNodes(nodes []gate.Id) {
	for _, node := range nodes {
		switch w.callVisitor(node) {
		case FinishAllNodes:
			return
		case Continue, Skip, FinishFurtherNodes:
			// proceed
		default:
			reportBadFlag()
			return
		}
	}
}

// WalkConeToCut traces the cone rooted at start down to cut, visiting
// nodes in predecessor-first order.
func (w *Walker) WalkConeToCut(start gate.Id, cut map[gate.Id]struct{}, forward bool) {
	accessed := map[gate.Id]struct{}{}
	GetConeSetBounded(w.net, start, cut, accessed, forward)

	queue := []gate.Id{start}
	w.walk(queue, accessed, forward)
}

// WalkCutToRoot traces the cone from a cut set up to a root,
// visiting nodes in predecessor-first order; this is the variant
// used by cone extraction.
func (w *Walker) WalkCutToRoot(cut map[gate.Id]struct{}, root gate.Id, forward bool) {
	accessed := map[gate.Id]struct{}{}
	GetConeSetBounded(w.net, root, cut, accessed, forward)

	queue := make([]gate.Id, 0, len(cut))
	for id := range cut {
		queue = append(queue, id)
	}
	w.walk(queue, accessed, !forward)
}

// WalkCone traces the maximal cone rooted at start, down to the
// net's sources, with no cut restricting it.
func (w *Walker) WalkCone(start gate.Id, forward bool) {
	accessed := map[gate.Id]struct{}{}
	GetConeSet(w.net, start, accessed, forward)

	queue := []gate.Id{start}
	w.walk(queue, accessed, forward)
}

// WalkFrontier starts walking from every node in start and continues
// until the given frontier (used) is consumed.
func (w *Walker) WalkFrontier(start []gate.Id, used map[gate.Id]struct{}) {
	queue := append([]gate.Id(nil), start...)
	w.walkAll(queue, used)
}

func (w *Walker) walk(queue []gate.Id, accessed map[gate.Id]struct{}, forward bool) {
	for len(queue) > 0 {
		cur := queue[0]

		if _, ok := accessed[cur]; ok {
			if checkVisited(w.net, accessed, cur, forward) {
				delete(accessed, cur)
				next := getNext(w.net, cur, forward)

				flag := w.callVisitor(cur)
				switch flag {
				case FinishAllNodes:
					return
				case FinishFurtherNodes:
					queue = queue[1:]
					continue
				case Continue, Skip:
					// proceed
				default:
					reportBadFlag()
					return
				}

				if flag == Skip {
					queue = queue[1:]
					continue
				}

				queue = append(queue, next...)
			} else {
				prev := getNext(w.net, cur, !forward)
				for _, node := range prev {
					if _, ok := accessed[node]; ok {
						queue = append(queue, node)
					}
				}
			}
		}
		queue = queue[1:]
	}
}

func (w *Walker) walkAll(queue []gate.Id, used map[gate.Id]struct{}) {
	visited := map[gate.Id]struct{}{}

	for len(queue) > 0 {
		cur := queue[0]

		if _, ok := visited[cur]; !ok {
			if checkAllVisited(w.net, visited, used, cur, true) {
				visited[cur] = struct{}{}
				next := getNext(w.net, cur, true)

				flag := w.callVisitor(cur)
				switch flag {
				case FinishAllNodes:
					return
				case FinishFurtherNodes:
					queue = queue[1:]
					continue
				case Continue, Skip:
					// proceed
				default:
					reportBadFlag()
					return
				}

				if flag == Skip {
					queue = queue[1:]
					continue
				}

				queue = append(queue, next...)
			} else {
				prev := getNext(w.net, cur, false)
				for _, node := range prev {
					if _, ok := visited[node]; !ok {
						queue = append(queue, node)
					}
				}
			}
		}
		queue = queue[1:]
	}
}

func checkVisited(net gate.Graph, accessed map[gate.Id]struct{}, node gate.Id, forward bool) bool {
	var neighbors []gate.Id
	if forward {
		for _, s := range net.Gate(node).Inputs() {
			neighbors = append(neighbors, s.Node)
		}
	} else {
		for _, l := range net.Gate(node).Links() {
			neighbors = append(neighbors, l.Target)
		}
	}
	for _, n := range neighbors {
		if _, ok := accessed[n]; ok {
			return false
		}
	}
	return true
}

func checkAllVisited(net gate.Graph, visited, used map[gate.Id]struct{}, node gate.Id, forward bool) bool {
	var neighbors []gate.Id
	if forward {
		for _, s := range net.Gate(node).Inputs() {
			neighbors = append(neighbors, s.Node)
		}
	} else {
		for _, l := range net.Gate(node).Links() {
			neighbors = append(neighbors, l.Target)
		}
	}
	for _, n := range neighbors {
		_, v := visited[n]
		_, u := used[n]
		if !v && !u {
			return false
		}
	}
	return true
}

func (w *Walker) callVisitor(node gate.Id) Flag {
	flag := w.visitor.OnNodeBegin(node)
	if flag != Continue {
		return flag
	}
	return w.visitor.OnNodeEnd(node)
}

func reportBadFlag() {
	// A visitor returned a value outside the Flag enumeration: a
	// programming error. Diagnostics go to stderr since the core has no logging
	// dependency of its own; only the cmd/gatecuts CLI uses zerolog.
	os.Stderr.WriteString("walk: unexpected visitor flag, aborting walk\n")
}
