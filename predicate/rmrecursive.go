//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package predicate

import (
	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/walk"
)

// RmRecursive removes start and, recursively, every predecessor whose
// only remaining consumer was start or another node already scheduled
// for removal. It returns start followed by every predecessor erased
// with it; OUT gates that consumed start are erased too but are not
// included in the returned list.
//
// The removal set is computed with a links-remove visitor driven over
// the backward cone of start: nodes are visited consumer-before-
// producer, so by the time a node is reached every in-cone consumer
// has already decided whether it is being removed. A node's fan-out
// counter, seeded from its real link count, is decremented once per
// removed consumer; the node itself becomes removable once that
// counter reaches zero. start is always removable regardless of its
// own fan-out, since the caller has already chosen to delete it — its
// direct consumers are patched (dropped input, or erased if they are
// OUT gates) before its predecessors are considered.
func RmRecursive(net gate.Graph, start gate.Id) []gate.Id {
	patchConsumers(net, start)

	v := &rmVisitor{net: net, start: start, fanout: map[gate.Id]int{}}
	walk.New(net, v).WalkCone(start, false)

	net.EraseGate(start)
	out := make([]gate.Id, 0, len(v.removed)+1)
	out = append(out, start)
	for _, id := range v.removed {
		net.EraseGate(id)
		out = append(out, id)
	}
	return out
}

// patchConsumers detaches start's direct consumers before it is
// erased: an OUT gate whose sole purpose was to expose start is
// erased outright, any other consumer has start dropped from its
// input list.
func patchConsumers(net gate.Graph, start gate.Id) {
	// Iterate over a copy: SetGate and EraseGate shrink start's link
	// list in place as each consumer is detached.
	links := append([]gate.Link(nil), net.Gate(start).Links()...)
	for _, link := range links {
		consumer := net.Gate(link.Target)
		if consumer.IsTarget() {
			net.EraseGate(link.Target)
			continue
		}
		inputs := make([]gate.Signal, 0, len(consumer.Inputs()))
		for _, s := range consumer.Inputs() {
			if s.Node != start {
				inputs = append(inputs, s)
			}
		}
		net.SetGate(link.Target, consumer.Function(), inputs)
	}
}

type rmVisitor struct {
	net     gate.Graph
	start   gate.Id
	fanout  map[gate.Id]int
	removed []gate.Id
}

func (v *rmVisitor) OnNodeBegin(node gate.Id) walk.Flag {
	removable := node == v.start
	if !removable {
		if _, ok := v.fanout[node]; !ok {
			v.fanout[node] = len(v.net.Gate(node).Links())
		}
		removable = v.fanout[node] == 0
	}
	if !removable {
		return walk.Continue
	}

	if node != v.start {
		v.removed = append(v.removed, node)
	}
	for _, s := range v.net.Gate(node).Inputs() {
		p := s.Node
		if _, ok := v.fanout[p]; !ok {
			v.fanout[p] = len(v.net.Gate(p).Links())
		}
		v.fanout[p]--
	}
	return walk.Continue
}

func (v *rmVisitor) OnNodeEnd(gate.Id) walk.Flag {
	return walk.Continue
}
