//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package cone

import (
	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/walk"
)

// visitor rebuilds the cone of cutFor, bounded by c, into a fresh
// net as it is walked. A visited node either becomes a new IN gate
// (it is a cut leaf with no already-mapped predecessor, i.e. a real
// frontier node) or a new gate mirroring its original function, wired
// to whatever of its inputs have already been mapped.
type visitor struct {
	src    gate.Graph
	cut    cut.Cut
	cutFor gate.Id

	net               *gate.Net
	newGates          map[gate.Id]gate.Id
	resultCutOldGates cut.Cut
}

func newVisitor(src gate.Graph, c cut.Cut, cutFor gate.Id) *visitor {
	return &visitor{
		src:               src,
		cut:               c,
		cutFor:            cutFor,
		net:               gate.NewNet(),
		newGates:          map[gate.Id]gate.Id{},
		resultCutOldGates: cut.New(),
	}
}

// OnNodeBegin implements walk.Visitor.
func (v *visitor) OnNodeBegin(node gate.Id) walk.Flag {
	cur := v.src.Gate(node)

	var signals []gate.Signal
	for _, s := range cur.Inputs() {
		if mapped, ok := v.newGates[s.Node]; ok {
			signals = append(signals, gate.Signal{Node: mapped})
		}
	}

	if v.cut.Has(node) && len(signals) == 0 {
		// A real frontier node: none of its original inputs were
		// already mapped, so it becomes a fresh primary input of the
		// cone, unless it is itself a constant, in which case the
		// cone reproduces the constant instead of a free input.
		fn := gate.IN
		if cur.Function().IsValue() {
			fn = cur.Function()
		}
		newGate := v.net.AddGate(fn, nil)
		v.newGates[node] = newGate
		v.resultCutOldGates[node] = struct{}{}
	} else {
		v.newGates[node] = v.net.AddGate(cur.Function(), signals)
	}

	if node == v.cutFor {
		if cur.Function() != gate.OUT {
			v.net.AddOut(v.newGates[node])
		}
		return walk.FinishAllNodes
	}
	return walk.Continue
}

// OnNodeEnd implements walk.Visitor.
func (v *visitor) OnNodeEnd(gate.Id) walk.Flag {
	return walk.Continue
}
