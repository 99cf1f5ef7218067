//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package predicate

import (
	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
)

// FindDominators computes the classical dominator set of every node in
// topoOrder: a source dominates only itself, and every other node's
// dominator set is the intersection of its inputs' dominator sets,
// plus itself.
func FindDominators(net gate.Graph, topoOrder []gate.Id) map[gate.Id]cut.Cut {
	dominators := make(map[gate.Id]cut.Cut, len(topoOrder))

	for _, id := range topoOrder {
		inputs := net.Gate(id).Inputs()
		if len(inputs) == 0 {
			dominators[id] = cut.New(id)
			continue
		}
		set := intersectDominators(dominators, inputs)
		set[id] = struct{}{}
		dominators[id] = set
	}

	return dominators
}

// intersectDominators intersects the dominator sets of every input
// signal, starting from the smallest set found to minimize work.
func intersectDominators(dominators map[gate.Id]cut.Cut, inputs []gate.Signal) cut.Cut {
	minIdx := 0
	for i, s := range inputs {
		if dominators[s.Node].Size() < dominators[inputs[minIdx].Node].Size() {
			minIdx = i
		}
	}

	last := dominators[inputs[minIdx].Node].Clone()
	for i, s := range inputs {
		if i == minIdx || len(last) == 0 {
			continue
		}
		set := dominators[s.Node]
		result := cut.New()
		for id := range last {
			if set.Has(id) {
				result[id] = struct{}{}
			}
		}
		last = result
	}
	return last
}
