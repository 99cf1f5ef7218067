//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package predicate

import (
	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/walk"
)

// GetConeSet is the unbounded BFS cone-set predicate: every node
// reachable from start in the given direction.
func GetConeSet(net gate.Graph, start gate.Id, forward bool) cut.Cut {
	out := cut.Cut{}
	walk.GetConeSet(net, start, out, forward)
	return out
}

// GetConeSetBounded is the cut-bounded BFS cone-set predicate: every
// node reachable from start in the given direction, stopping at (but
// including) cut members.
func GetConeSetBounded(net gate.Graph, start gate.Id, c cut.Cut, forward bool) cut.Cut {
	out := cut.Cut{}
	walk.GetConeSetBounded(net, start, c, out, forward)
	return out
}

// SubsetOf reports whether every member of smaller is in bigger.
func SubsetOf(smaller, bigger cut.Cut) bool {
	return smaller.SubsetOf(bigger)
}
