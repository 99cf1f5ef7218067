//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package cut implements K-feasible cut enumeration with
// dominator-pruned, non-redundant (anti-chain) cut sets per node.
package cut

import (
	"sort"

	"github.com/dreamer1977/gatecuts/gate"
)

// Cut is an unordered, unique set of gate ids. Equality is
// set-equality.
type Cut map[gate.Id]struct{}

// New builds a Cut from the given ids.
func New(ids ...gate.Id) Cut {
	c := make(Cut, len(ids))
	for _, id := range ids {
		c[id] = struct{}{}
	}
	return c
}

// Has reports whether id is a member of the cut.
func (c Cut) Has(id gate.Id) bool {
	_, ok := c[id]
	return ok
}

// Size returns the number of leaves in the cut.
func (c Cut) Size() int {
	return len(c)
}

// Clone returns an independent copy of c.
func (c Cut) Clone() Cut {
	out := make(Cut, len(c))
	for id := range c {
		out[id] = struct{}{}
	}
	return out
}

// Union returns a new cut holding every leaf of c and other.
func (c Cut) Union(other Cut) Cut {
	out := make(Cut, len(c)+len(other))
	for id := range c {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Equal reports whether c and other contain exactly the same leaves.
func (c Cut) Equal(other Cut) bool {
	if len(c) != len(other) {
		return false
	}
	for id := range c {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every leaf of c is also in other.
func (c Cut) SubsetOf(other Cut) bool {
	if len(c) > len(other) {
		return false
	}
	for id := range c {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Slice returns the cut's leaves as an ascending, and therefore
// deterministic, sequence.
func (c Cut) Slice() []gate.Id {
	out := make([]gate.Id, 0, len(c))
	for id := range c {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Hash is an order-independent XOR-mix so equal cuts hash to the
// same bucket regardless of leaf insertion order.
func (c Cut) Hash() uint64 {
	var answer uint64
	for id := range c {
		h := uint64(id)
		answer ^= h + 0x9e3779b9 + (h << 6) + (h >> 2)
	}
	return answer
}

// Cuts is the (unordered, in practice anti-chain-pruned) collection
// of cuts found for one node.
type Cuts []Cut

// Contains reports whether cuts already holds a cut equal to c.
func (cs Cuts) Contains(c Cut) bool {
	for _, existing := range cs {
		if existing.Equal(c) {
			return true
		}
	}
	return false
}
