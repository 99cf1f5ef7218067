//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package cut

import (
	"fmt"

	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/walk"
)

// Unlimited is the maxCutsNumber sentinel meaning "no per-node cap".
const Unlimited = 0

// Enumerator finds K-feasible cuts for every non-NOT gate of a net.
type Enumerator struct {
	// CutSize is the max cut size K, K >= 1.
	CutSize int
	// MaxCutsNumber is a soft per-node cap: enumeration of a node stops
	// as soon as an insertion makes its cut set larger than
	// MaxCutsNumber, so up to MaxCutsNumber+1 cuts are kept. Unlimited
	// (0) means no cap.
	MaxCutsNumber int
	// Legacy selects the non-subsumption ("old") variant: every
	// Cartesian combination is kept, with no dominator pruning. It
	// exists only for diagnostic comparison against the canonical
	// (subsumption) algorithm.
	Legacy bool
}

// Enumerate populates a fresh Storage with cuts for every gate in
// net, following the net's topological order (with defensive
// recursive pre-ordering, matching the source algorithm).
func (e *Enumerator) Enumerate(net gate.Graph) (Storage, error) {
	if e.CutSize < 1 {
		return nil, fmt.Errorf("cut: invalid cut size %d, must be >= 1", e.CutSize)
	}

	storage := Storage{}
	v := &nodeVisitor{enum: e, net: net, storage: storage}
	walk.New(net, v).Walk(true)
	return storage, nil
}

// nodeVisitor drives cut enumeration through the generic Walker, per
// the "Walker(Cut enumerator Visitor)" pipeline stage of the data
// flow: onNodeBegin does the actual work, onNodeEnd is a no-op.
type nodeVisitor struct {
	enum    *Enumerator
	net     gate.Graph
	storage Storage
}

func (v *nodeVisitor) OnNodeBegin(id gate.Id) walk.Flag {
	v.enum.enumerateNode(v.net, v.storage, id)
	return walk.Continue
}

func (v *nodeVisitor) OnNodeEnd(gate.Id) walk.Flag {
	return walk.Continue
}

func (e *Enumerator) enumerateNode(net gate.Graph, storage Storage, id gate.Id) {
	if _, done := storage[id]; done {
		return
	}
	g := net.Gate(id)
	if g.Function() == gate.NOT {
		// NOT is transparent to cut enumeration: it never gets a cut
		// set of its own, and it is never an effective predecessor
		// (effectiveInputs substitutes through it).
		return
	}

	trivial := New(id)

	var inputs []gate.Id
	if !g.Function().IsSequential() {
		inputs = effectiveInputs(net, g)
	}
	// Sequential elements (LATCH/DFF/DFFrs) are opaque boundary nodes:
	// cut enumeration does not look past them, so they are treated
	// like sources with only the trivial cut.

	if len(inputs) == 0 {
		storage[id] = Cuts{trivial}
		return
	}

	inputCuts := make([]Cuts, len(inputs))
	for i, in := range inputs {
		e.enumerateNode(net, storage, in)
		inputCuts[i] = storage[in]
	}

	cuts := Cuts{trivial}
	ptrs := make([]int, len(inputs))

	for {
		candidate, tooBig := combine(inputCuts, ptrs, e.CutSize)

		incrementAll := false
		if !tooBig {
			if e.Legacy {
				cuts = append(cuts, candidate)
				if e.MaxCutsNumber != Unlimited && len(cuts) > e.MaxCutsNumber {
					break
				}
			} else {
				var newCuts Cuts
				var ok bool
				newCuts, ok = insertSubsuming(cuts, candidate)
				if ok {
					cuts = newCuts
					if e.MaxCutsNumber != Unlimited && len(cuts) > e.MaxCutsNumber {
						break
					}
					incrementAll = candidate.Size() == 1
				}
			}
		}

		if !advance(ptrs, inputCuts, incrementAll) {
			break
		}
	}

	storage[id] = cuts
}

// effectiveInputs returns a gate's predecessor list with any NOT
// input replaced by that NOT's own single input.
func effectiveInputs(net gate.Graph, g *gate.Gate) []gate.Id {
	inputs := g.Inputs()
	out := make([]gate.Id, len(inputs))
	for i, s := range inputs {
		id := s.Node
		for {
			in := net.Gate(id)
			if in.Function() != gate.NOT {
				break
			}
			notInputs := in.Inputs()
			if len(notInputs) == 0 {
				break
			}
			id = notInputs[0].Node
		}
		out[i] = id
	}
	return out
}

// combine unions the cuts pointed to by ptrs, one per input slot,
// discarding early (tooBig=true) as soon as the running union
// exceeds cutSize.
func combine(inputCuts []Cuts, ptrs []int, cutSize int) (Cut, bool) {
	var collected Cut
	for i, cuts := range inputCuts {
		c := cuts[ptrs[i]]
		if collected == nil {
			collected = c.Clone()
		} else {
			collected = collected.Union(c)
		}
		if collected.Size() > cutSize {
			return nil, true
		}
	}
	return collected, false
}

// insertSubsuming applies the subsumption rule to candidate against
// the anti-chain cuts: if any existing cut is a subset of candidate,
// candidate is dominated and rejected (ok=false). Otherwise every
// existing cut that candidate strictly dominates is dropped and
// candidate is inserted.
func insertSubsuming(cuts Cuts, candidate Cut) (Cuts, bool) {
	var toRemove []int
	for i, existing := range cuts {
		if existing.Size() > candidate.Size() {
			if candidate.SubsetOf(existing) {
				toRemove = append(toRemove, i)
			}
		} else if existing.SubsetOf(candidate) {
			return cuts, false
		}
	}

	out := make(Cuts, 0, len(cuts)+1-len(toRemove))
	removeAt := 0
	for i, existing := range cuts {
		if removeAt < len(toRemove) && toRemove[removeAt] == i {
			removeAt++
			continue
		}
		out = append(out, existing)
	}
	out = append(out, candidate)
	return out, true
}

// advance moves the radix-counter cursor ptrs to the next
// combination. When incrementAll is set (a size-1 dominator cut was
// just accepted), every cursor is advanced by one step instead of
// the usual least-significant-first carry. It reports false when the
// iteration is exhausted.
func advance(ptrs []int, inputCuts []Cuts, incrementAll bool) bool {
	if incrementAll {
		newCombination := false
		for j := range ptrs {
			ptrs[j]++
			if ptrs[j] == len(inputCuts[j]) {
				ptrs[j] = 0
			} else {
				newCombination = true
			}
		}
		return newCombination
	}

	i := 0
	for i < len(ptrs) {
		ptrs[i]++
		if ptrs[i] == len(inputCuts[i]) {
			ptrs[i] = 0
			i++
		} else {
			break
		}
	}
	return i < len(ptrs)
}
