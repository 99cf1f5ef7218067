//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package npn drives cut enumeration, cone extraction and truth-table
// canonicalization into per-gate and per-class NPN statistics.
package npn

import (
	"github.com/dreamer1977/gatecuts/cone"
	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/predicate"
	"github.com/dreamer1977/gatecuts/truth"
)

// NPNStats records one (gate, cut) observation: the cut's NPN class,
// its depth range from the gate, and (kept alive for
// GetEssentialCones) the cone extracted for it.
type NPNStats struct {
	GateID    gate.Id
	NPNClass  uint64
	MinHeight int
	MaxHeight int
	Cut       cut.Cut
	Cone      *cone.BoundGraph
}

// GateStats aggregates every NPNStats observed for one root gate.
type GateStats struct {
	GateID       gate.Id
	Function     gate.Function
	NumberOfCuts int
	Classes      []NPNStats
}

// Collector configures one enumeration-and-classification pass.
type Collector struct {
	// CutSize is the exact cut size K collected; cuts of any other
	// size found during enumeration (smaller dominator cuts) are
	// skipped.
	CutSize int
	// MaxCutsNumber caps per-node cuts during enumeration; see
	// cut.Enumerator.
	MaxCutsNumber int
	// Legacy selects the non-subsumption enumeration variant.
	Legacy bool
	// CollectHeight enables the min/max height BFS per cut. Skipping
	// it avoids one backward traversal per (gate, cut) pair.
	CollectHeight bool
}

// Result is the output of one Collect pass: the per-gate records plus
// the per-class aggregates they roll up into.
type Result struct {
	Gates   []GateStats
	Classes map[uint64]*ClassAggregate
}

// Collect enumerates K-feasible cuts over net and classifies every
// cut of exact size CutSize into its NPN class.
func (c *Collector) Collect(net gate.Graph) (*Result, error) {
	enumerator := &cut.Enumerator{
		CutSize:       c.CutSize,
		MaxCutsNumber: c.MaxCutsNumber,
		Legacy:        c.Legacy,
	}
	storage, err := enumerator.Enumerate(net)
	if err != nil {
		return nil, err
	}

	result := &Result{Classes: map[uint64]*ClassAggregate{}}
	for _, id := range gate.TopoSort(net) {
		cuts, ok := storage[id]
		if !ok {
			continue
		}

		gs := GateStats{GateID: id, Function: net.Gate(id).Function()}
		for _, cu := range cuts {
			if cu.Size() != c.CutSize {
				continue
			}
			stat, effective, err := c.classify(net, id, cu)
			if err != nil {
				return nil, err
			}
			if !effective {
				continue
			}

			gs.Classes = append(gs.Classes, stat)
			gs.NumberOfCuts++

			agg, ok := result.Classes[stat.NPNClass]
			if !ok {
				agg = &ClassAggregate{}
				result.Classes[stat.NPNClass] = agg
			}
			agg.Records = append(agg.Records, stat)
		}

		if gs.NumberOfCuts > 0 {
			result.Gates = append(result.Gates, gs)
		}
	}

	for _, agg := range result.Classes {
		agg.finalize()
	}
	return result, nil
}

// classify extracts the cone bounded by cu, builds its truth table,
// and canonicalizes it. effective is false (with no error) when the
// extractor reports that cu was over-approximated for id; the caller
// discards such records rather than counting them.
func (c *Collector) classify(net gate.Graph, id gate.Id, cu cut.Cut) (NPNStats, bool, error) {
	order := cu.Slice()
	bound, effective, err := cone.Extract(net, id, cu, order)
	if err != nil {
		return NPNStats{}, false, err
	}
	if !effective {
		return NPNStats{}, false, nil
	}

	table, err := truth.Build(bound)
	if err != nil {
		return NPNStats{}, false, err
	}

	stat := NPNStats{
		GateID:   id,
		NPNClass: truth.CanonicalKey(table, len(bound.InputBindings)),
		Cut:      cu,
		Cone:     bound,
	}
	if c.CollectHeight {
		stat.MinHeight, stat.MaxHeight = predicate.GetHeights(net, id, cu)
	}
	return stat, true, nil
}
