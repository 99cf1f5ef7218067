//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package truth simulates an extracted cone into a truth table and
// canonicalizes it under the NPN (negation/permutation/negation)
// equivalence.
package truth

import (
	"fmt"

	"github.com/dreamer1977/gatecuts/cone"
	"github.com/dreamer1977/gatecuts/gate"
)

// MaxVars is the largest cut size this package can simulate: a Table
// is a single 64-bit word, so it holds at most 2^6 = 64 rows.
const MaxVars = 6

// Table is a 2^k-bit truth table, k <= MaxVars, packed into the low
// bits of a uint64. Equality is bitwise.
type Table uint64

// cofactorPatterns[i] is the standard cofactor bit pattern for input
// variable i: bit j is set iff bit i of j is set. Patterns for i < k
// remain valid cofactor patterns when read modulo 2^k.
var cofactorPatterns = [MaxVars]Table{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// fullMask returns a Table with the low 2^k bits set.
func fullMask(k int) Table {
	if k >= 6 {
		return ^Table(0)
	}
	return Table(uint64(1)<<(uint64(1)<<uint(k))) - 1
}

// Build simulates bound on all 2^k input assignments, k =
// len(bound.InputBindings), evaluating in topological order and
// combining children's bitmasks per gate function. Each input
// position is driven by the standard cofactor pattern, except a
// constant leaf (the cone extractor reproduces constants rather than
// free inputs) which is driven by its own constant value at every
// row. The result is the bitmask of the cone's single OUT-feeding
// gate.
func Build(bound *cone.BoundGraph) (Table, error) {
	k := len(bound.InputBindings)
	if k > MaxVars {
		return 0, fmt.Errorf("truth: cone has %d inputs, at most %d supported", k, MaxVars)
	}
	mask := fullMask(k)

	values := make(map[gate.Id]Table, bound.Net.NGates())
	for i, id := range bound.InputBindings {
		g := bound.Net.Gate(id)
		if g.Function().IsValue() {
			values[id] = constantTable(g.Function(), mask)
		} else {
			values[id] = cofactorPatterns[i] & mask
		}
	}

	var outGate *gate.Gate
	for _, id := range gate.TopoSort(bound.Net) {
		g := bound.Net.Gate(id)
		if g.Function() == gate.OUT {
			outGate = g
			continue
		}
		if _, ok := values[id]; ok {
			// Already seeded as an input leaf.
			continue
		}
		values[id] = evalGate(g, values, mask)
	}

	if outGate == nil {
		return 0, fmt.Errorf("truth: extracted cone has no OUT gate")
	}
	return values[outGate.Inputs()[0].Node] & mask, nil
}

func constantTable(f gate.Function, mask Table) Table {
	if f == gate.ONE {
		return mask
	}
	return 0
}

func evalGate(g *gate.Gate, values map[gate.Id]Table, mask Table) Table {
	inputs := g.Inputs()
	switch g.Function() {
	case gate.NOT, gate.NOP:
		v := values[inputs[0].Node]
		if g.Function() == gate.NOT {
			return ^v & mask
		}
		return v
	case gate.AND:
		return andAll(inputs, values) & mask
	case gate.OR:
		return orAll(inputs, values) & mask
	case gate.XOR:
		return xorAll(inputs, values) & mask
	case gate.NAND:
		return ^andAll(inputs, values) & mask
	case gate.NOR:
		return ^orAll(inputs, values) & mask
	case gate.XNOR:
		return ^xorAll(inputs, values) & mask
	case gate.MAJ:
		a, b, c := values[inputs[0].Node], values[inputs[1].Node], values[inputs[2].Node]
		return ((a & b) | (b & c) | (a & c)) & mask
	case gate.ZERO:
		return 0
	case gate.ONE:
		return mask
	default:
		return 0
	}
}

func andAll(inputs []gate.Signal, values map[gate.Id]Table) Table {
	result := ^Table(0)
	for _, s := range inputs {
		result &= values[s.Node]
	}
	return result
}

func orAll(inputs []gate.Signal, values map[gate.Id]Table) Table {
	var result Table
	for _, s := range inputs {
		result |= values[s.Node]
	}
	return result
}

func xorAll(inputs []gate.Signal, values map[gate.Id]Table) Table {
	var result Table
	for _, s := range inputs {
		result ^= values[s.Node]
	}
	return result
}
