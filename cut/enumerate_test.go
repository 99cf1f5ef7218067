//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package cut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
)

// buildTwoLevelAndTree builds a small two-level AND tree.
func buildTwoLevelAndTree() (net *gate.Net, i1, i2, i3, i4, a, b, t gate.Id) {
	net = gate.NewNet()
	i1 = net.AddGate(gate.IN, nil)
	i2 = net.AddGate(gate.IN, nil)
	i3 = net.AddGate(gate.IN, nil)
	i4 = net.AddGate(gate.IN, nil)
	a = net.AddGate(gate.AND, []gate.Signal{{Node: i1}, {Node: i2}})
	b = net.AddGate(gate.AND, []gate.Signal{{Node: i3}, {Node: i4}})
	t = net.AddGate(gate.AND, []gate.Signal{{Node: a}, {Node: b}})
	return
}

func assertCutSetEqual(t *testing.T, got cut.Cuts, want ...cut.Cut) {
	t.Helper()
	require.Len(t, got, len(want))
	for _, w := range want {
		require.True(t, got.Contains(w), "expected cut set to contain %v, got %v", w, got)
	}
}

func TestEnumerateTwoLevelAndTree(t *testing.T) {
	net, i1, i2, i3, i4, a, b, top := buildTwoLevelAndTree()

	e := &cut.Enumerator{CutSize: 2}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	assertCutSetEqual(t, storage[top], cut.New(top), cut.New(a, b))
	assertCutSetEqual(t, storage[a], cut.New(a), cut.New(i1, i2))
	assertCutSetEqual(t, storage[b], cut.New(b), cut.New(i3, i4))
	_ = i4
	_ = i3
}

func TestEnumerateNotTransparency(t *testing.T) {
	net := gate.NewNet()
	i1 := net.AddGate(gate.IN, nil)
	i2 := net.AddGate(gate.IN, nil)
	a := net.AddGate(gate.NOT, []gate.Signal{{Node: i1}})
	b := net.AddGate(gate.AND, []gate.Signal{{Node: a}, {Node: i2}})

	e := &cut.Enumerator{CutSize: 2}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	// The NOT gate never gets a cut set of its own.
	_, hasA := storage[a]
	require.False(t, hasA)

	assertCutSetEqual(t, storage[b], cut.New(b), cut.New(i1, i2))
}

func TestEnumerateNotChainTransparency(t *testing.T) {
	net := gate.NewNet()
	i1 := net.AddGate(gate.IN, nil)
	i2 := net.AddGate(gate.IN, nil)
	a := net.AddGate(gate.NOT, []gate.Signal{{Node: i1}})
	c := net.AddGate(gate.NOT, []gate.Signal{{Node: a}})
	d := net.AddGate(gate.AND, []gate.Signal{{Node: c}, {Node: i2}})

	e := &cut.Enumerator{CutSize: 2}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	// Both NOT gates are transparent: d's cuts see through the chain
	// straight to i1.
	assertCutSetEqual(t, storage[d], cut.New(d), cut.New(i1, i2))
}

func TestEnumerateDiamondDominatorPruning(t *testing.T) {
	// i1 -> x -> y, i1 -> z -> y.
	net := gate.NewNet()
	i1 := net.AddGate(gate.IN, nil)
	x := net.AddGate(gate.NOP, []gate.Signal{{Node: i1}})
	z := net.AddGate(gate.NOP, []gate.Signal{{Node: i1}})
	y := net.AddGate(gate.AND, []gate.Signal{{Node: x}, {Node: z}})

	e := &cut.Enumerator{CutSize: 2}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	// {x,z} and {i1} are both size <= 2, and neither subsumes the
	// other under set inclusion ({i1} has size 1, {x,z} has size 2,
	// {i1} is not a subset of {x,z} since i1 != x and i1 != z): all
	// three survive as an anti-chain.
	assertCutSetEqual(t, storage[y], cut.New(y), cut.New(x, z), cut.New(i1))
}

func TestEnumerateSourceHasOnlyTrivialCut(t *testing.T) {
	net := gate.NewNet()
	i1 := net.AddGate(gate.IN, nil)

	e := &cut.Enumerator{CutSize: 4}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	assertCutSetEqual(t, storage[i1], cut.New(i1))
}

func TestEnumerateKEqualsOneYieldsOnlyTrivialCuts(t *testing.T) {
	net, _, _, _, _, a, b, top := buildTwoLevelAndTree()

	e := &cut.Enumerator{CutSize: 1}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	for _, id := range []gate.Id{a, b, top} {
		assertCutSetEqual(t, storage[id], cut.New(id))
	}
}

func TestEnumerateMaxCutsNumberOne(t *testing.T) {
	// The soft cap stops enumeration as soon as the cut set exceeds M
	// right after an insertion; it does not truncate back down to M.
	// For an internal node the trivial cut plus the first accepted
	// combination already reaches size 2, so M=1 yields two cuts
	// here, not one — see DESIGN.md's Open Questions for why "M=1
	// yields exactly one cut" only holds for a source node.
	net, _, _, _, _, _, _, top := buildTwoLevelAndTree()

	e := &cut.Enumerator{CutSize: 2, MaxCutsNumber: 1}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	require.Len(t, storage[top], 2)
	require.True(t, storage[top].Contains(cut.New(top)))

	// A source, having no combinations to try, is unaffected by the
	// cap: it always has exactly the trivial cut.
	source, _, _, _, _, _, _, _ := buildTwoLevelAndTree()
	sourceStorage, err := e.Enumerate(source)
	require.NoError(t, err)
	require.Len(t, sourceStorage[0], 1)
}

func TestEnumerateInvariants(t *testing.T) {
	net, _, _, _, _, _, _, _ := buildTwoLevelAndTree()

	e := &cut.Enumerator{CutSize: 3}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	for id, cuts := range storage {
		for i, a := range cuts {
			require.LessOrEqual(t, a.Size(), 3, "K-feasibility for %v", id)
			for j, b := range cuts {
				if i == j {
					continue
				}
				require.False(t, a.SubsetOf(b), "anti-chain violated: %v subset of %v at %v", a, b, id)
			}
		}
	}
}

func TestEnumerateRejectsInvalidCutSize(t *testing.T) {
	net := gate.NewNet()
	net.AddGate(gate.IN, nil)

	e := &cut.Enumerator{CutSize: 0}
	_, err := e.Enumerate(net)
	require.Error(t, err)
}

func TestEnumerateLegacyKeepsRedundantCuts(t *testing.T) {
	net, _, _, _, _, a, b, top := buildTwoLevelAndTree()

	e := &cut.Enumerator{CutSize: 4, Legacy: true}
	storage, err := e.Enumerate(net)
	require.NoError(t, err)

	// Legacy mode inserts every Cartesian combination without
	// pruning, so {top} and {a,b} and any larger combinations up to
	// K=4 all coexist even though {a,b} does not subsume anything
	// else structurally different here; the key property under test
	// is that legacy does not shrink storage relative to the
	// canonical algorithm for this fixture.
	newEnum := &cut.Enumerator{CutSize: 4}
	newStorage, err := newEnum.Enumerate(net)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(storage[top]), len(newStorage[top]))
	_ = a
	_ = b
}
