//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package npn_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/npn"
)

func buildTwoLevelAndTree() (net *gate.Net, top, a, b gate.Id) {
	net = gate.NewNet()
	i1 := net.AddGate(gate.IN, nil)
	i2 := net.AddGate(gate.IN, nil)
	i3 := net.AddGate(gate.IN, nil)
	i4 := net.AddGate(gate.IN, nil)
	a = net.AddGate(gate.AND, []gate.Signal{{Node: i1}, {Node: i2}})
	b = net.AddGate(gate.AND, []gate.Signal{{Node: i3}, {Node: i4}})
	top = net.AddGate(gate.AND, []gate.Signal{{Node: a}, {Node: b}})
	return
}

func TestCollectGroupsIsomorphicAndCuts(t *testing.T) {
	net, top, a, b := buildTwoLevelAndTree()

	c := &npn.Collector{CutSize: 2, CollectHeight: true}
	result, err := c.Collect(net)
	require.NoError(t, err)

	// top, a and b each contribute exactly one size-2 cut, and all
	// three cuts compute the 2-input AND function: they fall into a
	// single NPN class.
	require.Len(t, result.Classes, 1)

	var class uint64
	for key := range result.Classes {
		class = key
	}
	agg := result.Classes[class]
	require.Equal(t, 3, agg.Count())
	require.Equal(t, 1.0, agg.MaxHeightA)
	require.Equal(t, 0.0, agg.MaxHeightD)
	require.Equal(t, 1.0, agg.MinHeightA)
	require.Equal(t, 0.0, agg.MinHeightD)

	seen := map[gate.Id]bool{}
	for _, gs := range result.Gates {
		require.Len(t, gs.Classes, 1)
		require.Equal(t, class, gs.Classes[0].NPNClass)
		seen[gs.GateID] = true
	}
	require.True(t, seen[top])
	require.True(t, seen[a])
	require.True(t, seen[b])
}

func TestCollectSkipsNonExactCuts(t *testing.T) {
	net, _, a, b := buildTwoLevelAndTree()

	// a and b only have cuts of size 1 and 2 ({a}, {i1,i2} and {b},
	// {i3,i4}); asking for exactly size 3 finds nothing to report for
	// them, while every record kept for top has a size-3 cut.
	c := &npn.Collector{CutSize: 3}
	result, err := c.Collect(net)
	require.NoError(t, err)

	for _, gs := range result.Gates {
		require.NotEqual(t, a, gs.GateID)
		require.NotEqual(t, b, gs.GateID)
		for _, stat := range gs.Classes {
			require.Equal(t, 3, stat.Cut.Size())
		}
	}
}

func TestGetEssentialConesRespectsLimits(t *testing.T) {
	net, _, _, _ := buildTwoLevelAndTree()

	c := &npn.Collector{CutSize: 2}
	result, err := c.Collect(net)
	require.NoError(t, err)

	cones := result.GetEssentialCones(1, 2)
	require.Len(t, cones, 1)
	for _, bounds := range cones {
		require.Len(t, bounds, 2)
		for _, b := range bounds {
			require.NotNil(t, b)
			require.Equal(t, 2, len(b.InputBindings))
		}
	}
}

func TestPrintHistogramCSV(t *testing.T) {
	net, _, _, _ := buildTwoLevelAndTree()

	c := &npn.Collector{CutSize: 2, CollectHeight: true}
	result, err := c.Collect(net)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, npn.PrintHistogramCSV(&buf, result))

	lines := buf.String()
	require.Contains(t, lines, "NPN Class;Count;MaxHeightA;MaxHeightD;MinHeightA;MinHeightD\n")
	require.Contains(t, lines, ";3;1;0;1;0\n")
}

func TestPrintGateStatistics(t *testing.T) {
	net, top, _, _ := buildTwoLevelAndTree()

	c := &npn.Collector{CutSize: 2}
	result, err := c.Collect(net)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, npn.PrintGateStatistics(&buf, result))
	require.Contains(t, buf.String(), top.String())
}
