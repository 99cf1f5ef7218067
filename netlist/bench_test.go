//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package netlist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/netlist"
)

const twoLevelAndTree = `
INPUT(i1)
INPUT(i2)
INPUT(i3)
INPUT(i4)
OUTPUT(t)
a = AND(i1, i2)
b = AND(i3, i4)
t = AND(a, b)
`

func TestParseBuildsExpectedTopology(t *testing.T) {
	net, ids, err := netlist.Parse(strings.NewReader(twoLevelAndTree))
	require.NoError(t, err)

	require.Equal(t, gate.AND, net.Gate(ids["t"]).Function())
	require.Len(t, net.Gate(ids["t"]).Inputs(), 2)
	require.Equal(t, 1, net.NTargetLinks())
	require.Equal(t, 4, net.NSourceLinks())
}

func TestParseRejectsUndefinedWire(t *testing.T) {
	_, _, err := netlist.Parse(strings.NewReader("OUTPUT(y)\ny = AND(a, b)\n"))
	require.Error(t, err)
}

func TestParseRejectsUnknownFunction(t *testing.T) {
	_, _, err := netlist.Parse(strings.NewReader("INPUT(a)\ny = FROB(a)\n"))
	require.Error(t, err)
}

func TestWriteRoundTripsTopology(t *testing.T) {
	net, ids, err := netlist.Parse(strings.NewReader(twoLevelAndTree))
	require.NoError(t, err)
	_ = ids

	var buf bytes.Buffer
	require.NoError(t, netlist.Write(&buf, net))

	reparsed, reids, err := netlist.Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, net.NGates(), reparsed.NGates())
	require.Equal(t, net.NSourceLinks(), reparsed.NSourceLinks())
	require.Len(t, reparsed.Gate(reids["g6"]).Inputs(), 2)
}
