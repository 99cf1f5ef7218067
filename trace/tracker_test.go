//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package trace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/trace"
	"github.com/dreamer1977/gatecuts/walk"
)

type countingVisitor struct {
	begins, ends int
}

func (v *countingVisitor) OnNodeBegin(gate.Id) walk.Flag {
	v.begins++
	return walk.Continue
}

func (v *countingVisitor) OnNodeEnd(gate.Id) walk.Flag {
	v.ends++
	return walk.Continue
}

func TestNewRequiresHomeEnv(t *testing.T) {
	require.NoError(t, os.Unsetenv("GATECUTS_HOME"))
	net := gate.NewNet()
	_, err := trace.New(net, "run", &countingVisitor{})
	require.Error(t, err)
}

func TestTrackerWritesSnapshotsAndForwards(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GATECUTS_HOME", home)

	net := gate.NewNet()
	i1 := net.AddGate(gate.IN, nil)
	i2 := net.AddGate(gate.IN, nil)
	net.AddGate(gate.AND, []gate.Signal{{Node: i1}, {Node: i2}})

	inner := &countingVisitor{}
	v, err := trace.New(net, "run1", inner)
	require.NoError(t, err)

	walk.New(net, v).Walk(true)

	require.Equal(t, 3, inner.begins)
	require.Equal(t, 3, inner.ends)

	entries, err := os.ReadDir(filepath.Join(home, "run1"))
	require.NoError(t, err)
	require.Len(t, entries, 3)
}
