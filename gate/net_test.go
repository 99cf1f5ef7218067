//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package gate

import "testing"

// twoLevelAndTree builds a small two-level AND tree:
// i1,i2,i3,i4 inputs; a=AND(i1,i2); b=AND(i3,i4); t=AND(a,b).
func twoLevelAndTree() (net *Net, i1, i2, i3, i4, a, b, t Id) {
	net = NewNet()
	i1 = net.AddGate(IN, nil)
	i2 = net.AddGate(IN, nil)
	i3 = net.AddGate(IN, nil)
	i4 = net.AddGate(IN, nil)
	a = net.AddGate(AND, []Signal{{Node: i1}, {Node: i2}})
	b = net.AddGate(AND, []Signal{{Node: i3}, {Node: i4}})
	t = net.AddGate(AND, []Signal{{Node: a}, {Node: b}})
	return
}

func TestNetBasics(t *testing.T) {
	net, i1, _, _, _, a, b, top := twoLevelAndTree()

	if net.NGates() != 7 {
		t.Fatalf("NGates() = %d, want 7", net.NGates())
	}
	if net.NSourceLinks() != 4 {
		t.Fatalf("NSourceLinks() = %d, want 4", net.NSourceLinks())
	}
	if len(net.Gate(i1).Links()) != 1 || net.Gate(i1).Links()[0].Target != a {
		t.Fatalf("i1 should link only to a")
	}
	if net.Gate(top).Function() != AND {
		t.Fatalf("t function = %s, want AND", net.Gate(top).Function())
	}
	if len(net.Gate(top).Inputs()) != 2 {
		t.Fatalf("t should have 2 inputs")
	}
	_ = b
}

func TestTopoSortIsLinearExtension(t *testing.T) {
	net, i1, i2, i3, i4, a, b, top := twoLevelAndTree()
	order := TopoSort(net)

	pos := make(map[Id]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	for _, pair := range [][2]Id{{i1, a}, {i2, a}, {i3, b}, {i4, b}, {a, top}, {b, top}} {
		if pos[pair[0]] >= pos[pair[1]] {
			t.Fatalf("expected %v before %v in topo order", pair[0], pair[1])
		}
	}
}

func TestEraseGateKeepsIdsValid(t *testing.T) {
	net, _, _, _, _, a, _, _ := twoLevelAndTree()
	net.EraseGate(a)
	if net.Gate(a).Function() != XXX {
		t.Fatalf("erased gate should read back as XXX")
	}
}
