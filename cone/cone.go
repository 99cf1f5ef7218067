//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package cone builds the sub-graph bounded by a cut and a root: the
// cone extractor of the cut-enumeration/NPN-classification pipeline.
package cone

import (
	"fmt"

	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/walk"
)

// BoundGraph is a standalone sub-network extracted around a cut: Net
// is the new graph with one output (the extracted root) and one input
// per entry of InputBindings, InputBindings[i] is the id, in Net, of
// the primary input created for the i-th leaf of the extraction order.
type BoundGraph struct {
	Net           *gate.Net
	InputBindings []gate.Id
}

// Extract walks net backward from root bounded by c, building a new
// graph whose primary inputs are the cut leaves that root's cone
// actually depends on ("effectively used" leaves) and whose single
// output mirrors root. order fixes the input sequence of the result:
// InputBindings[i] corresponds to order[i].
//
// If root's cone does not depend on every leaf of c (an
// over-approximated cut), the extracted graph has fewer effective
// leaves than len(c) and Extract reports that via effective=false; the
// caller (typically the NPN collector) should discard the record
// rather than treat it as an error.
func Extract(net gate.Graph, root gate.Id, c cut.Cut, order []gate.Id) (bound *BoundGraph, effective bool, err error) {
	v := newVisitor(net, c, root)
	walk.New(net, v).WalkCutToRoot(c, root, false)

	used := v.resultCutOldGates
	if used.Size() != c.Size() {
		return nil, false, nil
	}

	bindings := make([]gate.Id, len(order))
	for i, id := range order {
		mapped, ok := v.newGates[id]
		if !ok {
			return nil, false, fmt.Errorf("cone: order leaf %v not present in the extracted cone", id)
		}
		bindings[i] = mapped
	}

	return &BoundGraph{Net: v.net, InputBindings: bindings}, true, nil
}

// ExtractForCut is Extract with c derived from order itself (order's
// elements taken as an unordered cut).
func ExtractForCut(net gate.Graph, root gate.Id, order []gate.Id) (*BoundGraph, bool, error) {
	return Extract(net, root, cut.New(order...), order)
}
