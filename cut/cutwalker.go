//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package cut

import (
	"os"

	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/walk"
)

// CutWalker specializes the generic Walker for CutVisitors: between
// a node's onNodeBegin and onNodeEnd it iterates the node's cut set
// from storage, invoking onCut for each. Cut iteration is
// independently cancellable, respecting Continue, FinishAllNodes and
// Skip (which abandons the remaining cuts of the current node but
// lets the outer node walk proceed normally).
type CutWalker struct {
	storage Storage
	visitor walk.CutVisitor
}

// NewCutWalker adapts a CutVisitor and its cut storage into a plain
// walk.Visitor suitable for driving with a walk.Walker.
func NewCutWalker(storage Storage, visitor walk.CutVisitor) *CutWalker {
	return &CutWalker{storage: storage, visitor: visitor}
}

// OnNodeBegin implements walk.Visitor.
func (w *CutWalker) OnNodeBegin(id gate.Id) walk.Flag {
	flag := w.visitor.OnNodeBegin(id)
	if flag != walk.Continue {
		return flag
	}

	for _, c := range w.storage[id] {
		switch w.visitor.OnCut(id, c) {
		case walk.Continue:
			// keep iterating this node's cuts
		case walk.Skip:
			return walk.Continue
		case walk.FinishAllNodes:
			return walk.FinishAllNodes
		default:
			os.Stderr.WriteString("cut: unexpected flag from onCut, aborting walk\n")
			return walk.FinishAllNodes
		}
	}
	return walk.Continue
}

// OnNodeEnd implements walk.Visitor.
func (w *CutWalker) OnNodeEnd(id gate.Id) walk.Flag {
	return w.visitor.OnNodeEnd(id)
}
