//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package walk implements the generic, cancellable graph-traversal
// framework the rest of the core is built on: a Walker drives a
// Visitor's onNodeBegin/onNodeEnd callbacks over a net, either whole
// or bounded to a cone, in topological order.
package walk

import "github.com/dreamer1977/gatecuts/gate"

// Flag is the value a Visitor callback returns to tell the Walker how
// to proceed. Any other value is a programming error: the Walker
// writes a diagnostic line to stderr and aborts the walk as if
// FinishAllNodes had been returned.
type Flag int

const (
	// Continue proceeds normally.
	Continue Flag = iota
	// Skip does not visit further children of this node in bounded
	// walks; the outer iteration continues.
	Skip
	// FinishAllNodes aborts the entire walk immediately.
	FinishAllNodes
	// FinishFurtherNodes stops descending from this node in bounded
	// cone walks.
	FinishFurtherNodes
)

func (f Flag) valid() bool {
	return f >= Continue && f <= FinishFurtherNodes
}

// Visitor is the base callback capability a Walker drives.
type Visitor interface {
	OnNodeBegin(id gate.Id) Flag
	OnNodeEnd(id gate.Id) Flag
}

// CutVisitor additionally receives one callback per cut of a node,
// when driven by a CutWalker.
type CutVisitor interface {
	Visitor
	OnCut(id gate.Id, cut map[gate.Id]struct{}) Flag
}
