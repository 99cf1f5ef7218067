//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package predicate implements the small, stateless graph predicates
// used across cut enumeration, cone extraction and collection:
// cut validity, dominator sets, cone-set membership, subset tests,
// recursive removal and cut-relative depth.
package predicate

import (
	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
)

// IsCut reports whether c is a valid cut for g: every path backward
// from g must hit a cut member before reaching a source. If some
// source is reached first, the cut is invalid and that source's id is
// returned as failed.
func IsCut(net gate.Graph, g gate.Id, c cut.Cut) (ok bool, failed gate.Id) {
	queue := []gate.Id{g}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if c.Has(cur) {
			continue
		}
		gt := net.Gate(cur)
		if gt.IsSource() {
			return false, cur
		}
		for _, s := range gt.Inputs() {
			queue = append(queue, s.Node)
		}
	}
	return true, 0
}
