//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package predicate

import (
	"math"

	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
)

// GetHeights computes the min and max distance, in predecessor edges,
// from start to any member of c. Nodes are visited at most once for
// expansion (via visited), but every arrival at a cut member updates
// the min/max independently of whether that node was already
// expanded, since a cut member reached along multiple paths may do so
// at different depths.
func GetHeights(net gate.Graph, start gate.Id, c cut.Cut) (minHeight, maxHeight int) {
	minHeight = math.MaxInt
	maxHeight = -1

	type item struct {
		id     gate.Id
		height int
	}
	queue := []item{{start, 0}}
	visited := map[gate.Id]struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if c.Has(cur.id) {
			if cur.height < minHeight {
				minHeight = cur.height
			}
			if cur.height > maxHeight {
				maxHeight = cur.height
			}
			continue
		}
		if _, seen := visited[cur.id]; seen {
			continue
		}
		visited[cur.id] = struct{}{}

		for _, s := range net.Gate(cur.id).Inputs() {
			queue = append(queue, item{s.Node, cur.height + 1})
		}
	}

	return minHeight, maxHeight
}
