//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package walk

import "github.com/dreamer1977/gatecuts/gate"

// GetConeSet performs a BFS from start in the given direction,
// collecting every reached node, with no boundary other than the
// net's own sources/sinks.
func GetConeSet(net gate.Graph, start gate.Id, cone map[gate.Id]struct{}, forward bool) {
	queue := []gate.Id{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, seen := cone[cur]; seen {
			continue
		}
		cone[cur] = struct{}{}
		queue = append(queue, getNext(net, cur, forward)...)
	}
}

// GetConeSetBounded performs a BFS from start in the given direction,
// stopping at (but including) any node in cut.
func GetConeSetBounded(net gate.Graph, start gate.Id, cut map[gate.Id]struct{}, cone map[gate.Id]struct{}, forward bool) {
	queue := []gate.Id{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, seen := cone[cur]; seen {
			continue
		}
		cone[cur] = struct{}{}
		if _, isCut := cut[cur]; isCut {
			continue
		}
		queue = append(queue, getNext(net, cur, forward)...)
	}
}
