//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package npn

import (
	"math"
	"sort"

	"github.com/dreamer1977/gatecuts/cone"
)

// ClassAggregate is the roll-up of every NPNStats record sharing one
// NPN class: the raw records plus the mean ("A", average) and
// standard deviation ("D", deviation) of their min and max heights.
type ClassAggregate struct {
	Records []NPNStats

	MaxHeightA float64
	MaxHeightD float64
	MinHeightA float64
	MinHeightD float64
}

// Count is the number of cuts filed under this class.
func (a *ClassAggregate) Count() int {
	return len(a.Records)
}

func (a *ClassAggregate) finalize() {
	a.MaxHeightA, a.MaxHeightD = meanStdDev(a.Records, true)
	a.MinHeightA, a.MinHeightD = meanStdDev(a.Records, false)
}

func meanStdDev(records []NPNStats, max bool) (mean, stddev float64) {
	if len(records) == 0 {
		return 0, 0
	}
	var sum float64
	for _, r := range records {
		if max {
			sum += float64(r.MaxHeight)
		} else {
			sum += float64(r.MinHeight)
		}
	}
	mean = sum / float64(len(records))

	var sq float64
	for _, r := range records {
		v := float64(r.MinHeight)
		if max {
			v = float64(r.MaxHeight)
		}
		d := v - mean
		sq += d * d
	}
	stddev = math.Sqrt(sq / float64(len(records)))
	return mean, stddev
}

// GetEssentialCones sorts classes by member count descending (ties
// broken by class key, for a deterministic iteration order), keeps
// the top topNumber classes, and returns up to conesNumber extracted
// cones per class. topNumber <= 0 means "every class"; conesNumber <=
// 0 means "every cone in the class".
func (r *Result) GetEssentialCones(topNumber, conesNumber int) map[uint64][]*cone.BoundGraph {
	type ranked struct {
		key   uint64
		count int
	}
	classes := make([]ranked, 0, len(r.Classes))
	for key, agg := range r.Classes {
		classes = append(classes, ranked{key: key, count: agg.Count()})
	}
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].count != classes[j].count {
			return classes[i].count > classes[j].count
		}
		return classes[i].key < classes[j].key
	})
	if topNumber > 0 && len(classes) > topNumber {
		classes = classes[:topNumber]
	}

	out := make(map[uint64][]*cone.BoundGraph, len(classes))
	for _, rk := range classes {
		records := r.Classes[rk.key].Records
		n := conesNumber
		if n <= 0 || n > len(records) {
			n = len(records)
		}
		cones := make([]*cone.BoundGraph, n)
		for i := 0; i < n; i++ {
			cones[i] = records[i].Cone
		}
		out[rk.key] = cones
	}
	return out
}
