//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package npn

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/markkurossi/tabulate"
)

// PrintGateStatistics renders a table with one row per gate: its id,
// function, cut count, and the (class, minHeight, maxHeight) triple
// of every cut recorded for it.
func PrintGateStatistics(w io.Writer, result *Result) error {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Gate").SetAlign(tabulate.ML)
	tab.Header("Function").SetAlign(tabulate.ML)
	tab.Header("Cuts").SetAlign(tabulate.MR)
	tab.Header("Classes").SetAlign(tabulate.ML)

	for _, gs := range result.Gates {
		row := tab.Row()
		row.Column(fmt.Sprintf("%v", gs.GateID))
		row.Column(fmt.Sprintf("%s", gs.Function))
		row.Column(fmt.Sprintf("%d", gs.NumberOfCuts))

		triples := make([]string, len(gs.Classes))
		for i, stat := range gs.Classes {
			triples[i] = fmt.Sprintf("(%d, %d, %d)", stat.NPNClass, stat.MinHeight, stat.MaxHeight)
		}
		row.Column(strings.Join(triples, " "))
	}
	tab.Print(w)
	return nil
}

// PrintHistogramCSV writes the per-class aggregate table: header
// "NPN Class;Count;MaxHeightA;MaxHeightD;MinHeightA;MinHeightD",
// one semicolon-separated row per class, sorted by class key for a
// stable byte-for-byte output across runs.
func PrintHistogramCSV(w io.Writer, result *Result) error {
	if _, err := fmt.Fprintln(w, "NPN Class;Count;MaxHeightA;MaxHeightD;MinHeightA;MinHeightD"); err != nil {
		return err
	}

	keys := make([]uint64, 0, len(result.Classes))
	for key := range result.Classes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		agg := result.Classes[key]
		_, err := fmt.Fprintf(w, "%d;%d;%v;%v;%v;%v\n",
			key, agg.Count(), agg.MaxHeightA, agg.MaxHeightD, agg.MinHeightA, agg.MinHeightD)
		if err != nil {
			return err
		}
	}
	return nil
}
