//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package cut

import "github.com/dreamer1977/gatecuts/gate"

// Storage maps a gate id to its (anti-chain, K-feasible) cut set.
// A Storage is created fresh for each enumeration pass and owned by
// the caller; it is mutated only by the enumerator and is read-only
// during any subsequent NPN collection pass.
type Storage map[gate.Id]Cuts
