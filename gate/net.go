//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package gate

// Net is a minimal, owned, in-memory implementation of Graph. Gate
// ids are dense and allocated in order: the slot index is the id.
type Net struct {
	gates   []Gate
	sources []Id
	targets []Id
}

// NewNet creates an empty net.
func NewNet() *Net {
	return &Net{}
}

// Gate implements Graph.
func (n *Net) Gate(id Id) *Gate {
	return &n.gates[id]
}

// Gates implements Graph.
func (n *Net) Gates() []Id {
	ids := make([]Id, len(n.gates))
	for i := range n.gates {
		ids[i] = Id(i)
	}
	return ids
}

// NGates implements Graph.
func (n *Net) NGates() int {
	return len(n.gates)
}

// NSourceLinks implements Graph.
func (n *Net) NSourceLinks() int {
	return len(n.sources)
}

// NTargetLinks implements Graph.
func (n *Net) NTargetLinks() int {
	return len(n.targets)
}

// GetSources implements Graph.
func (n *Net) GetSources() []Id {
	return n.sources
}

// AddGate implements Graph.
func (n *Net) AddGate(function Function, signals []Signal) Id {
	id := Id(len(n.gates))
	n.gates = append(n.gates, Gate{
		id:       id,
		function: function,
		inputs:   append([]Signal(nil), signals...),
	})
	for _, s := range signals {
		in := &n.gates[s.Node]
		in.links = append(in.links, Link{Target: id})
	}
	if function == IN {
		n.sources = append(n.sources, id)
	}
	return id
}

// AddOut implements Graph.
func (n *Net) AddOut(node Id) Id {
	id := n.AddGate(OUT, []Signal{{Node: node}})
	n.targets = append(n.targets, id)
	return id
}

// SetGate implements Graph.
func (n *Net) SetGate(id Id, function Function, inputs []Signal) {
	g := &n.gates[id]
	for _, old := range g.inputs {
		n.removeLink(old.Node, id)
	}
	g.function = function
	g.inputs = append([]Signal(nil), inputs...)
	for _, s := range inputs {
		in := &n.gates[s.Node]
		in.links = append(in.links, Link{Target: id})
	}
}

// EraseGate implements Graph. It does not compact the id space: the
// erased slot is marked XXX with no inputs/links so existing ids
// elsewhere in the net remain valid.
func (n *Net) EraseGate(id Id) {
	for _, in := range n.gates[id].inputs {
		n.removeLink(in.Node, id)
	}
	n.gates[id] = Gate{id: id, function: XXX}
	n.sources = removeId(n.sources, id)
	n.targets = removeId(n.targets, id)
}

func (n *Net) removeLink(from, to Id) {
	g := &n.gates[from]
	for i, l := range g.links {
		if l.Target == to {
			g.links = append(g.links[:i], g.links[i+1:]...)
			return
		}
	}
}

func removeId(ids []Id, target Id) []Id {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
