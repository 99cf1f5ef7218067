//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package gate

import "fmt"

// Id is a dense opaque identifier for a node in the host graph. Two
// Ids compare for equality and hash like any other integer type.
type Id uint32

func (id Id) String() string {
	return fmt.Sprintf("g%d", uint32(id))
}

// Signal references a gate by its Id. It is the unit the graph uses
// to describe a gate's inputs.
type Signal struct {
	Node Id
}

// Link references a downstream consumer of a gate's output.
type Link struct {
	Target Id
}

// Gate is one node of the netlist: a Boolean function together with
// its ordered inputs and its (unordered) set of consumers.
type Gate struct {
	id       Id
	function Function
	inputs   []Signal
	links    []Link
}

// Id returns the gate's identifier.
func (g *Gate) Id() Id {
	return g.id
}

// Function returns the gate's Boolean function.
func (g *Gate) Function() Function {
	return g.function
}

// Inputs returns the gate's predecessor list.
func (g *Gate) Inputs() []Signal {
	return g.inputs
}

// Links returns the gate's successor list.
func (g *Gate) Links() []Link {
	return g.links
}

// IsSource reports whether g is a primary input (an IN gate) of the
// netlist. Constant gates have no predecessors but are not sources.
func (g *Gate) IsSource() bool {
	return g.function == IN
}

// IsTarget reports whether g is a primary output sink.
func (g *Gate) IsTarget() bool {
	return g.function == OUT
}

// IsNot reports whether g is an inverter.
func (g *Gate) IsNot() bool {
	return g.function == NOT
}

// IsAnd reports whether g is an AND gate.
func (g *Gate) IsAnd() bool {
	return g.function == AND
}

// IsValue reports whether g is a constant gate.
func (g *Gate) IsValue() bool {
	return g.function.IsValue()
}

func (g *Gate) String() string {
	return fmt.Sprintf("%s %s %s", g.function, g.inputs, g.id)
}

// Graph is the read-only view of a gate DAG the core operates on,
// plus the small set of mutating operations the cone extractor and
// the recursive-remove utility need to build and prune a net. The
// core never assumes a particular concrete representation beyond
// this interface.
type Graph interface {
	// Gate returns the gate with the given id. It panics if id is not
	// present, matching the host's "gate ids are dense and valid"
	// precondition.
	Gate(id Id) *Gate

	// Gates iterates over every gate in the graph. The order is
	// unspecified; callers that need a linear extension of the DAG
	// use TopoSort.
	Gates() []Id

	// NGates returns the number of gates in the graph.
	NGates() int

	// NSourceLinks returns the number of primary-input gates.
	NSourceLinks() int

	// NTargetLinks returns the number of primary-output gates.
	NTargetLinks() int

	// GetSources returns the ids of every primary input.
	GetSources() []Id

	// AddGate appends a new gate with the given function and input
	// signals, wires it to its inputs' link lists, and returns its id.
	AddGate(function Function, signals []Signal) Id

	// AddOut appends a new OUT gate wired to the given signal and
	// returns its id.
	AddOut(node Id) Id

	// SetGate replaces the function and inputs of an existing gate,
	// rewiring link lists accordingly.
	SetGate(id Id, function Function, inputs []Signal)

	// EraseGate removes a gate from the graph. The caller is
	// responsible for having already detached it from any consumer's
	// input list.
	EraseGate(id Id)
}
