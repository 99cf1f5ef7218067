//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package netlist reads and writes the plain-text ".bench" gate-level
// netlist format used throughout logic-synthesis benchmark suites:
//
//	INPUT(a)
//	INPUT(b)
//	OUTPUT(y)
//	c = NOT(a)
//	y = AND(c, b)
package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dreamer1977/gatecuts/gate"
)

var functionNames = map[string]gate.Function{
	"NOT":  gate.NOT,
	"NOP":  gate.NOP,
	"AND":  gate.AND,
	"OR":   gate.OR,
	"XOR":  gate.XOR,
	"NAND": gate.NAND,
	"NOR":  gate.NOR,
	"XNOR": gate.XNOR,
	"MAJ":  gate.MAJ,
	"ZERO": gate.ZERO,
	"ONE":  gate.ONE,
}

// Parse reads a .bench netlist, returning the built net and a
// name-to-id lookup for every wire declared in the file.
func Parse(r io.Reader) (*gate.Net, map[string]gate.Id, error) {
	net := gate.NewNet()
	ids := map[string]gate.Id{}
	var outputs []string

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(text, "INPUT("):
			name, err := parseDecl(text, "INPUT(")
			if err != nil {
				return nil, nil, fmt.Errorf("netlist: line %d: %w", lineno, err)
			}
			ids[name] = net.AddGate(gate.IN, nil)

		case strings.HasPrefix(text, "OUTPUT("):
			name, err := parseDecl(text, "OUTPUT(")
			if err != nil {
				return nil, nil, fmt.Errorf("netlist: line %d: %w", lineno, err)
			}
			outputs = append(outputs, name)

		default:
			name, fn, args, err := parseAssignment(text)
			if err != nil {
				return nil, nil, fmt.Errorf("netlist: line %d: %w", lineno, err)
			}
			signals := make([]gate.Signal, len(args))
			for i, a := range args {
				id, ok := ids[a]
				if !ok {
					return nil, nil, fmt.Errorf("netlist: line %d: undefined wire %q", lineno, a)
				}
				signals[i] = gate.Signal{Node: id}
			}
			ids[name] = net.AddGate(fn, signals)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("netlist: %w", err)
	}

	for _, name := range outputs {
		id, ok := ids[name]
		if !ok {
			return nil, nil, fmt.Errorf("netlist: undefined output wire %q", name)
		}
		net.AddOut(id)
	}
	return net, ids, nil
}

func parseDecl(text, prefix string) (string, error) {
	if !strings.HasSuffix(text, ")") {
		return "", fmt.Errorf("malformed declaration %q", text)
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, prefix), ")")), nil
}

func parseAssignment(text string) (name string, fn gate.Function, args []string, err error) {
	parts := strings.SplitN(text, "=", 2)
	if len(parts) != 2 {
		return "", 0, nil, fmt.Errorf("expected '<name> = FUNC(args)', got %q", text)
	}
	name = strings.TrimSpace(parts[0])

	rhs := strings.TrimSpace(parts[1])
	open := strings.IndexByte(rhs, '(')
	if open < 0 || !strings.HasSuffix(rhs, ")") {
		return "", 0, nil, fmt.Errorf("expected 'FUNC(args)', got %q", rhs)
	}
	fnName := strings.ToUpper(rhs[:open])
	fn, ok := functionNames[fnName]
	if !ok {
		return "", 0, nil, fmt.Errorf("unknown function %q", fnName)
	}

	argList := rhs[open+1 : len(rhs)-1]
	if strings.TrimSpace(argList) != "" {
		for _, a := range strings.Split(argList, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}
	return name, fn, args, nil
}

// Write serializes net back to .bench text, naming every wire by its
// gate id ("g<id>").
func Write(w io.Writer, net *gate.Net) error {
	for _, id := range net.GetSources() {
		if _, err := fmt.Fprintf(w, "INPUT(%s)\n", wireName(id)); err != nil {
			return err
		}
	}
	for _, id := range net.Gates() {
		g := net.Gate(id)
		if g.Function() == gate.OUT {
			if _, err := fmt.Fprintf(w, "OUTPUT(%s)\n", wireName(g.Inputs()[0].Node)); err != nil {
				return err
			}
			continue
		}
		if g.IsSource() || g.Function() == gate.XXX {
			continue
		}

		args := make([]string, len(g.Inputs()))
		for i, s := range g.Inputs() {
			args[i] = wireName(s.Node)
		}
		_, err := fmt.Fprintf(w, "%s = %s(%s)\n", wireName(id), g.Function(), strings.Join(args, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}

func wireName(id gate.Id) string {
	return fmt.Sprintf("g%d", id)
}
