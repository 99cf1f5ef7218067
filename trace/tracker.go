//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package trace decorates a walk.Visitor with a DOT snapshot dump on
// every node visited, for offline inspection of a walk in progress.
package trace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/render"
	"github.com/dreamer1977/gatecuts/walk"
)

// homeEnv names the environment variable a Visitor reads its output
// root from.
const homeEnv = "GATECUTS_HOME"

// Visitor wraps an inner walk.Visitor: its own callbacks forward to
// the inner visitor unchanged, but OnNodeEnd additionally writes a DOT
// snapshot of net to subCatalog, under $GATECUTS_HOME, before
// forwarding. Snapshots are numbered in visit order.
type Visitor struct {
	net     gate.Graph
	inner   walk.Visitor
	dir     string
	counter int
}

// New builds a tracking decorator rooted at $GATECUTS_HOME/subCatalog.
// It fails if the environment variable is unset or the directory
// cannot be created.
func New(net gate.Graph, subCatalog string, inner walk.Visitor) (*Visitor, error) {
	home := os.Getenv(homeEnv)
	if home == "" {
		return nil, fmt.Errorf("trace: %s is not set", homeEnv)
	}
	dir := filepath.Join(home, subCatalog)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	return &Visitor{net: net, inner: inner, dir: dir}, nil
}

// OnNodeBegin forwards to the wrapped visitor unchanged.
func (v *Visitor) OnNodeBegin(id gate.Id) walk.Flag {
	return v.inner.OnNodeBegin(id)
}

// OnNodeEnd writes a DOT snapshot of the net before forwarding to the
// wrapped visitor.
func (v *Visitor) OnNodeEnd(id gate.Id) walk.Flag {
	path := filepath.Join(v.dir, fmt.Sprintf("onNodeEnd%d_%d.dot", v.counter, id))
	dot := render.ToDOT(v.net, render.Options{})
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "trace: write %s: %v\n", path, err)
	}
	v.counter++
	return v.inner.OnNodeEnd(id)
}
