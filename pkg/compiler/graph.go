package compiler

import (
	"fmt"
	"strings"
)

// ProcID is a stable handle for a procedure: its dense index into the
// call graph's arena, assigned in discovery order.
type ProcID int

// Procedure is one call-graph node. Calls holds the outgoing edges in
// source order; duplicates and self-edges are preserved.
type Procedure struct {
	Name  string
	Calls []ProcID
}

// CallGraph interns procedures by name and records their call edges.
// Nodes are created the first time a name is seen, whether as a
// definition head or as a call target, and are never deleted; edges are
// handles into the same arena, so node identity is unambiguous.
type CallGraph struct {
	procs []Procedure
	index map[string]ProcID
}

// NewCallGraph returns an empty call graph.
func NewCallGraph() *CallGraph {
	return &CallGraph{index: make(map[string]ProcID)}
}

// Intern returns the handle for name, creating a node with no calls if
// the name has not been seen before. Discovery order is arena order.
func (g *CallGraph) Intern(name string) ProcID {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := ProcID(len(g.procs))
	g.procs = append(g.procs, Procedure{Name: name})
	g.index[name] = id
	return id
}

// Lookup returns the handle for name without creating a node.
func (g *CallGraph) Lookup(name string) (ProcID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// AddCall appends an edge from→to. Duplicate edges and self-edges are
// recorded verbatim.
func (g *CallGraph) AddCall(from, to ProcID) {
	g.procs[from].Calls = append(g.procs[from].Calls, to)
}

// ResetCalls discards every outgoing edge of id. A redefinition resets
// the node before its new body is parsed, so the last definition wins.
func (g *CallGraph) ResetCalls(id ProcID) {
	g.procs[id].Calls = g.procs[id].Calls[:0]
}

// Len returns the number of interned procedures.
func (g *CallGraph) Len() int {
	return len(g.procs)
}

// Name returns the procedure name behind a handle.
func (g *CallGraph) Name(id ProcID) string {
	return g.procs[id].Name
}

// Calls returns the outgoing edges of id in source order. The slice is
// the graph's own storage; callers must not modify it.
func (g *CallGraph) Calls(id ProcID) []ProcID {
	return g.procs[id].Calls
}

// String renders the graph as one "name -> [a b c]" line per node, in
// discovery order.
func (g *CallGraph) String() string {
	var b strings.Builder
	for id := range g.procs {
		names := make([]string, len(g.procs[id].Calls))
		for i, to := range g.procs[id].Calls {
			names[i] = g.procs[to].Name
		}
		fmt.Fprintf(&b, "%s -> [%s]\n", g.procs[id].Name, strings.Join(names, " "))
	}
	return b.String()
}
