package compiler

import (
	"reflect"
	"testing"
)

func TestCallGraphIntern(t *testing.T) {
	g := NewCallGraph()

	a := g.Intern("a")
	b := g.Intern("b")
	if a == b {
		t.Fatalf("distinct names interned to the same handle %d", a)
	}
	if again := g.Intern("a"); again != a {
		t.Errorf("re-interning %q gave %d, want %d", "a", again, a)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}

	// Handles are dense discovery-order indices.
	if a != 0 || b != 1 {
		t.Errorf("handles (%d, %d), want (0, 1)", a, b)
	}
	if g.Name(a) != "a" || g.Name(b) != "b" {
		t.Errorf("Name() mapping wrong: %q, %q", g.Name(a), g.Name(b))
	}
}

func TestCallGraphLookup(t *testing.T) {
	g := NewCallGraph()
	a := g.Intern("a")

	if id, ok := g.Lookup("a"); !ok || id != a {
		t.Errorf("Lookup(\"a\") = (%d, %t), want (%d, true)", id, ok, a)
	}
	if _, ok := g.Lookup("missing"); ok {
		t.Errorf("Lookup(\"missing\") found a node")
	}
	if g.Len() != 1 {
		t.Errorf("Lookup must not create nodes; Len() = %d, want 1", g.Len())
	}
}

func TestCallGraphEdges(t *testing.T) {
	g := NewCallGraph()
	a := g.Intern("a")
	b := g.Intern("b")

	// Duplicates and self-edges are kept verbatim, in order.
	g.AddCall(a, b)
	g.AddCall(a, a)
	g.AddCall(a, b)

	want := []ProcID{b, a, b}
	if !reflect.DeepEqual(g.Calls(a), want) {
		t.Errorf("Calls(a) = %v, want %v", g.Calls(a), want)
	}
	if len(g.Calls(b)) != 0 {
		t.Errorf("Calls(b) = %v, want empty", g.Calls(b))
	}
}

func TestCallGraphResetCalls(t *testing.T) {
	g := NewCallGraph()
	a := g.Intern("a")
	b := g.Intern("b")
	g.AddCall(a, b)
	g.AddCall(a, b)

	g.ResetCalls(a)
	if len(g.Calls(a)) != 0 {
		t.Fatalf("Calls(a) after reset = %v, want empty", g.Calls(a))
	}

	// The node itself survives a reset, at its original position.
	if id, ok := g.Lookup("a"); !ok || id != a {
		t.Errorf("node %q lost by ResetCalls", "a")
	}

	g.AddCall(a, a)
	if want := []ProcID{a}; !reflect.DeepEqual(g.Calls(a), want) {
		t.Errorf("Calls(a) after re-adding = %v, want %v", g.Calls(a), want)
	}
}

func TestCallGraphString(t *testing.T) {
	g := NewCallGraph()
	m := g.Intern("main")
	f := g.Intern("foo")
	g.AddCall(m, f)
	g.AddCall(m, f)

	want := "main -> [foo foo]\nfoo -> []\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
