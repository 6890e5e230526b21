package main

import (
	"testing"

	"imp/pkg/stepper"
	"imp/pkg/theme"
)

func stepN(t *testing.T, s *stepper.Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}
}

func TestGlyphColorSingleHighlight(t *testing.T) {
	th := theme.Builtins()[0]
	s := stepper.New("main :: proc")
	stepN(t, s, 2) // current token is "::" at offsets 5..7

	if got := glyphColor(s, th, false, 5); got != th.Function {
		t.Errorf("byte inside current token colored %v, want %v", got, th.Function)
	}
	if got := glyphColor(s, th, false, 0); got != th.Foreground {
		t.Errorf("byte of an earlier token colored %v, want plain foreground %v", got, th.Foreground)
	}
}

func TestGlyphColorAllHighlight(t *testing.T) {
	th := theme.Builtins()[0]
	s := stepper.New("main :: proc")
	stepN(t, s, 3)

	if got := glyphColor(s, th, true, 0); got != th.Variable {
		t.Errorf("identifier byte colored %v, want %v", got, th.Variable)
	}
	if got := glyphColor(s, th, true, 5); got != th.Function {
		t.Errorf("'::' byte colored %v, want %v", got, th.Function)
	}
	if got := glyphColor(s, th, true, 8); got != th.Keyword {
		t.Errorf("'proc' byte colored %v, want %v", got, th.Keyword)
	}
	if got := glyphColor(s, th, true, 4); got != th.Foreground {
		t.Errorf("whitespace byte colored %v, want %v", got, th.Foreground)
	}
}

// Before the first step nothing may be highlighted.
func TestGlyphColorBeforeFirstStep(t *testing.T) {
	th := theme.Builtins()[0]
	s := stepper.New("main")

	if got := glyphColor(s, th, false, 0); got != th.Foreground {
		t.Errorf("unstepped source colored %v, want %v", got, th.Foreground)
	}
}

func TestStatusLine(t *testing.T) {
	s := stepper.New("main :: proc")
	stepN(t, s, 1)

	want := "Step: 1, Token: main, Line: 1, Col: 5"
	if got := statusLine(s); got != want {
		t.Errorf("statusLine() = %q, want %q", got, want)
	}
}
