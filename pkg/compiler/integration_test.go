package compiler

import (
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	src := `
entry_point :: proc() {
    setup()
    run()
    run()
}

setup :: proc() {}

run :: proc() {
    tick()
}

main :: proc() {
    entry_point()
}
`
	asm, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	assertContains(t, asm,
		"global _start",
		"section .text",
		"entry_point:",
		"    call setup\n    call run\n    call run\n",
		"tick:", // forward reference, never defined
		"main:\n    push rbp\n    mov rbp, rsp\n    call entry_point\n",
		"_start:\n    call main\n",
	)

	// Discovery order: entry_point, setup, run, tick, main.
	order := []string{"entry_point:", "setup:", "run:", "tick:", "main:"}
	last := -1
	for _, label := range order {
		at := strings.Index(asm, "\n"+label)
		if at == -1 {
			t.Fatalf("label %q missing from\n%s", label, asm)
		}
		if at < last {
			t.Errorf("label %q out of discovery order", label)
		}
		last = at
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Scan Error", "main : proc() {}"},
		{"Parse Error", "x :: pro("},
		{"Trailing Garbage", "main :: proc() {} !"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm, err := Compile(tt.input)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.input)
			}
			if asm != "" {
				t.Errorf("Compile(%q) returned partial output %q", tt.input, asm)
			}
		})
	}
}

// Redefining a procedure discards the earlier body entirely.
func TestCompileRedefinition(t *testing.T) {
	asm, err := Compile("main :: proc() { old() }\nmain :: proc() { new_call() }")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if strings.Contains(asm, "    call old\n") {
		t.Errorf("assembly still calls the overwritten body:\n%s", asm)
	}
	assertContains(t, asm, "    call new_call\n", "old:")
}
