package compiler

import (
	"fmt"
	"io"
	"strings"
)

// codeGen serialises a call graph into NASM x86-64 assembly text.
// Write errors stick: after the first failure every line call is a
// no-op and the stored error is returned to the caller.
type codeGen struct {
	w   io.Writer
	err error
}

func (cg *codeGen) line(format string, args ...any) {
	if cg.err != nil {
		return
	}
	_, cg.err = fmt.Fprintf(cg.w, format+"\n", args...)
}

func (cg *codeGen) emit(g *CallGraph) error {
	cg.line("global _start")
	cg.line("")
	cg.line("section .text")
	cg.line("")

	// One block per node in discovery order. Nodes with no edges
	// (including never-defined forward references) still get a full
	// empty frame.
	for id := ProcID(0); id < ProcID(g.Len()); id++ {
		cg.line("%s:", g.Name(id))
		cg.line("    push rbp")
		cg.line("    mov rbp, rsp")
		for _, callee := range g.Calls(id) {
			cg.line("    call %s", g.Name(callee))
		}
		cg.line("    mov rsp, rbp")
		cg.line("    pop rbp")
		cg.line("    ret")
		cg.line("")
	}

	// Process entry point. Whether a procedure named main exists is
	// the assembler/linker's problem, not ours.
	cg.line("_start:")
	cg.line("    call main")
	cg.line("    mov rax, 60")
	cg.line("    xor rdi, rdi")
	cg.line("    syscall")

	return cg.err
}

// GenerateTo writes the assembly listing for g to w. It is a pure
// serialisation pass: the graph is never mutated, and the only failure
// class is a write error from w.
func GenerateTo(w io.Writer, g *CallGraph) error {
	cg := &codeGen{w: w}
	return cg.emit(g)
}

// Generate returns the assembly listing for g as a string. Output is
// deterministic: the same graph always yields byte-identical text.
func Generate(g *CallGraph) string {
	var b strings.Builder
	cg := &codeGen{w: &b}
	cg.emit(g) // strings.Builder writes cannot fail
	return b.String()
}
