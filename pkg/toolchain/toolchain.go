// Package toolchain hands a generated assembly listing to the external
// nasm assembler and ld linker.
package toolchain

import (
	"fmt"
	"os/exec"
	"strings"
)

// ObjectPath derives the object-file path for an assembly listing:
// the .asm (or any other) extension is replaced with .o.
func ObjectPath(asmPath string) string {
	if i := strings.LastIndexByte(asmPath, '.'); i > strings.LastIndexByte(asmPath, '/') {
		return asmPath[:i] + ".o"
	}
	return asmPath + ".o"
}

// Commands returns the exact argument vectors Build would run, in order.
func Commands(asmPath, objPath, binPath string) [][]string {
	return [][]string{
		{"nasm", "-f", "elf64", asmPath, "-o", objPath},
		{"ld", "-o", binPath, objPath},
	}
}

// Build assembles asmPath with nasm and links the object with ld into
// binPath. The first failing step stops the build; its stderr is folded
// into the returned error. A tool missing from PATH is reported by name.
func Build(asmPath, binPath string) error {
	objPath := ObjectPath(asmPath)
	for _, argv := range Commands(asmPath, objPath, binPath) {
		tool := argv[0]
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s not found in PATH", tool)
		}
		out, err := exec.Command(tool, argv[1:]...).CombinedOutput()
		if err != nil {
			msg := strings.TrimSpace(string(out))
			if msg == "" {
				return fmt.Errorf("%s failed: %v", tool, err)
			}
			return fmt.Errorf("%s failed: %v\n%s", tool, err, msg)
		}
	}
	return nil
}
