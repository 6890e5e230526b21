package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imp/pkg/compiler"
	"imp/pkg/toolchain"
)

var (
	stepMode   bool
	outPath    string
	asmOnly    bool
	binPath    string
	dumpTokens bool
	dumpGraph  bool
	themeName  string
	themesPath string

	started bool // set once flag/argument validation has passed
)

var rootCmd = &cobra.Command{
	Use:   "imp [flags] sourceFile",
	Short: "Compiler for the imp procedure-declaration language",
	Long: `Imp compiles a minimal procedure-declaration language, statements of
the form "name :: proc() { call() ... }", into an x86-64 NASM assembly
listing, then hands that listing to nasm and ld to produce a native
executable.

With -s the source is opened in a window instead and the token stream
can be stepped through one token at a time, with each token's span
highlighted in the text.`,

	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&stepMode, "step", "s", false, "step through the token stream in a window instead of compiling")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "output.asm", "assembly output path")
	rootCmd.Flags().BoolVarP(&asmOnly, "asm-only", "S", false, "stop after writing assembly; skip nasm and ld")
	rootCmd.Flags().StringVar(&binPath, "bin", "a.out", "linked executable path")
	rootCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream, no compilation")
	rootCmd.Flags().BoolVar(&dumpGraph, "dump-graph", false, "parse only and print the call graph")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "initial color theme for the stepper")
	rootCmd.Flags().StringVar(&themesPath, "themes", "", "extra theme YAML file for the stepper")
}

func run(cmd *cobra.Command, args []string) error {
	started = true

	sourceBytes, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	src := string(sourceBytes)

	switch {
	case dumpTokens:
		return dumpTokenStream(src)
	case dumpGraph:
		return dumpCallGraph(src)
	case stepMode:
		return runStepper(src)
	}
	return batch(src)
}

func dumpTokenStream(src string) error {
	sc := compiler.NewScanner(src)
	for {
		tok, err := sc.Next()
		if err != nil {
			return err
		}
		fmt.Println(tok)
		if tok.Type == compiler.EOF {
			return nil
		}
	}
}

func dumpCallGraph(src string) error {
	graph, err := compiler.Parse(src)
	if err != nil {
		return err
	}
	fmt.Print(graph.String())
	return nil
}

func batch(src string) error {
	// Parse completes before the output file is created, so a lex or
	// parse failure leaves no partial output behind.
	graph, err := compiler.Parse(src)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := compiler.GenerateTo(f, graph); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if asmOnly {
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}
	if err := toolchain.Build(outPath, binPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s, linked %s\n", outPath, binPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "imp: %v\n", err)
		if !started {
			os.Exit(2) // bad flags or arguments
		}
		os.Exit(1)
	}
}
