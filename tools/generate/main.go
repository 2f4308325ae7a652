// Command generate writes procs_gen.go, the static symbol table of package
// salad, from symbols.toml.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/salad/internal/symgen"
)

func main() {
	in := flag.String("symbols", "symbols.toml", "path to the symbol list")
	out := flag.String("output", "procs_gen.go", "path of the generated file")
	flag.Parse()

	if err := run(*in, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	syms, err := symgen.Load(in)
	if err != nil {
		return err
	}

	code, err := symgen.Generate(syms)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("✓ Generated %s (%d procs)\n", out, syms.Count())
	return nil
}
