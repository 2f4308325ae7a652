// The salad command inspects the OpenAL library the salad loader finds on
// this host and maintains the loader's symbol table.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/salad"
	"github.com/agiangrant/salad/cmd/salad/commands"
)

// Exit status codes.
const (
	success       = 0
	internalError = 1 << (iota - 1)
	invocationError
)

func main() { os.Exit(Main()) }

// Main runs the salad command and returns its exit status.
func Main() int {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		return invocationError
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "probe":
		err = commands.Probe(args)
	case "symbols":
		err = commands.Symbols(args)
	case "generate":
		err = commands.Generate(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("salad version %s\n", salad.Version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(os.Stderr)
		return invocationError
	}

	if err != nil {
		if commands.IsUsage(err) {
			return invocationError
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return internalError
	}
	return success
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `salad - runtime OpenAL loader

Usage: salad <command> [options]

Commands:
  probe      Open the host OpenAL library and report resolved entry points
  symbols    List the entry points the loader resolves
  generate   Generate procs_gen.go from symbols.toml
  init       Write a salad.toml configuration file
  version    Print version information
  help       Show this help message

Examples:
  salad probe                      Report what the default library provides
  salad probe -missing -strict     Fail if a required entry point is missing
  salad probe -lib ./libopenal.so  Probe a specific library
  salad symbols -group efx         List the EFX entry points
  salad generate -watch            Regenerate procs_gen.go as symbols.toml changes

Configuration:
  salad.toml in the working directory sets the candidate libraries,
  strict mode and log level. SALAD_LIBRARY names a library to try first.
`)
}
