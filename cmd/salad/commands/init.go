package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/salad"
)

// Init implements the 'salad init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("config", salad.ConfigFile, "path of the configuration file to write")
	var libs libraryFlag
	fs.Var(&libs, "lib", "library name or path to try (repeatable)")
	strict := fs.Bool("strict", false, "fail loads that miss a required entry point")
	level := fs.String("log", "info", "logging level (debug, info, warn or error)")
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", *path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	config := salad.DefaultConfig()
	config.Library.Names = libs
	config.Log.Level = *level
	if _, err := config.Level(); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "strict" {
			config.Library.Strict = strict
		}
	})

	if err := salad.SaveConfig(*path, config); err != nil {
		return err
	}
	fmt.Printf("✓ Created %s\n", *path)
	return nil
}
