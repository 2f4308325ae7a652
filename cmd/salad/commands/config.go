package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agiangrant/salad"
)

// libraryFlag collects repeated -lib flags.
type libraryFlag []string

func (f *libraryFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *libraryFlag) Set(name string) error {
	if name == "" {
		return fmt.Errorf("empty library name")
	}
	*f = append(*f, name)
	return nil
}

// loaderFlags are the flags shared by commands that open OpenAL.
type loaderFlags struct {
	config string
	level  string
	libs   libraryFlag
	strict bool
}

func (l *loaderFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&l.config, "config", salad.ConfigFile, "path to the configuration file")
	fs.StringVar(&l.level, "log", "", "logging level (debug, info, warn or error)")
	fs.Var(&l.libs, "lib", "library name or path to try (repeatable)")
	fs.BoolVar(&l.strict, "strict", false, "fail when a required entry point is missing")
}

// options returns the loader options from the configuration file with
// the flags set on the command line applied on top.
func (l *loaderFlags) options(fs *flag.FlagSet, component string) ([]salad.Option, *slog.Logger, error) {
	config, err := salad.LoadConfig(l.config)
	if err != nil {
		return nil, nil, err
	}
	if l.level != "" {
		config.Log.Level = l.level
	}
	log, err := newLogger(config, component)
	if err != nil {
		return nil, nil, err
	}

	opts := append(config.Options(), salad.WithLogger(log))
	if len(l.libs) != 0 {
		opts = append(opts, salad.WithLibraryNames(l.libs...))
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "strict" {
			opts = append(opts, salad.WithStrict(l.strict))
		}
	})
	return opts, log, nil
}

func newLogger(config salad.Config, component string) (*slog.Logger, error) {
	var level slog.LevelVar
	lvl, err := config.Level()
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	level.Set(lvl)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &level,
	}))
	return log.With(slog.String("component", component)), nil
}
