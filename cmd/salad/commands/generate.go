package commands

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/agiangrant/salad/internal/symgen"
)

// Generate implements the 'salad generate' command.
// It writes the static symbol table from a symbol list, or with -check
// reports whether the existing table is current.
func Generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	symbolsFile := fs.String("symbols", "symbols.toml", "path to symbols.toml")
	output := fs.String("output", "procs_gen.go", "path of the generated table")
	check := fs.Bool("check", false, "fail if the generated table is out of date instead of writing it")
	watch := fs.Bool("watch", false, "watch the symbol list for changes and regenerate")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *check {
		return checkOnce(*symbolsFile, *output)
	}
	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String("component", "salad.generate"))
		return generateWatch(ctx, *symbolsFile, *output, log)
	}
	return generateOnce(*symbolsFile, *output)
}

func render(symbolsFile string) ([]byte, int, error) {
	syms, err := symgen.Load(symbolsFile)
	if err != nil {
		return nil, 0, err
	}
	code, err := symgen.Generate(syms)
	if err != nil {
		return nil, 0, err
	}
	return code, syms.Count(), nil
}

func generateOnce(symbolsFile, output string) error {
	code, n, err := render(symbolsFile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Printf("✓ Generated %s (%d procs)\n", output, n)
	return nil
}

func checkOnce(symbolsFile, output string) error {
	code, _, err := render(symbolsFile)
	if err != nil {
		return err
	}
	current, err := os.ReadFile(output)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", output, err)
	}
	if !bytes.Equal(current, code) {
		return fmt.Errorf("%s is out of date with %s", output, symbolsFile)
	}
	fmt.Printf("✓ %s is up to date\n", output)
	return nil
}

// generateWatch regenerates output every time symbolsFile is written until
// ctx is done. The directory is watched rather than the file so editors
// that replace the file on save are followed.
func generateWatch(ctx context.Context, symbolsFile, output string, log *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target, err := filepath.Abs(symbolsFile)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	fmt.Printf("Watching %s for changes...\n", symbolsFile)
	if err := generateOnce(symbolsFile, output); err != nil {
		log.LogAttrs(ctx, slog.LevelWarn, "generate", slog.Any("error", err))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.LogAttrs(ctx, slog.LevelDebug, "changed", slog.String("name", ev.Name), slog.String("op", ev.Op.String()))
			if err := generateOnce(symbolsFile, output); err != nil {
				log.LogAttrs(ctx, slog.LevelError, "generate", slog.Any("error", err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				log.LogAttrs(ctx, slog.LevelWarn, "event overflow")
				continue
			}
			return err
		}
	}
}
