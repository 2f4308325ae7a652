package salad

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agiangrant/salad/internal/ffi"
)

// LibraryEnv names an environment variable holding a library name or path
// that is tried before any other candidate.
const LibraryEnv = "SALAD_LIBRARY"

// LoadFunc resolves the entry point procname, returning its address or
// zero when it cannot be found. arg is passed through unchanged from the
// load call; the default resolver receives the module handle there.
type LoadFunc func(procname string, arg any) uintptr

// Linker is a host dynamic linker.
type Linker interface {
	// Open loads the named library and returns its module handle.
	Open(name string) (uintptr, error)
	// Symbol returns the address of name inside the module.
	Symbol(handle uintptr, name string) (uintptr, error)
}

// Library is a library opened by default discovery.
type Library struct {
	Name   string
	Handle uintptr
}

// Loader fills Tables from an OpenAL library.
//
// Libraries opened by a Loader stay loaded for the life of the process.
// A Loader is not safe for concurrent use.
type Loader struct {
	strict bool
	names  []string
	linker Linker
	log    *slog.Logger

	lib Library
}

// Option configures a Loader.
type Option func(*Loader)

// WithStrict sets whether a load fails when a required entry point does not
// resolve. The default is false unless built with the salad_strict tag.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// WithLibraryNames replaces the platform's candidate library names.
func WithLibraryNames(names ...string) Option {
	return func(l *Loader) {
		l.names = append([]string{}, names...)
	}
}

// WithLinker replaces the host dynamic linker.
func WithLinker(linker Linker) Option {
	return func(l *Loader) {
		if linker != nil {
			l.linker = linker
		}
	}
}

// WithLogger sets the logger for discovery and resolution details.
// Loaders log only at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// New returns a Loader using the host dynamic linker and the candidate
// library names of the current platform.
func New(opts ...Option) *Loader {
	l := &Loader{
		strict: defaultStrict,
		linker: ffi.System{},
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Strict reports whether l validates required entry points.
func (l *Loader) Strict() bool {
	return l.strict
}

// Library returns the library opened by the most recent successful
// discovery. The zero Library means none has been opened.
func (l *Loader) Library() Library {
	return l.lib
}

// Candidates returns the library names discovery tries, in order.
func (l *Loader) Candidates() []string {
	names := l.names
	if names == nil {
		names = LibraryNames(CurrentPlatform())
	}
	env := os.Getenv(LibraryEnv)
	if env == "" {
		return names
	}
	candidates := []string{env}
	for _, n := range names {
		if n != env {
			candidates = append(candidates, n)
		}
	}
	return candidates
}

// Open tries each candidate library in order and returns the first that
// the linker opens. It is the discovery step of LoadDefault.
func (l *Loader) Open() (Library, error) {
	names := l.Candidates()
	if len(names) == 0 {
		return Library{}, fmt.Errorf("%w: no candidate library names for %s", ErrNoLibrary, CurrentPlatform())
	}

	var errs []error
	for _, name := range names {
		h, err := l.linker.Open(name)
		if err != nil {
			l.log.Debug("library not opened", slog.String("name", name), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		l.lib = Library{Name: name, Handle: h}
		l.log.Debug("library opened", slog.String("name", name))
		return l.lib, nil
	}
	return Library{}, fmt.Errorf("%w: tried %s: %w", ErrNoLibrary, strings.Join(names, ", "), errors.Join(errs...))
}

// LoadDefault opens the first candidate library that loads and fills t
// from it using the host linker. If no library opens, t is not modified.
func (l *Loader) LoadDefault(t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	lib, err := l.Open()
	if err != nil {
		return err
	}
	return l.LoadFunc(t, l.defaultLoadFunc, lib.Handle)
}

// LoadFunc fills t by calling fn once for every known entry point, passing
// arg through unchanged. Every slot is overwritten; slots fn cannot resolve
// become zero.
//
// Required entry points are resolved before extension ones. In strict mode
// LoadFunc returns a *MissingError as soon as any required entry point is
// zero. The required slots already written are kept, and the extension
// slots are left as they were. Extension entry points never cause a
// failure.
func (l *Loader) LoadFunc(t *Table, fn LoadFunc, arg any) error {
	if fn == nil {
		return ErrNilLoadFunc
	}
	if t == nil {
		return ErrNilTable
	}

	var missing []Proc
	for _, g := range Groups() {
		if g.Required() {
			l.resolve(t, g, fn, arg)
			missing = append(missing, t.Missing(g)...)
		}
	}
	if l.strict && len(missing) != 0 {
		return &MissingError{Procs: missing}
	}

	for _, g := range Groups() {
		if !g.Required() {
			l.resolve(t, g, fn, arg)
		}
	}
	return nil
}

func (l *Loader) resolve(t *Table, g Group, fn LoadFunc, arg any) {
	for _, p := range g.Procs() {
		t.set(p, fn(p.String(), arg))
	}
	l.log.Debug("resolved group",
		slog.String("group", g.String()),
		slog.Int("resolved", len(t.Resolved(g))),
		slog.Int("missing", len(t.Missing(g))),
	)
}

// DefaultLoadFunc returns the resolver LoadDefault uses. It expects the
// module handle returned by the linker as its arg and yields zero for a
// zero handle or an unknown symbol.
func (l *Loader) DefaultLoadFunc() LoadFunc {
	return l.defaultLoadFunc
}

// defaultLoadFunc resolves procname in the module whose handle is arg.
func (l *Loader) defaultLoadFunc(procname string, arg any) uintptr {
	h, _ := arg.(uintptr)
	if h == 0 {
		return 0
	}
	addr, err := l.linker.Symbol(h, procname)
	if err != nil {
		return 0
	}
	return addr
}
