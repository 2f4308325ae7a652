package salad

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeLinker opens the libraries it knows and resolves symbols with a
// per-library LoadFunc.
type fakeLinker struct {
	libs   map[string]uintptr
	syms   map[uintptr]LoadFunc
	opened []string
	looked int
}

func (f *fakeLinker) Open(name string) (uintptr, error) {
	f.opened = append(f.opened, name)
	h, ok := f.libs[name]
	if !ok {
		return 0, fmt.Errorf("%s: cannot open shared object file", name)
	}
	return h, nil
}

func (f *fakeLinker) Symbol(handle uintptr, name string) (uintptr, error) {
	f.looked++
	fn, ok := f.syms[handle]
	if !ok {
		return 0, errors.New("invalid handle")
	}
	addr := fn(name, handle)
	if addr == 0 {
		return 0, fmt.Errorf("undefined symbol: %s", name)
	}
	return addr, nil
}

func TestLoadDefaultNoLibrary(t *testing.T) {
	t.Setenv(LibraryEnv, "")

	linker := &fakeLinker{}
	tab := filled(0)
	tab.set(AlGetError, 0xdead)
	want := *tab

	names := []string{"libopenal.so.1", "libopenal.so"}
	l := New(WithLinker(linker), WithLibraryNames(names...), WithStrict(true))
	err := l.LoadDefault(tab)
	if !errors.Is(err, ErrNoLibrary) {
		t.Fatalf("error = %v, want %v", err, ErrNoLibrary)
	}
	if *tab != want {
		t.Error("table was modified when no library opened")
	}
	if !cmp.Equal(linker.opened, names) {
		t.Errorf("unexpected open attempts:\n%s", cmp.Diff(names, linker.opened))
	}
	if linker.looked != 0 {
		t.Errorf("%d symbol lookups without a library", linker.looked)
	}
	if l.Library() != (Library{}) {
		t.Errorf("Library() = %+v, want zero", l.Library())
	}
}

func TestLoadDefaultNoCandidates(t *testing.T) {
	t.Setenv(LibraryEnv, "")

	var tab Table
	err := New(WithLinker(&fakeLinker{}), WithLibraryNames()).LoadDefault(&tab)
	if !errors.Is(err, ErrNoLibrary) {
		t.Errorf("error = %v, want %v", err, ErrNoLibrary)
	}
}

func TestLoadDefaultFirstOpenWins(t *testing.T) {
	t.Setenv(LibraryEnv, "")

	// The second candidate is complete; the third would be too but must
	// never be tried.
	linker := &fakeLinker{
		libs: map[string]uintptr{"second": 2, "third": 3},
		syms: map[uintptr]LoadFunc{
			2: identity,
			3: func(string, any) uintptr { return 0x3 },
		},
	}
	l := New(WithLinker(linker), WithLibraryNames("first", "second", "third"), WithStrict(true))

	var tab Table
	if err := l.LoadDefault(&tab); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"first", "second"}; !cmp.Equal(linker.opened, want) {
		t.Errorf("unexpected open attempts:\n%s", cmp.Diff(want, linker.opened))
	}
	if got, want := l.Library(), (Library{Name: "second", Handle: 2}); got != want {
		t.Errorf("Library() = %+v, want %+v", got, want)
	}
	for _, p := range Procs() {
		if tab.Addr(p) != sentinel(p) {
			t.Errorf("%s = %#x, want %#x", p, tab.Addr(p), sentinel(p))
		}
	}
}

func TestLoadDefaultIncompleteLibrary(t *testing.T) {
	t.Setenv(LibraryEnv, "")

	// Discovery stops at the first library that opens, even if it
	// later fails strict validation.
	linker := &fakeLinker{
		libs: map[string]uintptr{"old": 1, "new": 2},
		syms: map[uintptr]LoadFunc{
			1: withoutGroup(GroupContext),
			2: identity,
		},
	}
	names := WithLibraryNames("old", "new")

	var tab Table
	err := New(WithLinker(linker), names, WithStrict(true)).LoadDefault(&tab)
	if !errors.Is(err, ErrMissingSymbol) {
		t.Fatalf("strict error = %v, want %v", err, ErrMissingSymbol)
	}
	if want := []string{"old"}; !cmp.Equal(linker.opened, want) {
		t.Errorf("unexpected open attempts:\n%s", cmp.Diff(want, linker.opened))
	}

	if err := New(WithLinker(linker), names, WithStrict(false)).LoadDefault(&tab); err != nil {
		t.Fatalf("lax error: %v", err)
	}
	if got := tab.Missing(); !cmp.Equal(got, GroupContext.Procs()) {
		t.Errorf("unexpected missing procs:\n%s", cmp.Diff(GroupContext.Procs(), got))
	}
}

func TestLoadDefaultEnvFirst(t *testing.T) {
	t.Setenv(LibraryEnv, "/opt/openal/lib/libopenal.so")

	linker := &fakeLinker{
		libs: map[string]uintptr{"/opt/openal/lib/libopenal.so": 9, "libopenal.so.1": 1},
		syms: map[uintptr]LoadFunc{9: identity, 1: identity},
	}
	l := New(WithLinker(linker), WithLibraryNames("libopenal.so.1", "/opt/openal/lib/libopenal.so"))

	if want := []string{"/opt/openal/lib/libopenal.so", "libopenal.so.1"}; !cmp.Equal(l.Candidates(), want) {
		t.Errorf("unexpected candidates:\n%s", cmp.Diff(want, l.Candidates()))
	}

	var tab Table
	if err := l.LoadDefault(&tab); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Library().Handle; got != 9 {
		t.Errorf("opened handle %d, want 9", got)
	}
}

func TestCandidatesPlatformDefault(t *testing.T) {
	t.Setenv(LibraryEnv, "")

	got := New().Candidates()
	want := LibraryNames(CurrentPlatform())
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected candidates:\n%s", cmp.Diff(want, got))
	}
}

func TestDefaultLoadFunc(t *testing.T) {
	linker := &fakeLinker{syms: map[uintptr]LoadFunc{5: identity}}
	resolve := New(WithLinker(linker)).DefaultLoadFunc()

	tests := []struct {
		name string
		proc string
		arg  any
		want uintptr
	}{
		{name: "found", proc: "alGenSources", arg: uintptr(5), want: sentinel(AlGenSources)},
		{name: "unknown symbol", proc: "alNoSuchThing", arg: uintptr(5), want: 0},
		{name: "null handle", proc: "alGenSources", arg: uintptr(0), want: 0},
		{name: "nil arg", proc: "alGenSources", arg: nil, want: 0},
		{name: "wrong arg type", proc: "alGenSources", arg: "libopenal.so", want: 0},
		{name: "unknown handle", proc: "alGenSources", arg: uintptr(6), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.proc, tt.arg); got != tt.want {
				t.Errorf("resolve(%q) = %#x, want %#x", tt.proc, got, tt.want)
			}
		})
	}
}

func TestLoadDefaultHost(t *testing.T) {
	t.Setenv(LibraryEnv, "")

	// Real linker, names that cannot exist.
	tab := filled(0)
	tab.set(AlcOpenDevice, 0xdead)
	want := *tab

	_, err := New(WithLibraryNames("libsalad-missing-openal.so.99")).Open()
	if !errors.Is(err, ErrNoLibrary) {
		t.Fatalf("error = %v, want %v", err, ErrNoLibrary)
	}
	err = New(WithLibraryNames("libsalad-missing-openal.so.99")).LoadDefault(tab)
	if !errors.Is(err, ErrNoLibrary) {
		t.Fatalf("error = %v, want %v", err, ErrNoLibrary)
	}
	if *tab != want {
		t.Error("table was modified when no library opened")
	}
}
